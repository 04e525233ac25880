package core

// Delayer provides the blocking delays used inside the clock switch
// sequence. All delays are non-cancellable; the caller is the single
// cooperative main loop, so blocking here blocks the whole firmware.
// Tests install a recorder so sequencing can be asserted without waiting
// real time.
type Delayer interface {
	// DelayMicros blocks for at least us microseconds
	DelayMicros(us uint32)

	// DelayMillis blocks for at least ms milliseconds
	DelayMillis(ms uint32)
}

// Idler suspends the core until the next interrupt (wait-for-interrupt).
// Execution resumes at the top of the main loop after wake, not at the
// suspension point.
type Idler interface {
	WaitForInterrupt()
}

var (
	delayer Delayer
	idler   Idler
)

// SetDelayer is called by target-specific code to register its delay source.
func SetDelayer(d Delayer) {
	delayer = d
}

// MustDelay returns the configured delayer or panics if missing.
func MustDelay() Delayer {
	if delayer == nil {
		panic("delayer not configured")
	}
	return delayer
}

// SetIdler is called by target-specific code to register its idle primitive.
func SetIdler(i Idler) {
	idler = i
}

// MustIdler returns the configured idler or panics if missing.
func MustIdler() Idler {
	if idler == nil {
		panic("idler not configured")
	}
	return idler
}
