// Cooperative main loop
// Single-threaded, run-to-completion: one command byte, one tick's worth
// of synthesis, one sleep decision per iteration. Wake from sleep
// re-enters at the top of the loop body.
package core

// ByteSource delivers inbound command bytes from the console reader.
// ReadByte must not block; it returns false when no byte is pending.
type ByteSource interface {
	ReadByte() (byte, bool)
}

// App owns the firmware's mutable state and wires the core components
// together. There is exactly one physical clock tree, so exactly one App.
type App struct {
	Ctrl  *Controller
	Cal   *Calibrator
	Synth *Synth
	Pow   *Power

	src      ByteSource
	dacFault bool
}

// NewApp builds the application context for a given external reference
// frequency (kHz) and command source.
func NewApp(referenceKHz uint32, src ByteSource) *App {
	cal := NewCalibrator()
	pow := NewPower()
	ctrl := NewController(referenceKHz, cal, pow)
	app := &App{
		Ctrl:  ctrl,
		Cal:   cal,
		Synth: NewSynth(),
		Pow:   pow,
		src:   src,
	}
	InitClockCommands(ctrl, cal)
	return app
}

// Start performs one-time initialization: DAC bring-up and the first
// timebase programming for the internal oscillator the system boots on.
func (a *App) Start() error {
	if err := MustDAC().Configure(); err != nil {
		return err
	}
	a.Cal.Start(a.Ctrl.EffectiveKHz())
	Report(RenderStatus(a.Ctrl, a.Cal))
	return nil
}

// RunOnce executes one main loop iteration: drain a pending command,
// service the timebase tick, then decide whether to sleep. Split out
// from Run so tests can drive the loop deterministically.
func (a *App) RunOnce() {
	if b, ok := a.src.ReadByte(); ok {
		if err := DispatchCommand(b); err != nil {
			Report(err.Error())
		}
	}

	if a.Cal.TickPending() {
		// The synthesizer runs every tick regardless of which clock
		// source is active.
		sample := a.Synth.Next()
		if err := MustDAC().Write(sample); err != nil {
			// Report the first failure only; at 16kHz a broken DAC
			// would otherwise flood the console.
			if !a.dacFault {
				a.dacFault = true
				Report("dac write failed: " + err.Error())
			}
		} else {
			a.dacFault = false
		}

		if a.Cal.OnTick() {
			Report(RenderStatus(a.Ctrl, a.Cal))
		}
	}

	a.Pow.Idle()
}

// Run executes the main loop forever. No terminal state: the firmware
// runs until power-off.
func (a *App) Run() {
	for {
		a.RunOnce()
	}
}
