package sim

// DelayRecorder satisfies the core Delayer interface without waiting
// real time. Delay calls land in the shared bus trace so tests can
// assert where the settle windows fall inside the register sequence.
type DelayRecorder struct {
	bus *Bus
}

// NewDelayRecorder creates a recorder appending to the bus trace.
func NewDelayRecorder(bus *Bus) *DelayRecorder {
	return &DelayRecorder{bus: bus}
}

// DelayMicros records a microsecond delay
func (d *DelayRecorder) DelayMicros(us uint32) {
	d.bus.record("delay-us", 0, us)
}

// DelayMillis records a millisecond delay
func (d *DelayRecorder) DelayMillis(ms uint32) {
	d.bus.record("delay-ms", 0, ms)
}

// CaptureDAC records every emitted waveform sample.
type CaptureDAC struct {
	Configured bool
	Samples    []uint16
}

// Configure implements WaveformDAC
func (d *CaptureDAC) Configure() error {
	d.Configured = true
	return nil
}

// Write implements WaveformDAC
func (d *CaptureDAC) Write(sample uint16) error {
	d.Samples = append(d.Samples, sample)
	return nil
}

// ScriptSource feeds scripted command bytes to the main loop.
type ScriptSource struct {
	queue []byte
}

// Push queues command bytes for delivery.
func (s *ScriptSource) Push(b ...byte) {
	s.queue = append(s.queue, b...)
}

// ReadByte implements ByteSource
func (s *ScriptSource) ReadByte() (byte, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	b := s.queue[0]
	s.queue = s.queue[1:]
	return b, true
}

// CountingIdler counts wait-for-interrupt suspensions. OnWake, when set,
// models the interrupt that ends the suspension.
type CountingIdler struct {
	Wakeups int
	OnWake  func()
}

// WaitForInterrupt implements Idler
func (i *CountingIdler) WaitForInterrupt() {
	i.Wakeups++
	if i.OnWake != nil {
		i.OnWake()
	}
}

// Harness bundles a complete simulated hardware set. The caller installs
// the pieces into the core HAL singletons.
type Harness struct {
	Bus    *Bus
	Delay  *DelayRecorder
	DAC    *CaptureDAC
	Source *ScriptSource
	Idler  *CountingIdler
}

// NewHarness creates a fresh simulated hardware set.
func NewHarness() *Harness {
	bus := NewBus()
	return &Harness{
		Bus:    bus,
		Delay:  NewDelayRecorder(bus),
		DAC:    &CaptureDAC{},
		Source: &ScriptSource{},
		Idler:  &CountingIdler{},
	}
}
