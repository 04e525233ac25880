package core

import (
	"errors"
	"strings"
	"testing"
)

// faultyDAC fails every write, standing in for a wedged I2C converter.
type faultyDAC struct {
	writes int
}

func (d *faultyDAC) Configure() error { return nil }

func (d *faultyDAC) Write(uint16) error {
	d.writes++
	return errors.New("i2c nack")
}

func TestStartDefaultsEndToEnd(t *testing.T) {
	h := newTestHarness()
	app := NewApp(10000, h.Source)
	if err := app.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	if !h.DAC.Configured {
		t.Error("DAC not configured during start")
	}
	if got := app.Cal.Reload(); got != 2999 {
		t.Errorf("boot reload = %d, want internal default 2999", got)
	}

	// "start with defaults" on a 10MHz reference: 50MHz, clock good,
	// sleep enabled.
	h.Source.Push('s')
	app.RunOnce()

	if got := app.Ctrl.EffectiveKHz(); got != 50000 {
		t.Errorf("EffectiveKHz = %d, want 50000", got)
	}
	if !app.Ctrl.Status().ClockGood {
		t.Error("clock not good after start with defaults")
	}
	if !app.Pow.SleepAllowed() {
		t.Error("sleep not enabled after verified switch")
	}
	if got := app.Cal.Reload(); got != 3124 {
		t.Errorf("reload = %d, want 3124", got)
	}

	// "revert" brings everything back to the internal defaults.
	h.Source.Push('i')
	app.RunOnce()

	if app.Ctrl.Config().Source != SourceInternal {
		t.Error("source not internal after revert")
	}
	if app.Ctrl.Status().ClockGood {
		t.Error("clock still good after revert")
	}
	if app.Pow.SleepAllowed() {
		t.Error("sleep still enabled after revert")
	}
	if got := app.Cal.Reload(); got != 2999 {
		t.Errorf("reload = %d, want restored internal default 2999", got)
	}
}

func TestTickDrivesSynthesizer(t *testing.T) {
	h := newTestHarness()
	app := NewApp(10000, h.Source)
	if err := app.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	// No tick, no sample.
	app.RunOnce()
	if len(h.DAC.Samples) != 0 {
		t.Fatalf("samples emitted without a tick: %d", len(h.DAC.Samples))
	}

	h.Bus.TriggerTick()
	app.RunOnce()
	if len(h.DAC.Samples) != 1 {
		t.Fatalf("samples = %d, want 1", len(h.DAC.Samples))
	}
	if phase := app.Synth.Phase(); phase != PhaseIncrement {
		t.Errorf("phase = %#x, want one increment", phase)
	}
}

func TestPhaseContinuousAcrossSwitch(t *testing.T) {
	h := newTestHarness()
	app := NewApp(10000, h.Source)
	if err := app.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	for i := 0; i < 5; i++ {
		h.Bus.TriggerTick()
		app.RunOnce()
	}
	before := app.Synth.Phase()

	// A clock switch changes the tick rate, never the phase.
	h.Source.Push('s')
	app.RunOnce()
	if app.Synth.Phase() != before {
		t.Errorf("phase changed across switch: %#x -> %#x", before, app.Synth.Phase())
	}

	h.Bus.TriggerTick()
	app.RunOnce()
	if app.Synth.Phase() != before+PhaseIncrement {
		t.Error("phase did not resume from the pre-switch value")
	}
}

func TestSynthesizerRunsOnBothSources(t *testing.T) {
	h := newTestHarness()
	app := NewApp(10000, h.Source)
	if err := app.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	h.Source.Push('s')
	app.RunOnce()
	h.Bus.TriggerTick()
	app.RunOnce()

	h.Source.Push('i')
	app.RunOnce()
	h.Bus.TriggerTick()
	app.RunOnce()

	if len(h.DAC.Samples) != 2 {
		t.Errorf("samples = %d, want one per tick on either source", len(h.DAC.Samples))
	}
}

func TestPeriodicStatusReport(t *testing.T) {
	h := newTestHarness()
	app := NewApp(10000, h.Source)
	lines := captureReports()
	if err := app.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	*lines = nil

	for i := 0; i < TicksPerMilli*MillisPerSecond; i++ {
		h.Bus.TriggerTick()
		app.RunOnce()
	}

	if len(*lines) != 1 {
		t.Fatalf("report lines after one second = %d, want 1", len(*lines))
	}
	if !strings.Contains((*lines)[0], "up=1s") {
		t.Errorf("status line = %q, want uptime of one second", (*lines)[0])
	}
	if !strings.Contains((*lines)[0], "clk=internal") {
		t.Errorf("status line = %q, want internal source", (*lines)[0])
	}
}

func TestDACWriteFailureReportedOnce(t *testing.T) {
	h := newTestHarness()
	dac := &faultyDAC{}
	SetWaveformDAC(dac)

	app := NewApp(10000, h.Source)
	lines := captureReports()
	if err := app.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	*lines = nil

	for i := 0; i < 5; i++ {
		h.Bus.TriggerTick()
		app.RunOnce()
	}

	if dac.writes != 5 {
		t.Fatalf("writes = %d, want one per tick despite failures", dac.writes)
	}
	faults := 0
	for _, line := range *lines {
		if strings.Contains(line, "dac write failed") {
			faults++
		}
	}
	if faults != 1 {
		t.Errorf("fault reports = %d, want a single line for a persistent fault", faults)
	}
}

func TestIdleSleepsOnlyOnVerifiedExternalClock(t *testing.T) {
	h := newTestHarness()
	app := NewApp(10000, h.Source)
	if err := app.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	app.RunOnce()
	if h.Idler.Wakeups != 0 {
		t.Error("slept on the internal clock")
	}

	h.Source.Push('s')
	app.RunOnce()
	if h.Idler.Wakeups != 1 {
		t.Errorf("wakeups = %d, want 1 after verified switch", h.Idler.Wakeups)
	}
}
