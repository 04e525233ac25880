package core

import (
	"tonegen/targets/sim"
)

// newTestHarness installs a fresh simulated hardware set into the HAL
// singletons and resets the global command registry and report capture.
func newTestHarness() *sim.Harness {
	h := sim.NewHarness()
	SetRegisterBus(h.Bus)
	SetDelayer(h.Delay)
	SetWaveformDAC(h.DAC)
	SetIdler(h.Idler)
	globalRegistry = NewCommandRegistry()
	SetReportWriter(func(string) {})
	return h
}

// captureReports redirects report output into a slice for assertions.
func captureReports() *[]string {
	var lines []string
	SetReportWriter(func(s string) {
		lines = append(lines, s)
	})
	return &lines
}
