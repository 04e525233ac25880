//go:build ra4m1

package main

import (
	"tonegen/core"
)

// referenceKHz is the frequency of the external resonator fitted to the
// board. Fixed by the hardware, supplied here.
const referenceKHz = 10000

func main() {
	// Console first so switch failures are visible from the very first
	// report line.
	consoleInit()
	core.SetReportWriter(consoleWrite)

	core.SetRegisterBus(hwBus{})
	core.SetDelayer(hwDelay{})
	core.SetIdler(hwIdler{})
	core.SetWaveformDAC(onChipDAC{})

	enableClockMonitor()

	app := core.NewApp(referenceKHz, uartSource{})
	if err := app.Start(); err != nil {
		core.Report("init failed: " + err.Error())
		for {
		}
	}

	app.Run()
}
