// tonegen-sim runs the firmware's main loop against the simulated
// register backing store, so the clock switch protocol and the
// synthesizer can be exercised on a development machine without
// hardware. Each input line is fed to the firmware as console bytes,
// then one simulated second of timebase ticks is executed.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"tonegen/core"
	"tonegen/targets/sim"
)

const referenceKHz = 10000 // 10MHz external reference

func main() {
	h := sim.NewHarness()
	core.SetRegisterBus(h.Bus)
	core.SetDelayer(h.Delay)
	core.SetWaveformDAC(h.DAC)
	core.SetIdler(h.Idler)
	core.SetReportWriter(func(s string) {
		fmt.Println("< " + s)
	})

	app := core.NewApp(referenceKHz, h.Source)
	if err := app.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "start failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("tonegen simulator - commands: s i + - 2 4 ?  (fail-osc, ok-osc, quit)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "quit", "q":
			return
		case "fail-osc":
			h.Bus.FailMainOsc = true
			fmt.Println("external oscillator scripted to fail")
			continue
		case "ok-osc":
			h.Bus.FailMainOsc = false
			fmt.Println("external oscillator healthy")
			continue
		}

		for i := 0; i < len(line); i++ {
			h.Source.Push(line[i])
		}

		// One simulated second: commands drain first, then the ticks.
		before := len(h.DAC.Samples)
		for i := 0; i < core.TicksPerMilli*core.MillisPerSecond; i++ {
			h.Bus.TriggerTick()
			app.RunOnce()
		}
		fmt.Printf("  [%d samples synthesized, %d sleep suspensions]\n",
			len(h.DAC.Samples)-before, h.Idler.Wakeups)
	}
}
