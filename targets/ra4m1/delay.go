//go:build ra4m1

package main

import (
	"device/arm"
)

// spinLoopsPerMicro is calibrated for the fastest configured system
// clock (160MHz), so every delay is a minimum regardless of which
// source is active when it runs. The switch sequence only ever needs
// lower bounds on its settle windows.
const spinLoopsPerMicro = 40

// hwDelay busy-waits; the main loop is cooperative and the switch
// sequence is specified as blocking and non-cancellable.
type hwDelay struct{}

func (hwDelay) DelayMicros(us uint32) {
	for i := uint32(0); i < us*spinLoopsPerMicro; i++ {
		arm.Asm("nop")
	}
}

func (hwDelay) DelayMillis(ms uint32) {
	for i := uint32(0); i < ms; i++ {
		hwDelay{}.DelayMicros(1000)
	}
}

// hwIdler suspends the core until the next interrupt. The timebase tick
// interrupt and the UART receive interrupt are the wake sources.
type hwIdler struct{}

func (hwIdler) WaitForInterrupt() {
	arm.Asm("wfi")
}
