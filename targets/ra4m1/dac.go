//go:build ra4m1

package main

import (
	"runtime/volatile"
	"unsafe"
)

// On-chip 12-bit DAC register map
const (
	dacBase = 0x4005E000

	dacDADR0 = dacBase + 0x00 // Data register, right-justified
	dacDACR  = dacBase + 0x04 // Control
)

// DACR bits
const (
	dacrDAOE0 = 1 << 6 // Channel 0 output enable
)

// onChipDAC drives the DA0 output pin with the synthesized waveform.
type onChipDAC struct{}

func (onChipDAC) Configure() error {
	(*volatile.Register8)(unsafe.Pointer(uintptr(dacDACR))).Set(dacrDAOE0)
	return nil
}

func (onChipDAC) Write(sample uint16) error {
	(*volatile.Register16)(unsafe.Pointer(uintptr(dacDADR0))).Set(sample)
	return nil
}
