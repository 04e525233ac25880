//go:build ra4m1

package main

import (
	"runtime/volatile"
	"unsafe"
)

// SCI0 register map (console UART)
const (
	sci0Base = 0x40070000

	sciSMR = sci0Base + 0x00 // Serial mode
	sciBRR = sci0Base + 0x01 // Bit rate
	sciSCR = sci0Base + 0x02 // Serial control
	sciTDR = sci0Base + 0x03 // Transmit data
	sciSSR = sci0Base + 0x04 // Serial status
	sciRDR = sci0Base + 0x05 // Receive data
)

// SSR bits
const (
	ssrTDRE = 1 << 7 // Transmit data register empty
	ssrRDRF = 1 << 6 // Receive data register full
)

// SCR bits
const (
	scrTE  = 1 << 5 // Transmit enable
	scrRE  = 1 << 4 // Receive enable
	scrRIE = 1 << 6 // Receive interrupt enable (wakes the idle loop)
)

func reg8(addr uint32) *volatile.Register8 {
	return (*volatile.Register8)(unsafe.Pointer(uintptr(addr)))
}

// consoleInit brings up the console UART at 115200 baud on the boot
// clock. The receive interrupt is enabled only as a wake source; the
// handler itself does nothing and all reads happen from the main loop.
func consoleInit() {
	reg8(sciSCR).Set(0)
	reg8(sciSMR).Set(0)    // 8N1, PCLK
	reg8(sciBRR).Set(12)   // 115200 at the 48MHz boot clock
	reg8(sciSCR).Set(scrTE | scrRE | scrRIE)
}

// uartSource feeds console bytes into the main loop without blocking.
type uartSource struct{}

func (uartSource) ReadByte() (byte, bool) {
	if reg8(sciSSR).Get()&ssrRDRF == 0 {
		return 0, false
	}
	return reg8(sciRDR).Get(), true
}

// consoleWrite transmits one report line followed by CRLF.
func consoleWrite(s string) {
	for i := 0; i < len(s); i++ {
		putByte(s[i])
	}
	putByte('\r')
	putByte('\n')
}

func putByte(b byte) {
	for reg8(sciSSR).Get()&ssrTDRE == 0 {
	}
	reg8(sciTDR).Set(b)
}
