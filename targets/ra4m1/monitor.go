//go:build ra4m1

package main

import (
	"tonegen/core"
	"tonegen/regs"
)

// Clock out control register (diagnostic monitor pin). CKOCR sits in
// the protected block, so the one-time enable brackets itself with the
// write-protection key pair. This runs once at boot, before the main
// loop starts issuing clock operations.
const (
	regCKOCR = regs.SystemBase + 0x03E

	ckoEnable    = 1 << 7
	ckoSelSystem = 0x0 // Mirror the active system clock
)

// enableClockMonitor routes the active system clock to the CLKOUT pin
// for external verification. Passive: the core never reads it back.
func enableClockMonitor() {
	r := core.MustRegs()
	r.Write16(regs.PRCR, regs.PRCRUnlock)
	r.Write8(regCKOCR, ckoEnable|ckoSelSystem)
	r.Write16(regs.PRCR, regs.PRCRLock)
}
