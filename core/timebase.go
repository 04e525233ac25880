// Timebase calibration and tick accounting
// The periodic tick is produced by a countdown timer clocked from the
// system clock, so its reload value must be recomputed after every clock
// switch before any elapsed-time decision is trusted again.
package core

import (
	"tonegen/regs"
)

// Tick rate bookkeeping: the tick period is 62.5us (16kHz sample rate),
// 16 ticks per millisecond. In kHz the reload works out to
// reload = round(effectiveKHz/16) - 1, which is the classic
// round(62.5 * MHz) - 1 without leaving integer arithmetic.
const (
	TicksPerMilli   = 16
	MillisPerSecond = 1000
)

// ReloadForKHz computes the countdown reload value for a system clock
// frequency given in kHz, rounding to the nearest count.
func ReloadForKHz(kHz uint32) uint32 {
	return (kHz+TicksPerMilli/2)/TicksPerMilli - 1
}

// Calibrator owns the timebase state: the reload value and the tick
// counters derived from it. The reload value is physically realized in
// the hardware countdown register; the calibrator is its only writer.
type Calibrator struct {
	reload uint32

	ticks  uint32 // Total ticks since start
	subMs  uint8  // Ticks into the current millisecond
	millis uint32 // Elapsed milliseconds
	subSec uint16 // Milliseconds into the current second
	secs   uint32 // Elapsed seconds
}

// NewCalibrator creates an uncalibrated timebase.
func NewCalibrator() *Calibrator {
	return &Calibrator{}
}

// Start programs the countdown timer for the given frequency and enables
// it with its interrupt, so wait-for-interrupt always has a wake source.
func (c *Calibrator) Start(kHz uint32) {
	r := MustRegs()
	c.reload = ReloadForKHz(kHz) & regs.SystReloadMask
	r.Write32(regs.SystRVR, c.reload)
	r.Write32(regs.SystCVR, 0) // any write clears the counter
	r.Write32(regs.SystCSR, regs.SystEnable|regs.SystTickInt|regs.SystClkSource)
}

// Recalibrate recomputes the reload value for a new system clock
// frequency and writes it into the live countdown register. The counter
// is not stopped: the new period takes effect at the next underflow with
// no dropped tick.
func (c *Calibrator) Recalibrate(kHz uint32) {
	c.reload = ReloadForKHz(kHz) & regs.SystReloadMask
	MustRegs().Write32(regs.SystRVR, c.reload)
}

// Reload returns the current reload value.
func (c *Calibrator) Reload() uint32 {
	return c.reload
}

// TickPending reports whether the countdown timer underflowed since the
// last poll. Reading the status register clears the flag.
func (c *Calibrator) TickPending() bool {
	return MustRegs().Read32(regs.SystCSR)&regs.SystCountFlag != 0
}

// OnTick advances the tick counters. Returns true when a full second has
// elapsed, which drives the periodic status report.
func (c *Calibrator) OnTick() bool {
	c.ticks++
	c.subMs++
	if c.subMs < TicksPerMilli {
		return false
	}
	c.subMs = 0
	c.millis++
	c.subSec++
	if c.subSec < MillisPerSecond {
		return false
	}
	c.subSec = 0
	c.secs++
	return true
}

// Ticks returns the total tick count since start.
func (c *Calibrator) Ticks() uint32 {
	return c.ticks
}

// Millis returns elapsed milliseconds since start.
func (c *Calibrator) Millis() uint32 {
	return c.millis
}

// Seconds returns elapsed whole seconds since start.
func (c *Calibrator) Seconds() uint32 {
	return c.secs
}
