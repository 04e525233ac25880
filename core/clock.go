// Clock source controller
// Owns the write-protection protocol, oscillator sequencing, PLL
// configuration and the system clock selector. All register mutations
// happen from the cooperative main loop; no interrupt handler touches
// these registers.
package core

import (
	"tonegen/regs"
)

// Source identifies the active system clock source
type Source uint8

const (
	SourceInternal Source = iota // On-chip oscillator, always ready
	SourceExternalPLL            // External reference through the PLL
)

// State of the clock switching machine
type State uint8

const (
	StateInternalIdle State = iota
	StateSwitching
	StateExternalStable
	StateExternalFailed
)

// Multiplier and divider legal ranges. Requests outside these clamp
// silently rather than error.
const (
	MultiplierMin = 1
	MultiplierMax = 31
)

// InternalFreqKHz is the on-chip oscillator frequency. The internal
// source needs no stabilization wait.
const InternalFreqKHz = 48000

// Switch sequence settle windows
const (
	oscSettleMillis = 100 // External oscillator settle window
	pllStopMicros   = 4   // After PLL stop, before reprogramming
	pllLockMillis   = 1   // PLL lock time
)

// ClockConfig holds the requested clock parameters and the derived
// effective frequency. EffectiveKHz is recomputed on every change and
// never stored stale.
type ClockConfig struct {
	Source       Source
	Multiplier   uint8  // PLL multiplication ratio is Multiplier+1
	Divider      uint8  // Reference divider, 2 or 4
	ReferenceKHz uint32 // External reference frequency
	EffectiveKHz uint32 // Frequency of the active system clock
}

// OscillatorStatus is written only by the controller at the end of a
// switch attempt. Read by the power policy and the reporting path.
type OscillatorStatus struct {
	ExternalOscStable bool
	PLLStable         bool
	ClockGood         bool
	StopDetected      bool // OSTDSR flag, diagnostic only
}

// Controller is the clock source switching state machine. There is
// exactly one physical clock tree, so exactly one Controller instance
// owns ClockConfig and OscillatorStatus.
type Controller struct {
	cfg    ClockConfig
	status OscillatorStatus
	state  State

	calibrator *Calibrator
	power      *Power
}

// NewController creates the controller for a given external reference
// frequency. The system starts on the internal oscillator.
func NewController(referenceKHz uint32, cal *Calibrator, pow *Power) *Controller {
	c := &Controller{
		cfg: ClockConfig{
			Source:       SourceInternal,
			Multiplier:   MultiplierMin,
			Divider:      2,
			ReferenceKHz: referenceKHz,
			EffectiveKHz: InternalFreqKHz,
		},
		state:      StateInternalIdle,
		calibrator: cal,
		power:      pow,
	}
	return c
}

// Config returns a copy of the current clock configuration.
func (c *Controller) Config() ClockConfig {
	return c.cfg
}

// Status returns the oscillator status from the last switch attempt.
func (c *Controller) Status() OscillatorStatus {
	return c.status
}

// State returns the current switching state.
func (c *Controller) State() State {
	return c.state
}

// EffectiveKHz returns the frequency of the active system clock.
func (c *Controller) EffectiveKHz() uint32 {
	return c.cfg.EffectiveKHz
}

// clampMultiplier bounds a requested multiplier to the legal range.
func clampMultiplier(mul uint8) uint8 {
	if mul < MultiplierMin {
		return MultiplierMin
	}
	if mul > MultiplierMax {
		return MultiplierMax
	}
	return mul
}

// clampDivider bounds a requested divider to the two supported ratios.
func clampDivider(div uint8) uint8 {
	if div == 4 {
		return 4
	}
	return 2
}

// effectiveKHz derives the system clock frequency from the PLL settings.
func effectiveKHz(referenceKHz uint32, mul, div uint8) uint32 {
	return referenceKHz / uint32(div) * (uint32(mul) + 1)
}

// SwitchToInternal unconditionally selects the internal oscillator.
// Always succeeds. The PLL and the main oscillator are stopped to save
// power; sleep is disabled until a verified external clock is active
// again so the system stays wakeable by a later command.
func (c *Controller) SwitchToInternal() {
	r := MustRegs()

	r.Write16(regs.PRCR, regs.PRCRUnlock)
	r.Write8(regs.SCKSCR, regs.CKSELInternal)
	r.Write8(regs.PLLCR, regs.PLLSTP)
	r.Write8(regs.MOSCCR, regs.MOSTP)
	r.Write16(regs.PRCR, regs.PRCRLock)

	c.cfg.Source = SourceInternal
	c.cfg.EffectiveKHz = InternalFreqKHz
	c.status = OscillatorStatus{}
	c.state = StateInternalIdle
	c.afterSwitch()
}

// SwitchToExternalPLL reconfigures the system clock to run from the
// external reference through the PLL. Blocks for the full oscillator
// settle window (~100ms) before the stability flag can be trusted.
// Returns false if the external oscillator failed to start; the system
// is left on the internal clock in that case.
//
// Reconfiguring an active PLL in place is disallowed: if the PLL is
// already the system clock the controller reverts to internal first.
func (c *Controller) SwitchToExternalPLL(mul, div uint8) bool {
	mul = clampMultiplier(mul)
	div = clampDivider(div)

	if c.cfg.Source == SourceExternalPLL {
		c.SwitchToInternal()
	}
	c.state = StateSwitching

	r := MustRegs()
	d := MustDelay()

	r.Write16(regs.PRCR, regs.PRCRUnlock)

	// Restart the main oscillator with the stability wait timer
	// disabled; the external reference is pre-qualified.
	r.Write8(regs.MOSCCR, regs.MOSTP)
	r.Write8(regs.MOMCR, r.Read8(regs.MOMCR)&^uint8(regs.MOSEL))
	r.Write8(regs.MOSCWTCR, 0)
	_ = r.Read8(regs.MOSCWTCR) // forces the writes to land before the restart
	r.Write8(regs.MOSCCR, 0)

	d.DelayMillis(oscSettleMillis)

	if r.Read8(regs.OSCSF)&regs.MOSCSF == 0 {
		// Oscillator never came up. Abort and stay on the internal
		// clock. The stopped oscillator draws no power.
		r.Write8(regs.MOSCCR, regs.MOSTP)
		r.Write16(regs.PRCR, regs.PRCRLock)
		c.state = StateExternalFailed
		c.failToInternal()
		return false
	}

	// Program the PLL while it is stopped, then give it the lock window.
	r.Write8(regs.PLLCR, regs.PLLSTP)
	d.DelayMicros(pllStopMicros)
	r.Write8(regs.PLLCCR, pllccrValue(mul, div))
	r.Write8(regs.PLLCR, 0)
	d.DelayMillis(pllLockMillis)

	r.Write8(regs.SCKSCR, regs.CKSELPLL)

	// Oscillation stop detection is reported but never drives control.
	stopDetected := r.Read8(regs.OSTDSR)&regs.OSTDF != 0
	pllStable := r.Read8(regs.OSCSF)&regs.PLLSF != 0

	r.Write16(regs.PRCR, regs.PRCRLock)

	c.cfg.Source = SourceExternalPLL
	c.cfg.Multiplier = mul
	c.cfg.Divider = div
	c.cfg.EffectiveKHz = effectiveKHz(c.cfg.ReferenceKHz, mul, div)
	c.status = OscillatorStatus{
		ExternalOscStable: true,
		PLLStable:         pllStable,
		ClockGood:         true,
		StopDetected:      stopDetected,
	}
	c.state = StateExternalStable
	c.afterSwitch()
	return true
}

// AdjustMultiplier steps the multiplier by delta, clamping at the range
// boundaries. If the PLL is the active source the new setting is applied
// immediately through a full revert-and-switch cycle.
func (c *Controller) AdjustMultiplier(delta int8) bool {
	mul := int16(c.cfg.Multiplier) + int16(delta)
	if mul < MultiplierMin {
		mul = MultiplierMin
	}
	if mul > MultiplierMax {
		mul = MultiplierMax
	}
	c.cfg.Multiplier = uint8(mul)
	if c.cfg.Source == SourceExternalPLL {
		return c.SwitchToExternalPLL(c.cfg.Multiplier, c.cfg.Divider)
	}
	return true
}

// SelectDivider records a new reference divider (2 or 4), re-switching
// immediately when the PLL is active.
func (c *Controller) SelectDivider(div uint8) bool {
	c.cfg.Divider = clampDivider(div)
	if c.cfg.Source == SourceExternalPLL {
		return c.SwitchToExternalPLL(c.cfg.Multiplier, c.cfg.Divider)
	}
	return true
}

// pllccrValue packs the multiplier and divider into the PLLCCR layout.
func pllccrValue(mul, div uint8) uint8 {
	v := mul & regs.PLLMULMask
	if div == 4 {
		v |= regs.PLODIVBy4 << regs.PLODIVPos
	} else {
		v |= regs.PLODIVBy2 << regs.PLODIVPos
	}
	return v
}

// failToInternal records the failed attempt and auto-reverts the state
// machine to internal idle. The selector never left the internal clock,
// so only bookkeeping changes here.
func (c *Controller) failToInternal() {
	c.cfg.Source = SourceInternal
	c.cfg.EffectiveKHz = InternalFreqKHz
	c.status = OscillatorStatus{}
	c.state = StateInternalIdle
	c.afterSwitch()
}

// afterSwitch runs the post-switch obligations: every successful switch
// invalidates all previously scheduled time-based waits, so the timebase
// is recalibrated before any tick-dependent work is trusted, and the
// sleep policy is updated in the same transaction.
func (c *Controller) afterSwitch() {
	if c.calibrator != nil {
		c.calibrator.Recalibrate(c.cfg.EffectiveKHz)
	}
	if c.power != nil {
		c.power.SetClockGood(c.status.ClockGood)
	}
}
