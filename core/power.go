// Power state controller
// Sleep in the idle path is permitted only while a verified-good external
// clock is active. A failed switch or an explicit revert clears the
// permission in the same transaction that clears ClockGood, so the system
// is always wakeable by a later command when running internally.
package core

// Power decides whether the idle path may suspend the core until the
// next interrupt.
type Power struct {
	sleepOK bool
}

// NewPower creates the policy with sleep disabled (internal clock at boot).
func NewPower() *Power {
	return &Power{}
}

// SetClockGood updates the sleep permission from the oscillator status.
func (p *Power) SetClockGood(good bool) {
	p.sleepOK = good
}

// SleepAllowed reports whether the idle path may wait for interrupt.
func (p *Power) SleepAllowed() bool {
	return p.sleepOK
}

// Idle suspends the core until the next interrupt when policy allows.
// Wake resumes at the top of the main loop, not at the suspension point.
func (p *Power) Idle() {
	if p.sleepOK {
		MustIdler().WaitForInterrupt()
	}
}
