// Direct digital synthesis sine generator
// A 32-bit phase accumulator wraps once per output cycle; quadrant
// folding restricts a fixed-point odd polynomial to a quarter wave. The
// kernel is branch-light and deterministic so it fits the tick budget
// under the slowest configured clock.
package core

// PhaseIncrement is the per-tick phase step. It is a build-time constant
// and is deliberately not recomputed when the clock rate changes, so the
// real-world tone frequency tracks the tick rate (1kHz nominal at the
// 16kHz tick). The accumulator wraps after exactly 2^32/PhaseIncrement
// ticks.
const PhaseIncrement uint32 = 0x10000000

// Quadrant fold boundaries. Accumulator values in the wrap-around band
// [0xC0000000, 0x40000000) form the rising quadrant pair and map to the
// polynomial input directly.
const (
	risingLow  = 0xC0000000
	risingHigh = 0x40000000
)

// Fixed-point sine coefficients: Taylor expansion of sin(pi/2*t) on
// t in [-1,1], Q30. The truncation error of the 9th-order series is
// below 4e-6 of full scale, well inside the DAC's resolution.
const (
	sinC1 = 1686629713 // pi/2
	sinC3 = -693598668 // -(pi/2)^3/3!
	sinC5 = 85569306   // (pi/2)^5/5!
	sinC7 = -5026995   // -(pi/2)^7/7!
	sinC9 = 172272     // (pi/2)^9/9!
)

// Synth is the DDS engine. The phase accumulator persists across clock
// switches: a switch changes the tick rate, never the phase.
type Synth struct {
	acc uint32
}

// NewSynth creates a synthesizer starting at zero phase.
func NewSynth() *Synth {
	return &Synth{}
}

// Phase returns the current accumulator value.
func (s *Synth) Phase() uint32 {
	return s.acc
}

// Next advances the phase by one tick and returns the DAC sample for the
// new phase. Called exactly once per timebase tick from the main loop.
func (s *Synth) Next() uint16 {
	s.acc += PhaseIncrement
	return sampleFor(s.acc)
}

// sampleFor maps an accumulator value to a DAC code.
func sampleFor(acc uint32) uint16 {
	return scaleToDAC(sineQ30(fold(acc)))
}

// fold reduces the full phase circle to the rising quadrant pair. Values
// in the falling half mirror onto the rising half around the +amplitude
// peak, so the polynomial only ever sees a quarter-wave domain.
func fold(acc uint32) int32 {
	if acc >= risingLow || acc < risingHigh {
		return int32(acc)
	}
	return int32(0x7FFFFFFF - acc)
}

// mulQ30 multiplies two Q30 values with rounding, keeping the upper half
// of the 64-bit product.
func mulQ30(a, b int32) int32 {
	return int32((int64(a)*int64(b) + 1<<29) >> 30)
}

// sineQ30 evaluates sin for a folded phase x in [-2^30, 2^30), where
// 2^30 is a quarter turn. The result is Q30 in [-1, 1].
func sineQ30(x int32) int32 {
	w := mulQ30(x, x)
	p := int32(sinC9)
	p = mulQ30(p, w) + sinC7
	p = mulQ30(p, w) + sinC5
	p = mulQ30(p, w) + sinC3
	p = mulQ30(p, w) + sinC1
	return mulQ30(p, x)
}

// scaleToDAC maps a Q30 sine value to the DAC's bit depth: arithmetic
// right shift plus mid-scale offset, clamped at the rails. The rounding
// in mulQ30 can overshoot full scale by a few counts at the peaks.
func scaleToDAC(r int32) uint16 {
	v := (r >> (31 - DACBits)) + DACMidScale
	if v < 0 {
		v = 0
	}
	if v > (1<<DACBits)-1 {
		v = (1 << DACBits) - 1
	}
	return uint16(v)
}
