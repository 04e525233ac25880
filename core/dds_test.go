package core

import (
	"math"
	"testing"
)

func TestPhaseWraparound(t *testing.T) {
	s := NewSynth()
	start := s.Phase()

	// The accumulator is modular: it returns to its starting value
	// after exactly 2^32/PhaseIncrement ticks.
	period := int((1 << 32) / uint64(PhaseIncrement))
	for i := 0; i < period; i++ {
		s.Next()
	}
	if s.Phase() != start {
		t.Errorf("phase = %#x after %d ticks, want %#x", s.Phase(), period, start)
	}
}

func TestPhasePersistsAcrossValues(t *testing.T) {
	s := NewSynth()
	s.Next()
	mid := s.Phase()
	if mid != PhaseIncrement {
		t.Errorf("phase after one tick = %#x, want %#x", mid, PhaseIncrement)
	}
}

func TestQuadrantSymmetry(t *testing.T) {
	// A falling-quadrant accumulator value v produces the same sample
	// as its mirror 0x7FFFFFFF-v in the rising quadrant.
	cases := []uint32{
		0x40000000, 0x50000000, 0x60000000, 0x7FFFFFFF,
		0x80000000, 0x90000000, 0xA0000000, 0xBFFFFFFF,
	}
	for _, v := range cases {
		mirror := 0x7FFFFFFF - v
		if got, want := sampleFor(v), sampleFor(mirror); got != want {
			t.Errorf("sampleFor(%#x) = %d, mirror %#x = %d", v, got, mirror, want)
		}
	}
}

func TestSineAccuracy(t *testing.T) {
	// The fixed-point kernel tracks a floating-point sine reference
	// within a bounded error across the full phase circle.
	const steps = 1 << 12
	const tolerance = 1 << 14 // Q30: about 1.5e-5 of full scale

	var worst int64
	for i := 0; i < steps; i++ {
		acc := uint32(i) << (32 - 12)
		got := int64(sineQ30(fold(acc)))
		ref := int64(math.Round(math.Sin(2*math.Pi*float64(acc)/(1<<32)) * (1 << 30)))
		err := got - ref
		if err < 0 {
			err = -err
		}
		if err > worst {
			worst = err
		}
	}
	if worst > tolerance {
		t.Errorf("worst error = %d Q30 counts, tolerance %d", worst, tolerance)
	}
	t.Logf("worst error %d Q30 counts (%.2e of full scale)", worst, float64(worst)/(1<<30))
}

func TestSampleRails(t *testing.T) {
	cases := []struct {
		acc  uint32
		want uint16
	}{
		{0x00000000, 2048}, // zero crossing, mid-scale
		{0x40000000, 4095}, // positive peak clamps at the top rail
		{0xC0000000, 0},    // negative peak
	}
	for _, c := range cases {
		if got := sampleFor(c.acc); got != c.want {
			t.Errorf("sampleFor(%#x) = %d, want %d", c.acc, got, c.want)
		}
	}
}

func TestSamplesWithinDACRange(t *testing.T) {
	s := NewSynth()
	for i := 0; i < 64; i++ {
		v := s.Next()
		if v > (1<<DACBits)-1 {
			t.Fatalf("sample %d exceeds the DAC range", v)
		}
	}
}
