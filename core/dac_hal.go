package core

// DACBits is the output resolution of the waveform DAC.
const DACBits = 12

// DACMidScale is the zero-signal output code.
const DACMidScale = 1 << (DACBits - 1)

// WaveformDAC is the abstract waveform output interface. One sample is
// written per timebase tick. Implementations exist for the on-chip DAC,
// an external I2C DAC and a capture device for tests.
type WaveformDAC interface {
	// Configure prepares the converter for output
	Configure() error

	// Write emits one right-justified sample (0..2^DACBits-1)
	Write(sample uint16) error
}

// Global singleton used by core code.
var waveformDAC WaveformDAC

// SetWaveformDAC is called by target-specific code to register its converter.
func SetWaveformDAC(d WaveformDAC) {
	waveformDAC = d
}

// MustDAC returns the configured converter or panics if missing.
func MustDAC() WaveformDAC {
	if waveformDAC == nil {
		panic("waveform DAC not configured")
	}
	return waveformDAC
}
