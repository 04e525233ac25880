package core

// RegisterBus is the abstract register access interface that core code uses.
// Platform-specific implementations map it onto real memory-mapped registers;
// tests back it with a simulated register bank.
type RegisterBus interface {
	// Read8 reads an 8-bit register
	Read8(addr uint32) uint8

	// Write8 writes an 8-bit register
	Write8(addr uint32, value uint8)

	// Read16 reads a 16-bit register
	Read16(addr uint32) uint16

	// Write16 writes a 16-bit register
	Write16(addr uint32, value uint16)

	// Read32 reads a 32-bit register
	Read32(addr uint32) uint32

	// Write32 writes a 32-bit register
	Write32(addr uint32, value uint32)
}

// Global singleton used by core code.
var registerBus RegisterBus

// SetRegisterBus is called by target-specific code to register its bus.
func SetRegisterBus(b RegisterBus) {
	registerBus = b
}

// MustRegs returns the configured bus or panics if missing.
func MustRegs() RegisterBus {
	if registerBus == nil {
		panic("register bus not configured")
	}
	return registerBus
}
