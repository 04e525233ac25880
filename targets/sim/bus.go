// Simulated register backing store
// Models just enough of the clock generation block for the controller's
// register protocol to be exercised without hardware: PRCR
// write-protection is enforced (protected writes while locked are
// dropped and recorded), oscillator and PLL stability flags follow the
// stop bits, and the SysTick countflag is injectable. Every access and
// delay is recorded in an ordered trace so tests can assert sequencing.
package sim

import (
	"tonegen/regs"
)

// Op is one recorded bus access or delay call
type Op struct {
	Kind  string // "w8", "w16", "w32", "r8", "delay-us", "delay-ms"
	Addr  uint32
	Value uint32
}

// Bus is a simulated register bank implementing the core RegisterBus
// interface.
type Bus struct {
	mem    map[uint32]uint32
	locked bool

	// Failure scripting
	FailMainOsc bool // Main oscillator never reports stable
	FailPLL     bool // PLL never reports locked
	StopDetect  bool // Oscillation-stop-detection flag reads set

	tickPending bool

	Trace      []Op // Ordered writes, reads of interest and delays
	Violations []Op // Protected writes attempted while locked
}

// NewBus creates a bank in the reset state: protection locked, main
// oscillator and PLL stopped, internal source selected.
func NewBus() *Bus {
	b := &Bus{
		mem:    make(map[uint32]uint32),
		locked: true,
	}
	b.mem[regs.MOSCCR] = regs.MOSTP
	b.mem[regs.PLLCR] = regs.PLLSTP
	b.mem[regs.SCKSCR] = regs.CKSELInternal
	b.mem[regs.PRCR] = regs.PRCRLock
	return b
}

// protected reports whether an address is guarded by PRCR.
func protected(addr uint32) bool {
	switch addr {
	case regs.SCKSCR, regs.PLLCR, regs.PLLCCR, regs.MOSCCR,
		regs.MOSCWTCR, regs.MOMCR, regs.OSTDCR:
		return true
	}
	return false
}

func (b *Bus) record(kind string, addr, value uint32) {
	b.Trace = append(b.Trace, Op{Kind: kind, Addr: addr, Value: value})
}

func (b *Bus) store(kind string, addr, value uint32) {
	b.record(kind, addr, value)
	if protected(addr) && b.locked {
		b.Violations = append(b.Violations, Op{Kind: kind, Addr: addr, Value: value})
		return
	}
	b.mem[addr] = value
	b.model(addr, value)
}

// model applies the hardware side effects of a landed write.
func (b *Bus) model(addr, value uint32) {
	switch addr {
	case regs.PRCR:
		// Writes without the key never land (filtered in Write16).
		b.locked = value&0x1 == 0
	case regs.MOSCCR:
		flags := b.mem[regs.OSCSF]
		if value&regs.MOSTP == 0 && !b.FailMainOsc {
			flags |= regs.MOSCSF
		} else {
			flags &^= regs.MOSCSF
		}
		b.mem[regs.OSCSF] = flags
	case regs.PLLCR:
		flags := b.mem[regs.OSCSF]
		if value&regs.PLLSTP == 0 && !b.FailPLL {
			flags |= regs.PLLSF
		} else {
			flags &^= regs.PLLSF
		}
		b.mem[regs.OSCSF] = flags
	}
}

// Read8 implements RegisterBus
func (b *Bus) Read8(addr uint32) uint8 {
	b.record("r8", addr, 0)
	if addr == regs.OSTDSR {
		if b.StopDetect {
			return regs.OSTDF
		}
		return 0
	}
	return uint8(b.mem[addr])
}

// Write8 implements RegisterBus
func (b *Bus) Write8(addr uint32, value uint8) {
	b.store("w8", addr, uint32(value))
}

// Read16 implements RegisterBus
func (b *Bus) Read16(addr uint32) uint16 {
	return uint16(b.mem[addr])
}

// Write16 implements RegisterBus
func (b *Bus) Write16(addr uint32, value uint16) {
	if addr == regs.PRCR && value&0xFF00 != regs.PRCRKey {
		// Hardware ignores protect writes without the 0xA5 key
		b.record("w16", addr, uint32(value))
		return
	}
	b.store("w16", addr, uint32(value))
}

// Read32 implements RegisterBus. Reading the SysTick control register
// clears the countflag, as on hardware.
func (b *Bus) Read32(addr uint32) uint32 {
	if addr == regs.SystCSR {
		v := b.mem[addr]
		if b.tickPending {
			v |= regs.SystCountFlag
			b.tickPending = false
		}
		return v
	}
	return b.mem[addr]
}

// Write32 implements RegisterBus
func (b *Bus) Write32(addr uint32, value uint32) {
	b.record("w32", addr, value)
	if addr == regs.SystCVR {
		// Any write clears the counter
		b.mem[addr] = 0
		return
	}
	b.mem[addr] = value
}

// TriggerTick marks a countdown underflow; the next CSR read reports it.
func (b *Bus) TriggerTick() {
	b.tickPending = true
}

// Locked reports the current protection state.
func (b *Bus) Locked() bool {
	return b.locked
}

// Reg returns the stored value of a register.
func (b *Bus) Reg(addr uint32) uint32 {
	return b.mem[addr]
}

// Writes returns every value written to addr, in order, including
// writes dropped by protection.
func (b *Bus) Writes(addr uint32) []uint32 {
	var out []uint32
	for _, op := range b.Trace {
		if op.Addr == addr && op.Kind[0] == 'w' {
			out = append(out, op.Value)
		}
	}
	return out
}
