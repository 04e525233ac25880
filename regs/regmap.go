// Register map for the clock generation circuit and the system tick timer.
// Addresses follow the RA4-class system controller block; all clock-control
// registers except OSCSF and OSTDSR are guarded by the PRCR write-protection
// key and must be accessed between an unlock and a lock write.
package regs

// System controller base and clock-control registers (8-bit unless noted).
const (
	SystemBase = 0x4001E000

	SCKSCR   = SystemBase + 0x026 // System clock source select
	PLLCR    = SystemBase + 0x02A // PLL stop control
	PLLCCR   = SystemBase + 0x02B // PLL multiplier / output divider
	MOSCCR   = SystemBase + 0x032 // Main oscillator stop control
	OSCSF    = SystemBase + 0x03C // Oscillator stabilization flags (read-only)
	OSTDCR   = SystemBase + 0x040 // Oscillation stop detection control
	OSTDSR   = SystemBase + 0x041 // Oscillation stop detection status
	MOSCWTCR = SystemBase + 0x0A2 // Main oscillator wait time
	PRCR     = SystemBase + 0x3FE // Protect register (16-bit)
	MOMCR    = SystemBase + 0x413 // Main oscillator mode control
)

// PRCR key. The high byte must carry the 0xA5 key on every write; PRC0
// gates the clock generation registers.
const (
	PRCRKey    = 0xA500
	PRCRUnlock = PRCRKey | 0x0001
	PRCRLock   = PRCRKey
)

// SCKSCR.CKSEL values.
const (
	CKSELInternal = 0x00 // On-chip high-speed oscillator
	CKSELPLL      = 0x05 // PLL output
)

// MOSCCR bits.
const (
	MOSTP = 1 << 0 // 1 = main oscillator stopped
)

// MOMCR bits.
const (
	MOSEL = 1 << 6 // 0 = resonator, 1 = external clock input
)

// OSCSF flags.
const (
	MOSCSF = 1 << 3 // Main oscillator stabilized
	PLLSF  = 1 << 5 // PLL stabilized
)

// PLLCR bits.
const (
	PLLSTP = 1 << 0 // 1 = PLL stopped
)

// PLLCCR fields: PLLMUL in bits 0-4 (multiplication ratio is PLLMUL+1),
// PLODIV in bits 6-7.
const (
	PLLMULMask = 0x1F
	PLODIVPos  = 6
	PLODIVBy2  = 0x1
	PLODIVBy4  = 0x2
)

// OSTDSR flags.
const (
	OSTDF = 1 << 0 // Oscillation stop detected
)

// System tick timer (Cortex-M SysTick block). The reload register holds a
// 24-bit countdown value; reading CSR clears COUNTFLAG.
const (
	SystickBase = 0xE000E010

	SystCSR = SystickBase + 0x0 // Control and status
	SystRVR = SystickBase + 0x4 // Reload value
	SystCVR = SystickBase + 0x8 // Current value (write clears)
)

// SystCSR bits.
const (
	SystEnable    = 1 << 0
	SystTickInt   = 1 << 1
	SystClkSource = 1 << 2 // Count on the processor clock
	SystCountFlag = 1 << 16
)

// SystReloadMask bounds the reload value to the counter width.
const SystReloadMask = 0x00FFFFFF
