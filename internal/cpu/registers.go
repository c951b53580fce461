package cpu

import "github.com/thelolagemann/sm83/internal/types"

// Register represents an 8-bit register. The CPU has 8 registers: A, B,
// C, D, E, H, L, and F. The F register is special in that it is used to
// hold the flags.
type Register = uint8

// RegisterPair represents a pair of registers which is used to hold a
// 16-bit value. The CPU has 4 register pairs: AF, BC, DE, and HL. A
// pair points at the halves it was created for.
type RegisterPair struct {
	High *Register
	Low  *Register

	// mask is applied to the low half on every write, which keeps
	// the unused bits of F clear when AF is written as a whole.
	mask uint8
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
// Both halves are updated before SetUint16 returns.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.mask
}

// Registers represents the CPU registers.
//
// The register pairs point into the Registers that created them, so a
// Registers (or a CPU) must not be copied by value: the copy's pairs
// would still read and write the original's registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register
	// f is only reachable through F and SetF, so that its low nibble
	// is always zero.
	f Register

	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// NewRegisters returns a register file holding the values left behind
// by the DMG boot ROM.
func NewRegisters() *Registers {
	r := &Registers{}
	r.init()
	r.Reset()
	return r
}

// init creates the register pairs. It must be called once the
// Registers have their final address.
func (r *Registers) init() {
	r.AF = &RegisterPair{High: &r.A, Low: &r.f, mask: types.HighNibble}
	r.BC = &RegisterPair{High: &r.B, Low: &r.C, mask: 0xFF}
	r.DE = &RegisterPair{High: &r.D, Low: &r.E, mask: 0xFF}
	r.HL = &RegisterPair{High: &r.H, Low: &r.L, mask: 0xFF}
}

// Reset loads the register values the DMG boot ROM hands over with.
//
//	AF = 0x01B0, BC = 0x0013, DE = 0x00D8, HL = 0x014D
//	SP = 0xFFFE, PC = 0x0100
func (r *Registers) Reset() {
	r.AF.SetUint16(0x01B0)
	r.BC.SetUint16(0x0013)
	r.DE.SetUint16(0x00D8)
	r.HL.SetUint16(0x014D)
	r.SP = 0xFFFE
	r.PC = 0x0100
}

// Clear sets every register to zero, as found at power on before the
// boot ROM has run.
func (r *Registers) Clear() {
	r.AF.SetUint16(0)
	r.BC.SetUint16(0)
	r.DE.SetUint16(0)
	r.HL.SetUint16(0)
	r.SP = 0
	r.PC = 0
}

// F returns the flags register.
func (r *Registers) F() Register {
	return r.f
}

// SetF sets the flags register. The low nibble is always discarded.
func (r *Registers) SetF(value uint8) {
	r.f = value & types.HighNibble
}
