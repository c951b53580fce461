package cpu

import "github.com/thelolagemann/sm83/pkg/bits"

// Flag is the bit index of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags holds a value of the F register. The flag engine produces a
// Flags value for every operation, which the executor then stores.
type Flags uint8

const (
	zeroFlag      Flags = 1 << FlagZero
	subtractFlag  Flags = 1 << FlagSubtract
	halfCarryFlag Flags = 1 << FlagHalfCarry
	carryFlag     Flags = 1 << FlagCarry
)

// newFlags builds a Flags value from the four flag bits.
func newFlags(z, n, h, c bool) Flags {
	var f Flags
	f = bits.Assign(f, FlagZero, z)
	f = bits.Assign(f, FlagSubtract, n)
	f = bits.Assign(f, FlagHalfCarry, h)
	f = bits.Assign(f, FlagCarry, c)
	return f
}

// Has returns true if the given flag is set.
func (f Flags) Has(flag Flag) bool {
	return bits.Test(f, flag)
}

// Zero, Subtract, HalfCarry and Carry report the individual flags.
func (f Flags) Zero() bool      { return f.Has(FlagZero) }
func (f Flags) Subtract() bool  { return f.Has(FlagSubtract) }
func (f Flags) HalfCarry() bool { return f.Has(FlagHalfCarry) }
func (f Flags) Carry() bool     { return f.Has(FlagCarry) }

// carry returns the carry flag as 0 or 1, for use in ADC and SBC.
func (f Flags) carry() uint8 {
	return uint8(bits.Val(f, FlagCarry))
}

func (f Flags) String() string {
	b := []byte("----")
	for i, c := range "ZNHC" {
		if f.Has(FlagZero - Flag(i)) {
			b[i] = byte(c)
		}
	}
	return string(b)
}

// Flag returns true if the given flag is set.
func (r *Registers) Flag(flag Flag) bool {
	return bits.Test(r.f, flag)
}

// SetFlag sets or clears a single flag, leaving the others untouched.
func (r *Registers) SetFlag(flag Flag, value bool) {
	r.SetF(bits.Assign(r.f, flag, value))
}

// Flags returns the current flags.
func (r *Registers) Flags() Flags {
	return Flags(r.f)
}

// setFlags replaces all four flags at once.
func (r *Registers) setFlags(f Flags) {
	r.SetF(uint8(f))
}
