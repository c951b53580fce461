package cpu

import "github.com/thelolagemann/sm83/internal/types"

// add8 adds b (and the incoming carry, for ADC) to a.
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func add8(a, b uint8, carry uint8) (uint8, Flags) {
	sum := uint16(a) + uint16(b) + uint16(carry)
	half := a&types.LowNibble + b&types.LowNibble + carry
	return uint8(sum), newFlags(uint8(sum) == 0, false, half > types.LowNibble, sum > 0xFF)
}

// sub8 subtracts b (and the incoming borrow, for SBC) from a.
//
//	SUB n
//	SBC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func sub8(a, b uint8, carry uint8) (uint8, Flags) {
	diff := int16(a) - int16(b) - int16(carry)
	half := int16(a&types.LowNibble) - int16(b&types.LowNibble) - int16(carry)
	return uint8(diff), newFlags(uint8(diff) == 0, true, half < 0, diff < 0)
}

// cp8 compares b to a. The flags are those of sub8, the result is
// discarded.
//
//	CP n
func cp8(a, b uint8) Flags {
	_, f := sub8(a, b, 0)
	return f
}

// inc8 increments n by 1.
//
//	INC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func inc8(n uint8, f Flags) (uint8, Flags) {
	incremented := n + 1
	return incremented, newFlags(incremented == 0, false, n&types.LowNibble == types.LowNibble, f.Carry())
}

// dec8 decrements n by 1.
//
//	DEC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func dec8(n uint8, f Flags) (uint8, Flags) {
	decremented := n - 1
	return decremented, newFlags(decremented == 0, true, n&types.LowNibble == 0, f.Carry())
}

// add16 adds two 16-bit values.
//
//	ADD HL, nn
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func add16(a, b uint16, f Flags) (uint16, Flags) {
	sum := uint32(a) + uint32(b)
	return uint16(sum), newFlags(f.Zero(), false, a&0xFFF+b&0xFFF > 0xFFF, sum > 0xFFFF)
}

// addSigned adds the signed 8-bit offset e to a. The carries are taken
// from the unsigned addition of the low byte of a and e.
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func addSigned(a uint16, e uint8) (uint16, Flags) {
	result := uint16(int32(a) + int32(int8(e)))
	carries := a ^ uint16(int8(e)) ^ result
	return result, newFlags(false, false, carries&0x10 == 0x10, carries&0x100 == 0x100)
}

// daa adjusts a into binary coded decimal, after an addition or
// subtraction of two BCD values. The direction of the correction is
// taken from N, its size from H, C and the digits of a.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the adjustment carried into a third digit, otherwise
//	    unchanged when subtracting.
func daa(a uint8, f Flags) (uint8, Flags) {
	carry := f.Carry()
	if !f.Subtract() {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if f.HalfCarry() || a&types.LowNibble > 0x9 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if f.HalfCarry() {
			a -= 0x06
		}
	}
	return a, newFlags(a == 0, f.Subtract(), false, carry)
}

// cpl complements a.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func cpl(a uint8, f Flags) (uint8, Flags) {
	return ^a, newFlags(f.Zero(), true, true, f.Carry())
}

// scf sets the carry flag.
//
//	SCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set.
func scf(f Flags) Flags {
	return newFlags(f.Zero(), false, false, true)
}

// ccf complements the carry flag.
//
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Complemented.
func ccf(f Flags) Flags {
	return newFlags(f.Zero(), false, false, !f.Carry())
}
