package cpu

import "github.com/thelolagemann/sm83/pkg/bits"

// testBit tests bit b of value.
//
//	BIT b, r
//	b = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit b of value is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func testBit(value, b uint8, f Flags) Flags {
	return newFlags(!bits.Test(value, b), false, true, f.Carry())
}
