package cpu

import "github.com/thelolagemann/sm83/internal/types"

// The rotates and shifts below are shared by the CB prefixed
// instructions and the accumulator rotates (RLCA, RRCA, RLA, RRA). All
// of them set Z from the result; the accumulator forms pass their
// flags through accumulatorFlags, as the hardware always resets Z for
// them.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains the bit shifted out.

// rlc rotates n left by 1 bit. Bit 7 is copied to both the carry flag
// and bit 0.
//
//	RLC n
func rlc(n uint8) (uint8, Flags) {
	computed := n<<1 | n>>7
	return computed, newFlags(computed == 0, false, false, n&types.Bit7 != 0)
}

// rrc rotates n right by 1 bit. Bit 0 is copied to both the carry flag
// and bit 7.
//
//	RRC n
func rrc(n uint8) (uint8, Flags) {
	computed := n>>1 | n<<7
	return computed, newFlags(computed == 0, false, false, n&types.Bit0 != 0)
}

// rl rotates n left by 1 bit through the carry flag.
//
//	RL n
func rl(n uint8, f Flags) (uint8, Flags) {
	computed := n<<1 | f.carry()
	return computed, newFlags(computed == 0, false, false, n&types.Bit7 != 0)
}

// rr rotates n right by 1 bit through the carry flag.
//
//	RR n
func rr(n uint8, f Flags) (uint8, Flags) {
	computed := n>>1 | f.carry()<<7
	return computed, newFlags(computed == 0, false, false, n&types.Bit0 != 0)
}

// sla shifts n left by 1 bit into the carry flag. Bit 0 is reset.
//
//	SLA n
func sla(n uint8) (uint8, Flags) {
	computed := n << 1
	return computed, newFlags(computed == 0, false, false, n&types.Bit7 != 0)
}

// sra shifts n right by 1 bit into the carry flag. Bit 7 is unchanged.
//
//	SRA n
func sra(n uint8) (uint8, Flags) {
	computed := n&types.Bit7 | n>>1
	return computed, newFlags(computed == 0, false, false, n&types.Bit0 != 0)
}

// srl shifts n right by 1 bit into the carry flag. Bit 7 is reset.
//
//	SRL n
func srl(n uint8) (uint8, Flags) {
	computed := n >> 1
	return computed, newFlags(computed == 0, false, false, n&types.Bit0 != 0)
}

// swap exchanges the upper and lower nibbles of n. The carry flag is
// reset.
//
//	SWAP n
func swap(n uint8) (uint8, Flags) {
	computed := n<<4 | n>>4
	return computed, newFlags(computed == 0, false, false, false)
}

// accumulatorFlags resets Z, which RLCA, RRCA, RLA and RRA do whatever
// the result.
func accumulatorFlags(f Flags) Flags {
	return f &^ zeroFlag
}
