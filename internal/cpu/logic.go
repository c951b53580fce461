package cpu

// and8 performs a bitwise AND of a and b.
//
//	AND n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func and8(a, b uint8) (uint8, Flags) {
	computed := a & b
	return computed, newFlags(computed == 0, false, true, false)
}

// or8 performs a bitwise OR of a and b.
//
//	OR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func or8(a, b uint8) (uint8, Flags) {
	computed := a | b
	return computed, newFlags(computed == 0, false, false, false)
}

// xor8 performs a bitwise XOR of a and b.
//
//	XOR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func xor8(a, b uint8) (uint8, Flags) {
	computed := a ^ b
	return computed, newFlags(computed == 0, false, false, false)
}
