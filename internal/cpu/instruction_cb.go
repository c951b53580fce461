package cpu

import "fmt"

// shiftOperations lists the rotate and shift operations of 0xCB00 -
// 0xCB3F, in the order encoded by bits 3-5 of the opcode.
var shiftOperations = [8]struct {
	op   Operation
	name string
}{
	{OpRLC, "RLC"},
	{OpRRC, "RRC"},
	{OpRL, "RL"},
	{OpRR, "RR"},
	{OpSLA, "SLA"},
	{OpSRA, "SRA"},
	{OpSWAP, "SWAP"},
	{OpSRL, "SRL"},
}

func init() {
	generateShiftInstructions()
	generateBitInstructions()
}

// generateShiftInstructions generates the rotates, shifts and SWAP.
//
//	0xCB00 RLC B
//	0xCB01 RLC C
//	....
//	0xCB3F SRL A
func generateShiftInstructions() {
	for i, shift := range shiftOperations {
		for j, r := range registerOperands {
			cycles := uint8(8)
			if r == IndHL {
				cycles = 16
			}
			DefineInstructionCB(uint8(i)<<3+uint8(j), fmt.Sprintf("%s %s", shift.name, r), shift.op, cycles, Dst(r))
		}
	}
}

// generateBitInstructions generates BIT, RES and SET for each bit of
// each operand. BIT only reads its operand, so BIT b, (HL) takes 12
// cycles rather than 16.
//
//	0xCB40 BIT 0, B
//	0xCB80 RES 0, B
//	0xCBC0 SET 0, B
func generateBitInstructions() {
	for b := uint8(0); b < 8; b++ {
		for j, r := range registerOperands {
			base := b<<3 + uint8(j)

			bitCycles, cycles := uint8(8), uint8(8)
			if r == IndHL {
				bitCycles, cycles = 12, 16
			}
			DefineInstructionCB(0x40+base, fmt.Sprintf("BIT %d, %s", b, r), OpBIT, bitCycles, Src(r), BitIndex(b))
			DefineInstructionCB(0x80+base, fmt.Sprintf("RES %d, %s", b, r), OpRES, cycles, Dst(r), BitIndex(b))
			DefineInstructionCB(0xC0+base, fmt.Sprintf("SET %d, %s", b, r), OpSET, cycles, Dst(r), BitIndex(b))
		}
	}
}
