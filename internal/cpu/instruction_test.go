package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// instructionTimings holds the cycles taken by each opcode of the
// InstructionSet, with the condition of conditional instructions held.
// 0xCB is the prefix and has no timing of its own.
var instructionTimings = [256]uint8{
	4, 12, 8, 8, 4, 4, 8, 4, 20, 8, 8, 8, 4, 4, 8, 4,
	4, 12, 8, 8, 4, 4, 8, 4, 12, 8, 8, 8, 4, 4, 8, 4,
	12, 12, 8, 8, 4, 4, 8, 4, 12, 8, 8, 8, 4, 4, 8, 4,
	12, 12, 8, 8, 12, 12, 12, 4, 12, 8, 8, 8, 4, 4, 8, 4,
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
	8, 8, 8, 8, 8, 8, 4, 8, 4, 4, 4, 4, 4, 4, 8, 4,
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
	20, 12, 16, 16, 24, 16, 8, 16, 20, 16, 16, 0, 24, 24, 8, 16,
	20, 12, 16, 4, 24, 16, 8, 16, 20, 16, 16, 4, 24, 4, 8, 16,
	12, 12, 8, 4, 4, 16, 8, 16, 16, 4, 16, 4, 4, 4, 8, 16,
	12, 12, 8, 4, 4, 16, 8, 16, 12, 8, 16, 4, 4, 4, 8, 16,
}

// skippedTimings holds the cycles taken by conditional instructions
// when their condition fails.
var skippedTimings = map[uint8]uint8{
	0x20: 8, 0x28: 8, 0x30: 8, 0x38: 8, // JR cc
	0xC0: 8, 0xC8: 8, 0xD0: 8, 0xD8: 8, // RET cc
	0xC2: 12, 0xCA: 12, 0xD2: 12, 0xDA: 12, // JP cc
	0xC4: 12, 0xCC: 12, 0xD4: 12, 0xDC: 12, // CALL cc
}

func TestInstructionSet(t *testing.T) {
	illegal := make(map[uint8]bool)
	for _, opcode := range illegalOpcodes {
		illegal[opcode] = true
	}

	for i := 0; i < 256; i++ {
		in := InstructionSet[i]
		assert.Equal(t, uint8(i), in.Opcode, "opcode %02X is not defined", i)
		assert.NotEmpty(t, in.Name, "opcode %02X has no name", i)
		assert.Equal(t, illegal[uint8(i)], in.Op == OpIllegal, "opcode %02X %s", i, in.Name)
		assert.False(t, in.Prefixed)

		cb := InstructionSetCB[i]
		assert.Equal(t, uint8(i), cb.Opcode, "CB opcode %02X is not defined", i)
		assert.NotEmpty(t, cb.Name, "CB opcode %02X has no name", i)
		assert.True(t, cb.Op >= OpRLC, "CB %02X %s", i, cb.Name)
		assert.True(t, cb.Prefixed)
	}
}

func TestInstructionSet_Names(t *testing.T) {
	names := map[uint8]string{
		0x00: "NOP",
		0x01: "LD BC, d16",
		0x08: "LD (a16), SP",
		0x22: "LD (HL+), A",
		0x36: "LD (HL), d8",
		0x3A: "LD A, (HL-)",
		0x41: "LD B, C",
		0x76: "HALT",
		0x7E: "LD A, (HL)",
		0x86: "ADD A, (HL)",
		0x8F: "ADC A, A",
		0x90: "SUB B",
		0x9A: "SBC A, D",
		0xAF: "XOR A",
		0xBE: "CP (HL)",
		0xC1: "POP BC",
		0xCE: "ADC A, d8",
		0xDF: "RST 18H",
		0xE0: "LDH (a8), A",
		0xF5: "PUSH AF",
		0xF8: "LD HL, SP+r8",
		0xFE: "CP d8",
	}
	for opcode, name := range names {
		assert.Equal(t, name, InstructionSet[opcode].Name, "opcode %02X", opcode)
	}

	cbNames := map[uint8]string{
		0x00: "RLC B",
		0x1E: "RR (HL)",
		0x37: "SWAP A",
		0x3F: "SRL A",
		0x46: "BIT 0, (HL)",
		0x7C: "BIT 7, H",
		0x87: "RES 0, A",
		0xFE: "SET 7, (HL)",
	}
	for opcode, name := range cbNames {
		assert.Equal(t, name, InstructionSetCB[opcode].Name, "CB opcode %02X", opcode)
	}
}

func TestInstruction_Length(t *testing.T) {
	lengths := map[uint8]uint8{
		0x00: 1, 0x01: 3, 0x06: 2, 0x08: 3, 0x10: 2, 0x18: 2, 0x20: 2,
		0x36: 2, 0xC3: 3, 0xCD: 3, 0xE0: 2, 0xE2: 1, 0xE8: 2, 0xEA: 3,
		0xF8: 2, 0xFA: 3, 0xFE: 2, 0xD3: 1,
	}
	for opcode, length := range lengths {
		assert.Equal(t, length, InstructionSet[opcode].Length(), "opcode %02X", opcode)
	}
	assert.Equal(t, uint8(2), InstructionSetCB[0x46].Length())
}

func TestInstruction_String(t *testing.T) {
	assert.Equal(t, "20 JR NZ, r8 (12/8 cycles)", InstructionSet[0x20].String())
	assert.Equal(t, "C3 JP a16 (16 cycles)", InstructionSet[0xC3].String())
	assert.Equal(t, "CB 7C BIT 7, H (8 cycles)", InstructionSetCB[0x7C].String())
}

// holdCondition sets the flags so that cond holds, or fails.
func holdCondition(c *CPU, cond Condition, hold bool) {
	c.SetF(0)
	switch cond {
	case CondNZ:
		c.SetFlag(FlagZero, !hold)
	case CondZ:
		c.SetFlag(FlagZero, hold)
	case CondNC:
		c.SetFlag(FlagCarry, !hold)
	case CondC:
		c.SetFlag(FlagCarry, hold)
	}
}

func TestInstruction_Timing(t *testing.T) {
	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		if opcode == 0xCB {
			continue
		}
		in := &InstructionSet[opcode]

		t.Run(fmt.Sprintf("%02X %s", opcode, in.Name), func(t *testing.T) {
			assert.Equal(t, instructionTimings[opcode], in.Cycles)
			assert.Equal(t, skippedTimings[opcode], in.CyclesSkipped)
			assert.Equal(t, skippedTimings[opcode] != 0, in.Conditional())

			c, _ := newTestCPU(t, opcode, 0x00, 0xC0)
			c.HL.SetUint16(0xC000)
			holdCondition(c, in.Cond, true)
			assert.Equal(t, instructionTimings[opcode], c.Step())

			if in.Conditional() {
				c, _ := newTestCPU(t, opcode, 0x00, 0xC0)
				holdCondition(c, in.Cond, false)
				assert.Equal(t, skippedTimings[opcode], c.Step())
				assert.Equal(t, uint16(0x0100)+uint16(in.Length()), c.PC, "a failed condition skips the operands")
			}
		})
	}
}

func TestInstructionCB_Timing(t *testing.T) {
	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		in := &InstructionSetCB[opcode]

		want := uint8(8)
		switch {
		case opcode&7 != 6:
		case opcode >= 0x40 && opcode < 0x80:
			want = 12
		default:
			want = 16
		}

		assert.Equal(t, want, in.Cycles, "CB %02X %s", opcode, in.Name)

		c, _ := newTestCPU(t, 0xCB, opcode)
		c.HL.SetUint16(0xC000)
		assert.Equal(t, want, c.Step(), "CB %02X %s", opcode, in.Name)
		assert.Equal(t, uint16(0x0102), c.PC)
	}
}
