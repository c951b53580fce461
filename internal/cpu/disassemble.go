package cpu

import (
	"fmt"
	"strings"
)

// Disassemble renders the instruction at address, substituting its
// immediate operands, and returns it with its length in bytes. Relative
// jumps are shown with their target address.
func Disassemble(b Bus, address uint16) (string, uint8) {
	opcode := b.Read(address)
	in := &InstructionSet[opcode]
	if opcode == 0xCB {
		in = &InstructionSetCB[b.Read(address+1)]
	}
	length := in.Length()
	if in.Op == OpIllegal {
		return fmt.Sprintf("DB $%02X", opcode), length
	}

	operand := address + 1
	name := in.Name
	switch {
	case strings.Contains(name, "d16"):
		name = strings.Replace(name, "d16", fmt.Sprintf("$%04X", b.Read16(operand)), 1)
	case strings.Contains(name, "a16"):
		name = strings.Replace(name, "a16", fmt.Sprintf("$%04X", b.Read16(operand)), 1)
	case strings.Contains(name, "d8"):
		name = strings.Replace(name, "d8", fmt.Sprintf("$%02X", b.Read(operand)), 1)
	case strings.Contains(name, "a8"):
		name = strings.Replace(name, "a8", fmt.Sprintf("$FF%02X", b.Read(operand)), 1)
	case in.Op == OpJR:
		target := uint16(int32(address) + int32(length) + int32(int8(b.Read(operand))))
		name = strings.Replace(name, "r8", fmt.Sprintf("$%04X", target), 1)
	case strings.Contains(name, "+r8"):
		name = strings.Replace(name, "+r8", fmt.Sprintf("%+d", int8(b.Read(operand))), 1)
	case strings.Contains(name, "r8"):
		name = strings.Replace(name, "r8", fmt.Sprintf("%d", int8(b.Read(operand))), 1)
	}

	return name, length
}

// Trace returns a one line summary of the registers and the instruction
// at PC, in the format logged by the harness.
func (c *CPU) Trace() string {
	text, _ := Disassemble(c.b, c.PC)
	return fmt.Sprintf("%04X  %-20s AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X %s",
		c.PC, text, c.AF.Uint16(), c.BC.Uint16(), c.DE.Uint16(), c.HL.Uint16(), c.SP, c.Flags())
}
