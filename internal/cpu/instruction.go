package cpu

import "fmt"

// Operation identifies what an instruction does. The executor switches
// on it; the operands and condition come from the Instruction.
type Operation uint8

const (
	OpIllegal Operation = iota
	OpNOP
	OpLD
	OpLD16
	OpPUSH
	OpPOP
	OpINC
	OpDEC
	OpINC16
	OpDEC16
	OpADD
	OpADC
	OpSUB
	OpSBC
	OpAND
	OpXOR
	OpOR
	OpCP
	OpADDHL
	OpADDSP
	OpLDHLSP
	OpRLCA
	OpRRCA
	OpRLA
	OpRRA
	OpDAA
	OpCPL
	OpSCF
	OpCCF
	OpJR
	OpJP
	OpCALL
	OpRET
	OpRETI
	OpRST
	OpHALT
	OpSTOP
	OpDI
	OpEI
	OpPrefix

	// CB prefixed
	OpRLC
	OpRRC
	OpRL
	OpRR
	OpSLA
	OpSRA
	OpSWAP
	OpSRL
	OpBIT
	OpRES
	OpSET
)

// Operand describes where an instruction reads or writes its data,
// i.e. its addressing mode.
type Operand uint8

const (
	None Operand = iota

	// register direct
	RegA
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL

	// register pairs
	RegAF
	RegBC
	RegDE
	RegHL
	RegSP

	// immediate
	Imm8  // d8
	Imm16 // d16
	Rel8  // r8, a signed 8-bit immediate

	// register indirect
	IndBC  // (BC)
	IndDE  // (DE)
	IndHL  // (HL)
	IndHLI // (HL+), HL is incremented after the access
	IndHLD // (HL-), HL is decremented after the access

	// high page, 0xFF00 + offset
	HighImm // (a8)
	HighC   // (C)

	// absolute
	Abs16 // (a16)
)

var operandNames = [...]string{
	None:    "",
	RegA:    "A",
	RegB:    "B",
	RegC:    "C",
	RegD:    "D",
	RegE:    "E",
	RegH:    "H",
	RegL:    "L",
	RegAF:   "AF",
	RegBC:   "BC",
	RegDE:   "DE",
	RegHL:   "HL",
	RegSP:   "SP",
	Imm8:    "d8",
	Imm16:   "d16",
	Rel8:    "r8",
	IndBC:   "(BC)",
	IndDE:   "(DE)",
	IndHL:   "(HL)",
	IndHLI:  "(HL+)",
	IndHLD:  "(HL-)",
	HighImm: "(a8)",
	HighC:   "(C)",
	Abs16:   "(a16)",
}

func (o Operand) String() string {
	if int(o) < len(operandNames) {
		return operandNames[o]
	}
	return fmt.Sprintf("Operand(%d)", uint8(o))
}

// immediateBytes returns the number of bytes the operand occupies in
// the instruction stream.
func (o Operand) immediateBytes() uint8 {
	switch o {
	case Imm8, Rel8, HighImm:
		return 1
	case Imm16, Abs16:
		return 2
	}
	return 0
}

// Condition is the flag test of a conditional jump, call or return.
type Condition uint8

const (
	Always Condition = iota
	CondNZ
	CondZ
	CondNC
	CondC
)

var conditionNames = [...]string{"", "NZ", "Z", "NC", "C"}

func (c Condition) String() string {
	return conditionNames[c]
}

// Instruction is one entry of an instruction table.
type Instruction struct {
	Opcode uint8
	Name   string
	Op     Operation
	Dst    Operand
	Src    Operand
	Cond   Condition
	// Bit is the bit index of BIT, RES and SET.
	Bit uint8
	// Vector is the target of RST.
	Vector uint16
	// Cycles is the number of clock cycles the instruction takes, or
	// takes when its condition holds.
	Cycles uint8
	// CyclesSkipped is the number of clock cycles a conditional
	// instruction takes when its condition fails.
	CyclesSkipped uint8
	// Prefixed is set for the 0xCB table.
	Prefixed bool
}

// Length returns the number of bytes the instruction occupies,
// including the prefix and any immediate operands.
func (i *Instruction) Length() uint8 {
	n := 1 + i.Dst.immediateBytes() + i.Src.immediateBytes()
	if i.Prefixed {
		n++
	}
	return n
}

// Conditional returns true if the instruction's cycle count depends on
// a flag test.
func (i *Instruction) Conditional() bool {
	return i.Cond != Always
}

func (i *Instruction) String() string {
	if i.Prefixed {
		return fmt.Sprintf("CB %02X %s (%d cycles)", i.Opcode, i.Name, i.Cycles)
	}
	if i.Conditional() {
		return fmt.Sprintf("%02X %s (%d/%d cycles)", i.Opcode, i.Name, i.Cycles, i.CyclesSkipped)
	}
	return fmt.Sprintf("%02X %s (%d cycles)", i.Opcode, i.Name, i.Cycles)
}

// InstructionOpt configures an Instruction as it is defined.
type InstructionOpt func(*Instruction)

// Dst sets the operand the instruction writes to.
func Dst(o Operand) InstructionOpt {
	return func(i *Instruction) { i.Dst = o }
}

// Src sets the operand the instruction reads from.
func Src(o Operand) InstructionOpt {
	return func(i *Instruction) { i.Src = o }
}

// Cond makes the instruction conditional, taking skipped cycles when
// the condition fails.
func Cond(c Condition, skipped uint8) InstructionOpt {
	return func(i *Instruction) {
		i.Cond = c
		i.CyclesSkipped = skipped
	}
}

// BitIndex sets the bit tested, reset or set.
func BitIndex(b uint8) InstructionOpt {
	return func(i *Instruction) { i.Bit = b }
}

// Target sets the vector of an RST instruction.
func Target(v uint16) InstructionOpt {
	return func(i *Instruction) { i.Vector = v }
}

var (
	// InstructionSet holds the unprefixed instructions.
	InstructionSet [256]Instruction
	// InstructionSetCB holds the instructions reached through the 0xCB
	// prefix.
	InstructionSetCB [256]Instruction
)

func newInstruction(opcode uint8, name string, op Operation, cycles uint8, opts []InstructionOpt) Instruction {
	instruction := Instruction{
		Opcode: opcode,
		Name:   name,
		Op:     op,
		Cycles: cycles,
	}
	for _, opt := range opts {
		opt(&instruction)
	}
	return instruction
}

// DefineInstruction defines the instruction in the InstructionSet,
// with the provided opcode.
func DefineInstruction(opcode uint8, name string, op Operation, cycles uint8, opts ...InstructionOpt) {
	InstructionSet[opcode] = newInstruction(opcode, name, op, cycles, opts)
}

// DefineInstructionCB defines the instruction in the InstructionSetCB,
// with the provided opcode.
func DefineInstructionCB(opcode uint8, name string, op Operation, cycles uint8, opts ...InstructionOpt) {
	instruction := newInstruction(opcode, name, op, cycles, opts)
	instruction.Prefixed = true
	InstructionSetCB[opcode] = instruction
}
