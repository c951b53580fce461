package cpu

import "fmt"

// registerOperands lists the 8-bit operands in the order the opcode
// encodes them in its low (source) or middle (destination) 3 bits.
var registerOperands = [8]Operand{RegB, RegC, RegD, RegE, RegH, RegL, IndHL, RegA}

// pairOperands lists the register pairs encoded in bits 4-5 of the
// 16-bit load and arithmetic instructions.
var pairOperands = [4]Operand{RegBC, RegDE, RegHL, RegSP}

// stackOperands lists the register pairs encoded in bits 4-5 of PUSH
// and POP, where AF takes the place of SP.
var stackOperands = [4]Operand{RegBC, RegDE, RegHL, RegAF}

// conditions lists the conditions encoded in bits 3-4 of the
// conditional jumps, calls and returns.
var conditions = [4]Condition{CondNZ, CondZ, CondNC, CondC}

// aluOperations lists the ALU operations encoded in bits 3-5 of
// 0x80 - 0xBF and of the d8 forms at 0xC6 - 0xFE.
var aluOperations = [8]struct {
	op     Operation
	prefix string
}{
	{OpADD, "ADD A, "},
	{OpADC, "ADC A, "},
	{OpSUB, "SUB "},
	{OpSBC, "SBC A, "},
	{OpAND, "AND "},
	{OpXOR, "XOR "},
	{OpOR, "OR "},
	{OpCP, "CP "},
}

// illegalOpcodes have no defined behaviour on the hardware, which
// locks up when it fetches one.
var illegalOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	DefineInstruction(0x00, "NOP", OpNOP, 4)
	DefineInstruction(0x10, "STOP", OpSTOP, 4, Src(Imm8))
	DefineInstruction(0x76, "HALT", OpHALT, 4)
	DefineInstruction(0xF3, "DI", OpDI, 4)
	DefineInstruction(0xFB, "EI", OpEI, 4)
	DefineInstruction(0xCB, "PREFIX CB", OpPrefix, 0)

	// accumulator and flag operations
	DefineInstruction(0x07, "RLCA", OpRLCA, 4)
	DefineInstruction(0x0F, "RRCA", OpRRCA, 4)
	DefineInstruction(0x17, "RLA", OpRLA, 4)
	DefineInstruction(0x1F, "RRA", OpRRA, 4)
	DefineInstruction(0x27, "DAA", OpDAA, 4)
	DefineInstruction(0x2F, "CPL", OpCPL, 4)
	DefineInstruction(0x37, "SCF", OpSCF, 4)
	DefineInstruction(0x3F, "CCF", OpCCF, 4)

	// loads through register pairs
	DefineInstruction(0x02, "LD (BC), A", OpLD, 8, Dst(IndBC), Src(RegA))
	DefineInstruction(0x0A, "LD A, (BC)", OpLD, 8, Dst(RegA), Src(IndBC))
	DefineInstruction(0x12, "LD (DE), A", OpLD, 8, Dst(IndDE), Src(RegA))
	DefineInstruction(0x1A, "LD A, (DE)", OpLD, 8, Dst(RegA), Src(IndDE))
	DefineInstruction(0x22, "LD (HL+), A", OpLD, 8, Dst(IndHLI), Src(RegA))
	DefineInstruction(0x2A, "LD A, (HL+)", OpLD, 8, Dst(RegA), Src(IndHLI))
	DefineInstruction(0x32, "LD (HL-), A", OpLD, 8, Dst(IndHLD), Src(RegA))
	DefineInstruction(0x3A, "LD A, (HL-)", OpLD, 8, Dst(RegA), Src(IndHLD))

	// high page and absolute loads
	DefineInstruction(0xE0, "LDH (a8), A", OpLD, 12, Dst(HighImm), Src(RegA))
	DefineInstruction(0xF0, "LDH A, (a8)", OpLD, 12, Dst(RegA), Src(HighImm))
	DefineInstruction(0xE2, "LD (C), A", OpLD, 8, Dst(HighC), Src(RegA))
	DefineInstruction(0xF2, "LD A, (C)", OpLD, 8, Dst(RegA), Src(HighC))
	DefineInstruction(0xEA, "LD (a16), A", OpLD, 16, Dst(Abs16), Src(RegA))
	DefineInstruction(0xFA, "LD A, (a16)", OpLD, 16, Dst(RegA), Src(Abs16))

	// stack pointer
	DefineInstruction(0x08, "LD (a16), SP", OpLD16, 20, Dst(Abs16), Src(RegSP))
	DefineInstruction(0xF9, "LD SP, HL", OpLD16, 8, Dst(RegSP), Src(RegHL))
	DefineInstruction(0xE8, "ADD SP, r8", OpADDSP, 16, Src(Rel8))
	DefineInstruction(0xF8, "LD HL, SP+r8", OpLDHLSP, 12, Src(Rel8))

	// control flow
	DefineInstruction(0x18, "JR r8", OpJR, 12, Src(Rel8))
	DefineInstruction(0xC3, "JP a16", OpJP, 16, Src(Imm16))
	DefineInstruction(0xE9, "JP HL", OpJP, 4, Src(RegHL))
	DefineInstruction(0xCD, "CALL a16", OpCALL, 24, Src(Imm16))
	DefineInstruction(0xC9, "RET", OpRET, 16)
	DefineInstruction(0xD9, "RETI", OpRETI, 16)

	generateLoadRegisterToRegisterInstructions()
	generateALUInstructions()
	generateRegisterInstructions()
	generateRegisterPairInstructions()
	generateConditionalInstructions()
	generateRSTInstructions()

	for _, opcode := range illegalOpcodes {
		DefineInstruction(opcode, fmt.Sprintf("ILLEGAL %02X", opcode), OpIllegal, 4)
	}
}

// generateLoadRegisterToRegisterInstructions generates the instructions
// for loading a register to another register. (e.g. LD B, A)
//
// The instructions are generated in the following format:
//
//	0x40 LD B, B
//	0x41 LD B, C
//	....
//	0x7F LD A, A
//
// 0x76, which would be LD (HL), (HL), is HALT.
func generateLoadRegisterToRegisterInstructions() {
	for i := uint8(0); i < 8; i++ {
		for j := uint8(0); j < 8; j++ {
			opcode := 0x40 + i<<3 + j
			if opcode == 0x76 {
				continue
			}
			dst, src := registerOperands[i], registerOperands[j]

			cycles := uint8(4)
			if dst == IndHL || src == IndHL {
				cycles = 8
			}
			DefineInstruction(opcode, fmt.Sprintf("LD %s, %s", dst, src), OpLD, cycles, Dst(dst), Src(src))
		}
	}
}

// generateALUInstructions generates the 8-bit arithmetic and logic
// instructions operating on the A register.
//
//	0x80 - 0xBF ADD/ADC/SUB/SBC/AND/XOR/OR/CP r
//	0xC6 - 0xFE ADD/ADC/SUB/SBC/AND/XOR/OR/CP d8
func generateALUInstructions() {
	for i, alu := range aluOperations {
		for j, src := range registerOperands {
			cycles := uint8(4)
			if src == IndHL {
				cycles = 8
			}
			DefineInstruction(0x80+uint8(i)<<3+uint8(j), alu.prefix+src.String(), alu.op, cycles, Dst(RegA), Src(src))
		}
		DefineInstruction(0xC6+uint8(i)<<3, alu.prefix+"d8", alu.op, 8, Dst(RegA), Src(Imm8))
	}
}

// generateRegisterInstructions generates the INC, DEC and LD d8
// instructions of each 8-bit operand.
//
//	0x04 INC B
//	0x05 DEC B
//	0x06 LD B, d8
//	....
//	0x3E LD A, d8
func generateRegisterInstructions() {
	for i, r := range registerOperands {
		base := uint8(i) << 3

		incCycles, ldCycles := uint8(4), uint8(8)
		if r == IndHL {
			incCycles, ldCycles = 12, 12
		}
		DefineInstruction(0x04+base, "INC "+r.String(), OpINC, incCycles, Dst(r))
		DefineInstruction(0x05+base, "DEC "+r.String(), OpDEC, incCycles, Dst(r))
		DefineInstruction(0x06+base, fmt.Sprintf("LD %s, d8", r), OpLD, ldCycles, Dst(r), Src(Imm8))
	}
}

// generateRegisterPairInstructions generates the 16-bit loads,
// increments, decrements and additions, and PUSH/POP.
//
//	0x01 LD BC, d16
//	0x03 INC BC
//	0x09 ADD HL, BC
//	0x0B DEC BC
//	0xC1 POP BC
//	0xC5 PUSH BC
func generateRegisterPairInstructions() {
	for i, rr := range pairOperands {
		base := uint8(i) << 4

		DefineInstruction(0x01+base, fmt.Sprintf("LD %s, d16", rr), OpLD16, 12, Dst(rr), Src(Imm16))
		DefineInstruction(0x03+base, "INC "+rr.String(), OpINC16, 8, Dst(rr))
		DefineInstruction(0x09+base, "ADD HL, "+rr.String(), OpADDHL, 8, Dst(RegHL), Src(rr))
		DefineInstruction(0x0B+base, "DEC "+rr.String(), OpDEC16, 8, Dst(rr))
	}
	for i, rr := range stackOperands {
		base := uint8(i) << 4

		DefineInstruction(0xC1+base, "POP "+rr.String(), OpPOP, 12, Dst(rr))
		DefineInstruction(0xC5+base, "PUSH "+rr.String(), OpPUSH, 16, Src(rr))
	}
}

// generateConditionalInstructions generates JR, JP, CALL and RET for
// each condition. Each takes fewer cycles when the condition fails.
//
//	0x20 JR NZ, r8     12/8
//	0xC0 RET NZ        20/8
//	0xC2 JP NZ, a16    16/12
//	0xC4 CALL NZ, a16  24/12
func generateConditionalInstructions() {
	for i, cc := range conditions {
		base := uint8(i) << 3

		DefineInstruction(0x20+base, fmt.Sprintf("JR %s, r8", cc), OpJR, 12, Src(Rel8), Cond(cc, 8))
		DefineInstruction(0xC0+base, "RET "+cc.String(), OpRET, 20, Cond(cc, 8))
		DefineInstruction(0xC2+base, fmt.Sprintf("JP %s, a16", cc), OpJP, 16, Src(Imm16), Cond(cc, 12))
		DefineInstruction(0xC4+base, fmt.Sprintf("CALL %s, a16", cc), OpCALL, 24, Src(Imm16), Cond(cc, 12))
	}
}

// generateRSTInstructions generates the 8 RST instructions.
func generateRSTInstructions() {
	for i := uint8(0); i < 8; i++ {
		address := uint16(i) * 8
		DefineInstruction(0xC7+i<<3, fmt.Sprintf("RST %02XH", address), OpRST, 16, Target(address))
	}
}
