package cpu

import (
	"github.com/thelolagemann/sm83/pkg/bits"
)

// decode returns the instruction starting with opcode, fetching the
// second byte of a 0xCB prefixed instruction.
func (c *CPU) decode(opcode uint8) *Instruction {
	if opcode == 0xCB {
		return &InstructionSetCB[c.fetch()]
	}
	return &InstructionSet[opcode]
}

// execute runs a decoded instruction and returns the number of cycles
// it took. PC points past the opcode; immediate operands are fetched
// as the operands are resolved.
func (c *CPU) execute(in *Instruction) uint8 {
	switch in.Op {
	case OpNOP:
	case OpLD:
		if in.Opcode == 0x40 && !in.Prefixed && c.Debug {
			c.DebugBreakpoint = true
		}
		c.write8(in.Dst, c.read8(in.Src))
	case OpLD16:
		c.write16(in.Dst, c.read16(in.Src))
	case OpPUSH:
		c.push(c.read16(in.Src))
	case OpPOP:
		c.write16(in.Dst, c.pop())

	// 8-bit arithmetic and logic
	case OpINC:
		value, f := inc8(c.read8(in.Dst), c.Flags())
		c.write8(in.Dst, value)
		c.setFlags(f)
	case OpDEC:
		value, f := dec8(c.read8(in.Dst), c.Flags())
		c.write8(in.Dst, value)
		c.setFlags(f)
	case OpADD, OpADC, OpSUB, OpSBC, OpAND, OpXOR, OpOR, OpCP:
		c.alu(in.Op, c.read8(in.Src))

	// 16-bit arithmetic
	case OpINC16:
		c.write16(in.Dst, c.read16(in.Dst)+1)
	case OpDEC16:
		c.write16(in.Dst, c.read16(in.Dst)-1)
	case OpADDHL:
		value, f := add16(c.HL.Uint16(), c.read16(in.Src), c.Flags())
		c.HL.SetUint16(value)
		c.setFlags(f)
	case OpADDSP:
		value, f := addSigned(c.SP, c.read8(in.Src))
		c.SP = value
		c.setFlags(f)
	case OpLDHLSP:
		value, f := addSigned(c.SP, c.read8(in.Src))
		c.HL.SetUint16(value)
		c.setFlags(f)

	// accumulator and flags
	case OpRLCA:
		c.rotateAccumulator(rlc(c.A))
	case OpRRCA:
		c.rotateAccumulator(rrc(c.A))
	case OpRLA:
		c.rotateAccumulator(rl(c.A, c.Flags()))
	case OpRRA:
		c.rotateAccumulator(rr(c.A, c.Flags()))
	case OpDAA:
		value, f := daa(c.A, c.Flags())
		c.A = value
		c.setFlags(f)
	case OpCPL:
		value, f := cpl(c.A, c.Flags())
		c.A = value
		c.setFlags(f)
	case OpSCF:
		c.setFlags(scf(c.Flags()))
	case OpCCF:
		c.setFlags(ccf(c.Flags()))

	// control flow
	case OpJR, OpJP, OpCALL, OpRET, OpRETI, OpRST:
		return c.branch(in)

	// CPU control
	case OpHALT:
		c.halt()
	case OpSTOP:
		c.read8(in.Src)
		c.mode = ModeStop
	case OpDI:
		c.IRQ.IME = false
		c.eiPending = false
	case OpEI:
		c.eiPending = true

	// CB prefixed
	case OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSWAP, OpSRL:
		c.shift(in)
	case OpBIT:
		c.setFlags(testBit(c.read8(in.Src), in.Bit, c.Flags()))
	case OpRES:
		c.write8(in.Dst, bits.Reset(c.read8(in.Dst), in.Bit))
	case OpSET:
		c.write8(in.Dst, bits.Set(c.read8(in.Dst), in.Bit))

	case OpIllegal:
		c.lock(in.Opcode)
	}

	return in.Cycles
}

// alu performs an 8-bit arithmetic or logic operation on A.
func (c *CPU) alu(op Operation, value uint8) {
	var result uint8
	var f Flags

	switch op {
	case OpADD:
		result, f = add8(c.A, value, 0)
	case OpADC:
		result, f = add8(c.A, value, c.Flags().carry())
	case OpSUB:
		result, f = sub8(c.A, value, 0)
	case OpSBC:
		result, f = sub8(c.A, value, c.Flags().carry())
	case OpAND:
		result, f = and8(c.A, value)
	case OpXOR:
		result, f = xor8(c.A, value)
	case OpOR:
		result, f = or8(c.A, value)
	case OpCP:
		c.setFlags(cp8(c.A, value))
		return
	}

	c.A = result
	c.setFlags(f)
}

// rotateAccumulator stores the result of RLCA, RRCA, RLA or RRA.
func (c *CPU) rotateAccumulator(value uint8, f Flags) {
	c.A = value
	c.setFlags(accumulatorFlags(f))
}

// shift performs a CB prefixed rotate, shift or swap on its operand.
func (c *CPU) shift(in *Instruction) {
	value := c.read8(in.Dst)

	var f Flags
	switch in.Op {
	case OpRLC:
		value, f = rlc(value)
	case OpRRC:
		value, f = rrc(value)
	case OpRL:
		value, f = rl(value, c.Flags())
	case OpRR:
		value, f = rr(value, c.Flags())
	case OpSLA:
		value, f = sla(value)
	case OpSRA:
		value, f = sra(value)
	case OpSWAP:
		value, f = swap(value)
	case OpSRL:
		value, f = srl(value)
	}

	c.write8(in.Dst, value)
	c.setFlags(f)
}
