package cpu

import "github.com/thelolagemann/sm83/pkg/bits"

// push pushes a 16 bit value onto the stack. The high byte is written
// first, at SP-1, leaving the value little-endian at the new SP.
func (c *CPU) push(value uint16) {
	high, low := bits.Split(value)
	c.SP--
	c.b.Write(c.SP, high)
	c.SP--
	c.b.Write(c.SP, low)
}

// pop pops a 16 bit value off the stack.
func (c *CPU) pop() uint16 {
	value := c.b.Read16(c.SP)
	c.SP += 2
	return value
}

// condition reports whether the condition holds for the current flags.
func (c *CPU) condition(cond Condition) bool {
	switch cond {
	case CondNZ:
		return !c.Flag(FlagZero)
	case CondZ:
		return c.Flag(FlagZero)
	case CondNC:
		return !c.Flag(FlagCarry)
	case CondC:
		return c.Flag(FlagCarry)
	}
	return true
}

// jumpRelative jumps to the address relative to the current PC, which
// already points past the offset.
//
//	JR e
//	JR cc, e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
}

// call pushes the address of the next instruction onto the stack and
// jumps to the given address.
//
//	CALL nn
//	CALL cc, nn
//	RST n
func (c *CPU) call(address uint16) {
	c.push(c.PC)
	c.PC = address
}

// ret pops the return address off the stack into PC.
//
//	RET
//	RET cc
//	RETI
func (c *CPU) ret() {
	c.PC = c.pop()
}

// branch executes the control flow instructions, returning the number
// of cycles taken. The operands are always fetched, so that PC ends
// past the instruction when the condition fails.
func (c *CPU) branch(in *Instruction) uint8 {
	switch in.Op {
	case OpJR:
		offset := c.read8(in.Src)
		if !c.condition(in.Cond) {
			return in.CyclesSkipped
		}
		c.jumpRelative(offset)
	case OpJP:
		address := c.read16(in.Src)
		if !c.condition(in.Cond) {
			return in.CyclesSkipped
		}
		c.PC = address
	case OpCALL:
		address := c.read16(in.Src)
		if !c.condition(in.Cond) {
			return in.CyclesSkipped
		}
		c.call(address)
	case OpRET:
		if !c.condition(in.Cond) {
			return in.CyclesSkipped
		}
		c.ret()
	case OpRETI:
		c.ret()
		c.IRQ.IME = true
		c.eiPending = false
	case OpRST:
		c.call(in.Vector)
	}
	return in.Cycles
}
