package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/bits"
)

// fetch reads the byte at PC and advances PC past it.
func (c *CPU) fetch() uint8 {
	value := c.b.Read(c.PC)
	c.PC++
	return value
}

// fetch16 reads the little-endian word at PC and advances PC past it.
func (c *CPU) fetch16() uint16 {
	low := c.fetch()
	high := c.fetch()
	return bits.Join(high, low)
}

// register returns the 8-bit register selected by the operand.
func (c *CPU) register(o Operand) *Register {
	switch o {
	case RegA:
		return &c.A
	case RegB:
		return &c.B
	case RegC:
		return &c.C
	case RegD:
		return &c.D
	case RegE:
		return &c.E
	case RegH:
		return &c.H
	case RegL:
		return &c.L
	}
	return nil
}

// address resolves a memory operand to the address it refers to,
// fetching any immediate bytes and applying the HL post increment or
// decrement.
func (c *CPU) address(o Operand) uint16 {
	switch o {
	case IndBC:
		return c.BC.Uint16()
	case IndDE:
		return c.DE.Uint16()
	case IndHL:
		return c.HL.Uint16()
	case IndHLI:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl + 1)
		return hl
	case IndHLD:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl - 1)
		return hl
	case HighImm:
		return types.HighPage + uint16(c.fetch())
	case HighC:
		return types.HighPage + uint16(c.C)
	case Abs16:
		return c.fetch16()
	}
	panic(fmt.Sprintf("cpu: %s is not a memory operand", o))
}

// read8 returns the 8-bit value of the operand.
//
//	r    = A, B, C, D, E, H, L
//	d8   = 8-bit immediate value
//	(rr) = (BC), (DE), (HL), (HL+), (HL-)
//	(a8) = 0xFF00 + 8-bit immediate value
//	(C)  = 0xFF00 + C
//	(a16) = 16-bit immediate address
func (c *CPU) read8(o Operand) uint8 {
	if r := c.register(o); r != nil {
		return *r
	}
	if o == Imm8 || o == Rel8 {
		return c.fetch()
	}
	return c.b.Read(c.address(o))
}

// write8 stores an 8-bit value to the operand.
func (c *CPU) write8(o Operand, value uint8) {
	if r := c.register(o); r != nil {
		*r = value
		return
	}
	c.b.Write(c.address(o), value)
}

// read16 returns the 16-bit value of the operand.
//
//	rr  = AF, BC, DE, HL, SP
//	d16 = 16-bit immediate value
func (c *CPU) read16(o Operand) uint16 {
	switch o {
	case RegAF:
		return c.AF.Uint16()
	case RegBC:
		return c.BC.Uint16()
	case RegDE:
		return c.DE.Uint16()
	case RegHL:
		return c.HL.Uint16()
	case RegSP:
		return c.SP
	case Imm16:
		return c.fetch16()
	}
	panic(fmt.Sprintf("cpu: %s is not a 16-bit source", o))
}

// write16 stores a 16-bit value to the operand. An absolute operand
// stores the value little-endian at the fetched address.
func (c *CPU) write16(o Operand, value uint16) {
	switch o {
	case RegAF:
		c.AF.SetUint16(value)
	case RegBC:
		c.BC.SetUint16(value)
	case RegDE:
		c.DE.SetUint16(value)
	case RegHL:
		c.HL.SetUint16(value)
	case RegSP:
		c.SP = value
	case Abs16:
		c.b.Write16(c.fetch16(), value)
	default:
		panic(fmt.Sprintf("cpu: %s is not a 16-bit destination", o))
	}
}
