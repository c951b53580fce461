package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlag(t *testing.T) {
	r := NewRegisters()
	r.SetF(0)

	t.Run("set", func(t *testing.T) {
		for _, f := range []Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry} {
			r.SetFlag(f, true)
			assert.True(t, r.Flag(f), "flag %d", f)
		}
		assert.Equal(t, uint8(0xF0), r.F())
	})
	t.Run("clear", func(t *testing.T) {
		for _, f := range []Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry} {
			r.SetFlag(f, false)
			assert.False(t, r.Flag(f), "flag %d", f)
		}
		assert.Equal(t, uint8(0x00), r.F())
	})
	t.Run("single bit", func(t *testing.T) {
		r.SetF(0)
		r.SetFlag(FlagHalfCarry, true)
		assert.Equal(t, uint8(0x20), r.F())
		assert.Equal(t, "--H-", r.Flags().String())
	})
}

func TestFlags_String(t *testing.T) {
	assert.Equal(t, "----", Flags(0).String())
	assert.Equal(t, "ZNHC", Flags(0xF0).String())
	assert.Equal(t, "Z--C", newFlags(true, false, false, true).String())
}

func TestRegisters(t *testing.T) {
	r := NewRegisters()

	t.Run("reset", func(t *testing.T) {
		assert.Equal(t, uint16(0x01B0), r.AF.Uint16())
		assert.Equal(t, uint16(0x0013), r.BC.Uint16())
		assert.Equal(t, uint16(0x00D8), r.DE.Uint16())
		assert.Equal(t, uint16(0x014D), r.HL.Uint16())
		assert.Equal(t, uint16(0xFFFE), r.SP)
		assert.Equal(t, uint16(0x0100), r.PC)
	})
	t.Run("pairs", func(t *testing.T) {
		r.BC.SetUint16(0x1234)
		assert.Equal(t, uint8(0x12), r.B)
		assert.Equal(t, uint8(0x34), r.C)

		r.H, r.L = 0xAB, 0xCD
		assert.Equal(t, uint16(0xABCD), r.HL.Uint16())
	})
	t.Run("F low nibble", func(t *testing.T) {
		for v := 0; v < 256; v++ {
			r.SetF(uint8(v))
			assert.Equal(t, uint8(v)&0xF0, r.F())

			r.AF.SetUint16(uint16(v) | 0x5500)
			assert.Equal(t, uint8(0x55), r.A)
			assert.Equal(t, uint8(v)&0xF0, r.F())
			assert.Equal(t, 0x5500|uint16(v)&0xF0, r.AF.Uint16())
		}
	})
	t.Run("pairs point into their own registers", func(t *testing.T) {
		other := NewRegisters()
		for _, regs := range []*Registers{r, other} {
			assert.Same(t, &regs.A, regs.AF.High)
			assert.Same(t, &regs.B, regs.BC.High)
			assert.Same(t, &regs.C, regs.BC.Low)
			assert.Same(t, &regs.D, regs.DE.High)
			assert.Same(t, &regs.E, regs.DE.Low)
			assert.Same(t, &regs.H, regs.HL.High)
			assert.Same(t, &regs.L, regs.HL.Low)
		}

		other.BC.SetUint16(0xBEEF)
		assert.NotEqual(t, uint16(0xBEEF), r.BC.Uint16())
	})
	t.Run("clear", func(t *testing.T) {
		r.Clear()
		assert.Equal(t, uint16(0), r.AF.Uint16())
		assert.Equal(t, uint16(0), r.HL.Uint16())
		assert.Equal(t, uint16(0), r.SP)
		assert.Equal(t, uint16(0), r.PC)
	})
}
