package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
)

var _ types.Stater = (*CPU)(nil)

// Load implements the types.Stater interface. The order of the fields
// must match Save. An unknown mode is loaded as ModeNormal and recorded
// as an error on s.
func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.SetF(s.Read8())
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.mode = s.Read8()
	if c.mode > ModeLocked {
		s.Invalid(fmt.Errorf("%w: cpu mode %d", types.ErrStateFormat, c.mode))
		c.mode = ModeNormal
	}
	c.haltBug = s.ReadBool()
	c.eiPending = s.ReadBool()
	c.cycles = s.Read64()
	c.IRQ.Load(s)
}

// Save implements the types.Stater interface. A lock is saved as a mode
// only; the error that caused it is not.
func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F())
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.Write8(c.mode)
	s.WriteBool(c.haltBug)
	s.WriteBool(c.eiPending)
	s.Write64(c.cycles)
	c.IRQ.Save(s)
}
