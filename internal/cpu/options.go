package cpu

import (
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt is a function that modifies a CPU.
type Opt func(c *CPU)

// WithLogger sets the logger used by the CPU.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// Debug enables the LD B, B software breakpoint.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

// PowerOn clears every register, leaving the CPU as it is found before
// a boot ROM has run.
func PowerOn() Opt {
	return func(c *CPU) {
		c.Registers.Clear()
	}
}

// WithState loads the CPU from a previously saved state.
func WithState(s *types.State) Opt {
	return func(c *CPU) {
		c.Load(s)
	}
}
