// Package cpu implements the Sharp SM83, the CPU of the Game Boy. The
// instruction set is described by two tables (InstructionSet and
// InstructionSetCB) which a single executor interprets; the flags are
// computed by pure functions returning a Flags value.
package cpu

import (
	"fmt"
	"time"

	"github.com/thelolagemann/sm83/internal/interrupts"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU, in cycles per second.
	ClockSpeed = 4194304

	// InterruptCycles is the number of cycles taken to dispatch an
	// interrupt.
	InterruptCycles = 20

	// idleCycles is the number of cycles a step takes while the CPU is
	// halted, stopped or locked.
	idleCycles = 4
)

// Mode is the execution mode of the CPU.
type Mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal Mode = iota
	// ModeHalt is entered by HALT, and left when an interrupt is
	// requested and enabled.
	ModeHalt
	// ModeStop is entered by STOP, and left like ModeHalt.
	ModeStop
	// ModeLocked is entered when an illegal opcode is fetched. Only
	// Reset leaves it.
	ModeLocked
)

// Bus is the memory the CPU executes from.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Read16(address uint16) uint16
	Write16(address uint16, value uint16)
}

// IllegalOpcodeError is recorded when the CPU fetches an opcode with no
// defined behaviour and locks up.
type IllegalOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("cpu: illegal opcode %02X at %04X", e.Opcode, e.PC)
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers, as well as the 16-bit
	// register pairs, SP and PC.
	Registers

	b   Bus
	IRQ *interrupts.Service
	log log.Logger

	Debug           bool
	DebugBreakpoint bool

	mode Mode
	// haltBug is set when HALT was executed with IME disabled and an
	// interrupt pending.
	haltBug bool
	// eiPending is set by EI; the IME is enabled once the following
	// instruction has executed.
	eiPending bool
	// opcodePC is the address the current instruction was fetched from.
	opcodePC uint16

	err    error
	cycles uint64
}

// NewCPU creates a new CPU instance executing from the given Bus, with
// the registers as the boot ROM leaves them. When irq is nil a new
// interrupt service reading IF and IE from b is created.
func NewCPU(b Bus, irq *interrupts.Service, opts ...Opt) *CPU {
	if irq == nil {
		irq = interrupts.NewService(b)
	}
	c := &CPU{
		b:   b,
		IRQ: irq,
		log: log.NewNullLogger(),
	}
	c.Registers.init()
	c.Registers.Reset()

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Step executes one instruction, services one interrupt or idles for
// one machine cycle, and returns the number of cycles taken.
// Interrupts are only checked here, between instructions.
func (c *CPU) Step() uint8 {
	var cycles uint8

	switch c.mode {
	case ModeLocked:
		cycles = idleCycles
	case ModeHalt, ModeStop:
		// the IME is ignored when waking up, so that HALT can be used
		// to wait for an interrupt with interrupts disabled
		if !c.IRQ.HasInterrupts() {
			cycles = idleCycles
			break
		}
		c.log.Debugf("cpu: woken at %04X", c.PC)
		c.mode = ModeNormal
		fallthrough
	case ModeNormal:
		if vector, ok := c.pendingVector(); ok {
			cycles = c.dispatch(vector)
		} else {
			cycles = c.runInstruction()
		}
	}

	c.cycles += uint64(cycles)
	return cycles
}

// runInstruction fetches, decodes and executes the instruction at PC.
func (c *CPU) runInstruction() uint8 {
	c.opcodePC = c.PC
	in := c.decode(c.fetchOpcode())

	enable := c.eiPending
	cycles := c.execute(in)
	if enable && c.eiPending {
		c.IRQ.IME = true
		c.eiPending = false
	}

	return cycles
}

// pendingVector returns the vector of the interrupt to service, if the
// IME is set and an enabled interrupt has been requested.
func (c *CPU) pendingVector() (uint16, bool) {
	if !c.IRQ.IME {
		return 0, false
	}
	return c.IRQ.Vector()
}

// dispatch pushes PC and jumps to the interrupt vector, disabling
// further interrupts. When the HALT bug is pending, as after EI; HALT
// with an interrupt already requested, the handler returns to the HALT
// itself.
func (c *CPU) dispatch(vector uint16) uint8 {
	pc := c.PC
	if c.haltBug {
		pc--
		c.haltBug = false
	}
	c.log.Debugf("cpu: servicing interrupt %04X from %04X", vector, pc)

	c.IRQ.IME = false
	c.eiPending = false
	c.push(pc)
	c.PC = vector

	return InterruptCycles
}

// Interrupt forces a dispatch to the given vector, as an external
// interrupt controller would, waking the CPU if it is halted or
// stopped. It must be called between steps, and returns the number
// of cycles taken. A locked CPU ignores it.
func (c *CPU) Interrupt(vector uint16) uint8 {
	if c.mode == ModeLocked {
		return 0
	}
	c.mode = ModeNormal

	cycles := c.dispatch(vector)
	c.cycles += uint64(cycles)
	return cycles
}

// RequestInterrupt requests an interrupt by setting its bit in the IF
// register. It is serviced at the next instruction boundary if it is
// enabled and the IME is set.
func (c *CPU) RequestInterrupt(flag uint8) {
	c.IRQ.Request(flag)
}

// lock stops the CPU after an illegal opcode.
func (c *CPU) lock(opcode uint8) {
	c.mode = ModeLocked
	c.err = &IllegalOpcodeError{Opcode: opcode, PC: c.opcodePC}
	c.log.Errorf("%s", c.err)
}

// IME returns the interrupt master enable.
func (c *CPU) IME() bool {
	return c.IRQ.IME
}

// Mode returns the current execution mode.
func (c *CPU) Mode() Mode {
	return c.mode
}

// Halted returns true if the CPU is waiting for an interrupt, after
// HALT or STOP.
func (c *CPU) Halted() bool {
	return c.mode == ModeHalt || c.mode == ModeStop
}

// Locked returns true if the CPU has fetched an illegal opcode.
func (c *CPU) Locked() bool {
	return c.mode == ModeLocked
}

// Err returns the error that locked the CPU, if any.
func (c *CPU) Err() error {
	return c.err
}

// Cycles returns the total number of cycles taken since the CPU was
// created or reset.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Elapsed returns the emulated time the executed cycles take at ClockSpeed.
func (c *CPU) Elapsed() time.Duration {
	seconds := c.cycles / ClockSpeed
	rem := c.cycles % ClockSpeed
	return time.Duration(seconds)*time.Second + time.Duration(rem)*time.Second/ClockSpeed
}

// Bus returns the memory the CPU executes from.
func (c *CPU) Bus() Bus {
	return c.b
}

var _ types.Resettable = (*CPU)(nil)

// Reset restores the registers to their boot values and clears the
// execution state, including a lock. Memory is left untouched.
func (c *CPU) Reset() {
	c.Registers.Reset()
	c.IRQ.IME = false
	c.mode = ModeNormal
	c.haltBug = false
	c.eiPending = false
	c.DebugBreakpoint = false
	c.err = nil
	c.cycles = 0
}
