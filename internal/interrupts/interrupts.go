// Package interrupts provides the CPU side of the interrupt controller:
// the interrupt master enable (IME), and the selection of the vector
// to service from the IF and IE registers.
package interrupts

import (
	"github.com/thelolagemann/sm83/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0).
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD STAT interrupt flag (bit 1).
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2).
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3).
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4).
	JoypadFlag = types.Bit4
)

// VectorBase is the address of the highest priority interrupt
// handler; each following source is 8 bytes further on.
const VectorBase uint16 = 0x0040

// Bus is the memory the IF and IE registers are read from. They are
// ordinary cells, written by peripherals out of band.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Service is the interrupt service, used to request
// interrupts and to get the current interrupt vector.
//
// When an interrupt is requested, the corresponding bit
// in the IF register is set. When an interrupt is
// enabled, the corresponding bit in the IE register
// is set. When an interrupt is requested and enabled,
// and the IME is set, the CPU will jump to the interrupt
// vector, and the corresponding bit in the IF register
// will be cleared.
//
// The IME is set by the EI and RETI instructions, and
// cleared by DI and by servicing an interrupt.
type Service struct {
	// IME is the interrupt master enable.
	IME bool

	b Bus
}

// NewService returns a new Service reading IF and IE from b.
func NewService(b Bus) *Service {
	return &Service{b: b}
}

// Flag returns the requested interrupts (IF), limited to the five
// defined sources.
func (s *Service) Flag() uint8 {
	return s.b.Read(types.IF) & 0x1F
}

// Enable returns the enabled interrupts (IE).
func (s *Service) Enable() uint8 {
	return s.b.Read(types.IE) & 0x1F
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled, regardless of the IME.
func (s *Service) HasInterrupts() bool {
	return s.Enable()&s.Flag() != 0
}

// Pending returns true if an interrupt would be serviced at the next
// instruction boundary.
func (s *Service) Pending() bool {
	return s.IME && s.HasInterrupts()
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the IF register.
func (s *Service) Request(flag uint8) {
	s.b.Write(types.IF, s.b.Read(types.IF)|flag)
}

// Vector returns the vector of the highest priority interrupt that is
// both requested and enabled, and acknowledges it by clearing its bit
// in the IF register. ok is false when there is nothing to service.
func (s *Service) Vector() (vector uint16, ok bool) {
	pending := s.Enable() & s.Flag()
	if pending == 0 {
		return 0, false
	}
	for i := uint8(0); i < 5; i++ {
		// get the flag for the current interrupt
		flag := uint8(1 << i)

		if pending&flag != 0 {
			// clear the interrupt flag and return the vector
			s.b.Write(types.IF, s.b.Read(types.IF)&^flag)
			return VectorBase + uint16(i)*8, true
		}
	}

	return 0, false
}

var _ types.Stater = (*Service)(nil)

// Load implements the types.Stater interface. IF and IE are part of the
// memory state, so only the IME is stored here.
func (s *Service) Load(st *types.State) {
	s.IME = st.ReadBool()
}

// Save implements the types.Stater interface.
func (s *Service) Save(st *types.State) {
	st.WriteBool(s.IME)
}
