package interrupts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
)

func TestService_Vector(t *testing.T) {
	tests := []struct {
		name   string
		flag   uint8
		enable uint8
		vector uint16
		ok     bool
		after  uint8
	}{
		{"none", 0x00, 0x1F, 0, false, 0x00},
		{"disabled", 0x01, 0x00, 0, false, 0x01},
		{"vblank", VBlankFlag, 0x1F, 0x40, true, 0x00},
		{"lcd", LCDFlag, 0x1F, 0x48, true, 0x00},
		{"timer", TimerFlag, 0x1F, 0x50, true, 0x00},
		{"serial", SerialFlag, 0x1F, 0x58, true, 0x00},
		{"joypad", JoypadFlag, 0x1F, 0x60, true, 0x00},
		{"priority", TimerFlag | JoypadFlag, 0x1F, 0x50, true, JoypadFlag},
		{"masked priority", VBlankFlag | SerialFlag, SerialFlag, 0x58, true, VBlankFlag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mmu.NewMMU()
			s := NewService(m)
			m.Write(types.IF, tt.flag)
			m.Write(types.IE, tt.enable)

			vector, ok := s.Vector()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.vector, vector)
			assert.Equal(t, tt.after, s.Flag())
		})
	}
}

func TestService_Request(t *testing.T) {
	m := mmu.NewMMU()
	s := NewService(m)

	assert.False(t, s.HasInterrupts())
	s.Request(TimerFlag)
	assert.Equal(t, TimerFlag, m.Read(types.IF))
	assert.False(t, s.HasInterrupts())

	m.Write(types.IE, TimerFlag)
	assert.True(t, s.HasInterrupts())
	assert.False(t, s.Pending())

	s.IME = true
	assert.True(t, s.Pending())
}

func TestService_State(t *testing.T) {
	s := NewService(mmu.NewMMU())
	s.IME = true

	st := types.NewState()
	s.Save(st)

	other := NewService(mmu.NewMMU())
	other.Load(st)
	assert.True(t, other.IME)
}
