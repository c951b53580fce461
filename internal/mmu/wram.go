package mmu

import "github.com/thelolagemann/sm83/internal/types"

// WRAM is the 8kB work RAM at 0xC000 - 0xDFFF. It also serves the echo
// region at 0xE000 - 0xFDFF, which shares the same cells: both ranges
// are reduced to the same offset, so a write through either address is
// visible through the other.
type WRAM struct {
	raw [0x2000]uint8
}

// NewWRAM returns a zeroed WRAM.
func NewWRAM() *WRAM {
	return &WRAM{}
}

// offset maps a WRAM or echo address onto the backing store. 0xC000
// and 0xE000 both have their low 13 bits clear.
func offset(addr uint16) uint16 {
	return addr & 0x1FFF
}

func (w *WRAM) Read(addr uint16) uint8 {
	return w.raw[offset(addr)]
}

func (w *WRAM) Write(addr uint16, v uint8) {
	w.raw[offset(addr)] = v
}

func (w *WRAM) Load(s *types.State) {
	s.ReadData(w.raw[:])
}

func (w *WRAM) Save(s *types.State) {
	s.WriteData(w.raw[:])
}
