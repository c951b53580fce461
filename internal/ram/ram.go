// Package ram provides a basic RAM implementation.
package ram

import "github.com/thelolagemann/sm83/internal/types"

// RAM represents a block of RAM.
type RAM interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	types.Stater
}

type ram struct {
	data []uint8
}

// NewRAM returns a new RAM of the given size. Addresses are relative to
// the start of the block and wrap at its size, so callers mapping a
// region must subtract its base first.
func NewRAM(size uint32) RAM {
	return &ram{
		data: make([]uint8, size),
	}
}

// Read returns the value at the given address.
func (r *ram) Read(address uint16) uint8 {
	return r.data[int(address)%len(r.data)]
}

// Write writes the value to the given address.
func (r *ram) Write(address uint16, value uint8) {
	r.data[int(address)%len(r.data)] = value
}

func (r *ram) Load(s *types.State) {
	s.ReadData(r.data)
}

func (r *ram) Save(s *types.State) {
	s.WriteData(r.data)
}
