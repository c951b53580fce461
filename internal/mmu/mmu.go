// Package mmu provides the memory bus of the CPU. The MMU owns the
// 64kB address space and dispatches every access to the backing store
// of the region the address falls in. Peripheral registers are plain
// cells here; the components that give them meaning live elsewhere.
package mmu

import (
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// IOBus is the interface that the MMU uses to communicate with the
// backing store of a region.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// MMU is the memory management unit. It handles all memory reads and
// writes to the 64kB of memory.
type MMU struct {
	// 64kB address space
	raw [65536]*types.Address

	// 0x0000 - 0x7FFF - ROM (32kB)
	rom ram.RAM
	// 0x8000 - 0x9FFF - Video RAM (8kB)
	vRAM ram.RAM
	// 0xA000 - 0xBFFF - External RAM (8kB)
	eRAM ram.RAM
	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM *WRAM
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	oam ram.RAM
	// 0xFF00 - 0xFF7F - I/O Registers
	io ram.RAM
	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	zRAM ram.RAM
	// 0xFFFF - interrupt enable register
	ie uint8

	Log log.Logger
}

// Opt is a function that modifies an MMU.
type Opt func(m *MMU)

// WithLogger sets the logger used by the MMU.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.Log = l
	}
}

// WithImage loads the given memory image once the MMU is built.
func WithImage(image []byte) Opt {
	return func(m *MMU) {
		m.LoadImage(image)
	}
}

// NewMMU returns a new MMU with every cell zeroed.
func NewMMU(opts ...Opt) *MMU {
	m := &MMU{
		rom:  ram.NewRAM(types.ROM0.Size() + types.ROMX.Size()),
		vRAM: ram.NewRAM(types.VRAM.Size()),
		eRAM: ram.NewRAM(types.ERAM.Size()),
		wRAM: NewWRAM(),
		oam:  ram.NewRAM(types.OAM.Size()),
		io:   ram.NewRAM(types.IO.Size()),
		zRAM: ram.NewRAM(types.HRAM.Size()),
		Log:  log.NewNullLogger(),
	}
	m.init()

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *MMU) init() {
	m.mapRegion(types.ROM0, &types.Address{Read: m.rom.Read, Write: m.rom.Write})
	m.mapRegion(types.ROMX, m.raw[types.ROM0.Start])
	m.mapRegion(types.VRAM, &types.Address{
		Read:  readOffset(m.vRAM.Read, types.VRAM.Start),
		Write: writeOffset(m.vRAM.Write, types.VRAM.Start),
	})
	m.mapRegion(types.ERAM, &types.Address{
		Read:  readOffset(m.eRAM.Read, types.ERAM.Start),
		Write: writeOffset(m.eRAM.Write, types.ERAM.Start),
	})

	// the echo region shares the work RAM entry
	wram := &types.Address{Read: m.wRAM.Read, Write: m.wRAM.Write}
	m.mapRegion(types.WRAM, wram)
	m.mapRegion(types.Echo, wram)

	m.mapRegion(types.OAM, &types.Address{
		Read:  readOffset(m.oam.Read, types.OAM.Start),
		Write: writeOffset(m.oam.Write, types.OAM.Start),
	})
	m.mapRegion(types.Unusable, &types.Address{
		Read: func(uint16) uint8 {
			return types.UnusableValue
		},
		Write: func(uint16, uint8) {},
	})
	m.mapRegion(types.IO, &types.Address{
		Read:  readOffset(m.io.Read, types.IO.Start),
		Write: writeOffset(m.io.Write, types.IO.Start),
	})
	m.mapRegion(types.HRAM, &types.Address{
		Read:  readOffset(m.zRAM.Read, types.HRAM.Start),
		Write: writeOffset(m.zRAM.Write, types.HRAM.Start),
	})
	m.mapRegion(types.IERegion, &types.Address{
		Read: func(uint16) uint8 {
			return m.ie
		},
		Write: func(_ uint16, v uint8) {
			m.ie = v
		},
	})
}

// mapRegion points every address of r at the given entry.
func (m *MMU) mapRegion(r types.Region, address *types.Address) {
	for i := uint32(r.Start); i <= uint32(r.End); i++ {
		m.raw[i] = address
	}
}

func readOffset(read func(uint16) uint8, offset uint16) func(uint16) uint8 {
	return func(addr uint16) uint8 {
		return read(addr - offset)
	}
}

func writeOffset(write func(uint16, uint8), offset uint16) func(uint16, uint8) {
	return func(addr uint16, v uint8) {
		write(addr-offset, v)
	}
}

// Read returns the value at the given address. It handles mirroring
// and the unusable region.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address].Read(address)
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address].Write(address, value)
}

// Read16 returns the little endian word at address. The high byte is
// read from address+1, wrapping at the top of the address space.
func (m *MMU) Read16(address uint16) uint16 {
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// Write16 writes value as a little endian word at address.
func (m *MMU) Write16(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}

// LoadImage copies image into the address space starting at 0x0000,
// through ordinary writes. It returns the number of bytes copied;
// anything beyond 0xFFFF is ignored.
func (m *MMU) LoadImage(image []byte) int {
	n := len(image)
	if n > len(m.raw) {
		m.Log.Errorf("image is %d bytes, truncating to %d", n, len(m.raw))
		n = len(m.raw)
	}
	for i := 0; i < n; i++ {
		m.Write(uint16(i), image[i])
	}
	m.Log.Debugf("loaded %d byte image", n)

	return n
}

// Dump returns the bytes read from start to end inclusive.
func (m *MMU) Dump(start, end uint16) []byte {
	if end < start {
		return nil
	}
	out := make([]byte, 0, int(end)-int(start)+1)
	for i := uint32(start); i <= uint32(end); i++ {
		out = append(out, m.Read(uint16(i)))
	}
	return out
}

// Checksum returns the xxhash of the whole address space as seen by
// the CPU, which lets test harnesses compare machines cheaply.
func (m *MMU) Checksum() uint64 {
	return xxhash.Sum64(m.Dump(0x0000, 0xFFFF))
}

var _ types.Stater = (*MMU)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - ROM, VRAM, ERAM, WRAM, OAM, IO, HRAM
//   - IE (uint8)
func (m *MMU) Load(s *types.State) {
	m.rom.Load(s)
	m.vRAM.Load(s)
	m.eRAM.Load(s)
	m.wRAM.Load(s)
	m.oam.Load(s)
	m.io.Load(s)
	m.zRAM.Load(s)
	m.ie = s.Read8()
}

// Save implements the types.Stater interface. See Load for the order.
func (m *MMU) Save(s *types.State) {
	m.rom.Save(s)
	m.vRAM.Save(s)
	m.eRAM.Save(s)
	m.wRAM.Save(s)
	m.oam.Save(s)
	m.io.Save(s)
	m.zRAM.Save(s)
	s.Write8(m.ie)
}
