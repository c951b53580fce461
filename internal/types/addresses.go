package types

// Address represents a region of the 16-bit address space that can be
// read from or written to. The MMU holds one Address per region and
// dispatches every access through it, so the CPU never needs to know
// which backing store sits behind an address.
type Address struct {
	// Read is a function that is called when the CPU reads from
	// the address.
	Read func(address uint16) uint8
	// Write is a function that is called when the CPU writes to
	// the address.
	Write func(address uint16, value uint8)
}

// Region describes an inclusive range of the address space.
type Region struct {
	Name  string
	Start uint16
	End   uint16
}

// Size returns the number of bytes covered by the region.
func (r Region) Size() uint32 {
	return uint32(r.End) - uint32(r.Start) + 1
}

var (
	// ROM0 is the fixed ROM bank (16kB).
	ROM0 = Region{"ROM0", 0x0000, 0x3FFF}
	// ROMX is the switchable ROM bank (16kB). Bank switching belongs
	// to the cartridge, so from the CPU's side this is plain memory.
	ROMX = Region{"ROMX", 0x4000, 0x7FFF}
	// VRAM is the video RAM (8kB).
	VRAM = Region{"VRAM", 0x8000, 0x9FFF}
	// ERAM is the external (cartridge) RAM (8kB).
	ERAM = Region{"ERAM", 0xA000, 0xBFFF}
	// WRAM is the work RAM (8kB).
	WRAM = Region{"WRAM", 0xC000, 0xDFFF}
	// Echo mirrors WRAM 0xC000 - 0xDDFF (7.5kB).
	Echo = Region{"ECHO", 0xE000, 0xFDFF}
	// OAM is the sprite attribute table (160B).
	OAM = Region{"OAM", 0xFE00, 0xFE9F}
	// Unusable is the prohibited region between OAM and the I/O
	// registers. Writes are dropped and reads return UnusableValue.
	Unusable = Region{"UNUSABLE", 0xFEA0, 0xFEFF}
	// IO holds the memory mapped I/O registers (128B).
	IO = Region{"IO", 0xFF00, 0xFF7F}
	// HRAM is the high RAM (127B).
	HRAM = Region{"HRAM", 0xFF80, 0xFFFE}
	// IERegion is the single interrupt enable cell.
	IERegion = Region{"IE", 0xFFFF, 0xFFFF}
)

// Regions lists every region of the address space in ascending order.
var Regions = []Region{ROM0, ROMX, VRAM, ERAM, WRAM, Echo, OAM, Unusable, IO, HRAM, IERegion}

// UnusableValue is returned for reads from the Unusable region.
const UnusableValue uint8 = 0xFF

// HardwareAddress represents the address of a hardware
// register. Hardware registers live at 0xFF00 - 0xFF7F & 0xFFFF
// and are ordinary memory cells as far as the CPU is concerned.
type HardwareAddress = uint16

const (
	// HighPage is the base of the 0xFF00 page addressed by the LDH
	// and LD (C) instructions.
	HighPage HardwareAddress = 0xFF00
	// IF is the address of the IF hardware register. The IF
	// hardware register is used to request interrupts. Writing a 1
	// to a bit in IF requests an interrupt, and writing a 0 clears
	// the request.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// IE is the address of the IE hardware register. The IE
	// hardware register is used to enable interrupts. Writing a 1
	// to a bit in IE enables the corresponding interrupt, and writing
	// a 0 disables it.
	IE HardwareAddress = 0xFFFF
)
