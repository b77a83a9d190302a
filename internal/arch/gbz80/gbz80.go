// Package gbz80 provides a Game Boy architecture specific disassembler implementation.
// The Game Boy CPU (Sharp SM83) executes a Z80 like instruction set, cartridge
// ROM is mapped into the bus through a fixed and a switchable bank window.
package gbz80

import (
	"github.com/retroenv/gbdisasm/internal/arch"
)

// Memory layout constants.
//
// Game Boy bus map as seen from the CPU:
//
//	0x0000-0x3FFF: fixed window, always mapped to the start of the image
//	0x4000-0x7FFF: switchable window, content depends on the active bank
//	0x8000-0xFFFF: VRAM, WRAM and hardware registers, never ROM content
const (
	// bankWindowSize is the size of one ROM bank.
	bankWindowSize = 0x4000

	// switchableEnd is the first bus address after the switchable window.
	switchableEnd = 0x8000

	// bankOffsetMask masks a bus address down to its offset within a bank.
	bankOffsetMask = 0x3fff

	// headerEntry is the image offset where execution starts after the boot
	// ROM has run, usually a jump into the actual program code.
	headerEntry = 0x0100

	// interruptVectorEnd is the last interrupt handler slot. RST and
	// interrupt vectors occupy every 8th offset from 0 up to here.
	interruptVectorEnd = 0x60
)

var _ arch.Architecture = (*GBZ80)(nil)

// New returns a new Game Boy architecture configuration.
func New() *GBZ80 {
	return &GBZ80{}
}

// GBZ80 implements the arch.Architecture interface for the Game Boy CPU.
type GBZ80 struct{}

// Name returns the architecture name.
func (g *GBZ80) Name() string {
	return "gbz80"
}

// Constants returns the hardware register names of the Game Boy.
func (g *GBZ80) Constants() map[uint16]string {
	return registerNames
}

// Decode decodes a single instruction at the start of the window.
func (g *GBZ80) Decode(window []byte) (arch.Instruction, bool) {
	return decode(window)
}

// Resolve maps a logical address to an image offset using the three bus
// windows. Addresses in the switchable window resolve to a physical offset
// only when the active bank at the origin is known, either because the origin
// offset itself determines its bank or through an explicit bank assignment.
func (g *GBZ80) Resolve(address arch.LogicalAddress, origin int, state arch.State) arch.Resolved {
	if displacement, ok := address.Displacement(); ok {
		return resolveRelative(origin, displacement, state)
	}

	bus, _ := address.Absolute()
	switch {
	case bus < bankWindowSize:
		if int(bus) >= state.Size() {
			return arch.UnknownBank(bus)
		}
		return arch.Physical(int(bus))

	case bus < switchableEnd:
		offset := int(bus & bankOffsetMask)
		if origin >= switchableEnd {
			// offsets past the first two banks can only be mapped into the
			// switchable window, so the origin determines its own bank
			return bankedAddress(origin/bankWindowSize, offset, state)
		}
		if bank, ok := state.Bank(origin); ok {
			return bankedAddress(bank, offset, state)
		}
		return arch.UnknownBank(uint16(offset))

	default:
		return arch.System(bus)
	}
}

// EntryPoints returns the RST and interrupt vector slots and the cartridge
// header entry point.
func (g *GBZ80) EntryPoints(size int) []int {
	points := make([]int, 0, 14)
	for vector := 0; vector <= interruptVectorEnd; vector += 8 {
		if vector < size {
			points = append(points, vector)
		}
	}
	if headerEntry < size {
		points = append(points, headerEntry)
	}
	return points
}

func bankedAddress(bank, offset int, state arch.State) arch.Resolved {
	physical := bank*bankWindowSize + offset
	if physical >= state.Size() {
		return arch.UnknownBank(uint16(offset))
	}
	return arch.Physical(physical)
}

// jrSize is the encoding size of all relative branch instructions.
const jrSize = 2

// resolveRelative resolves a branch displacement in image space. Targets that
// leave the image or cross a bank boundary upwards cannot be mapped without
// knowing the bank layout at run time.
func resolveRelative(origin int, displacement int8, state arch.State) arch.Resolved {
	target := origin + jrSize + int(displacement)
	switch {
	case target < 0 || target >= state.Size():
		return arch.UnknownBank(uint16(target) & bankOffsetMask)
	case target < bankWindowSize:
		return arch.Physical(target)
	case target/bankWindowSize == origin/bankWindowSize:
		return arch.Physical(target)
	default:
		return arch.UnknownBank(uint16(target) & bankOffsetMask)
	}
}
