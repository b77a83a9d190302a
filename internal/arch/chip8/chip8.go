// Package chip8 provides a CHIP-8 architecture specific disassembler implementation.
// CHIP-8 is an interpreted programming language from the 1970s designed for
// simple games, programs use a flat 4KB address space without banking.
package chip8

import (
	"github.com/retroenv/gbdisasm/internal/arch"
)

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: interpreter and font data
//	0x200-0xFFF: user program space
const (
	// ProgramStart is the memory address where CHIP-8 programs begin
	// execution. ROM files are stored starting at this address, so image
	// offset 0 corresponds to address 0x200.
	ProgramStart = 0x200

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = 0xfff
)

var _ arch.Architecture = (*Chip8)(nil)

// New returns a new CHIP-8 architecture configuration.
func New() *Chip8 {
	return &Chip8{}
}

// Chip8 implements the arch.Architecture interface for CHIP-8 programs.
type Chip8 struct{}

// Name returns the architecture name.
func (c *Chip8) Name() string {
	return "chip8"
}

// Constants returns no names, CHIP-8 has no memory mapped hardware registers.
func (c *Chip8) Constants() map[uint16]string {
	return map[uint16]string{}
}

// Decode decodes a single instruction at the start of the window.
func (c *Chip8) Decode(window []byte) (arch.Instruction, bool) {
	return decode(window)
}

// Resolve maps a logical address to an image offset. CHIP-8 uses a flat
// address space, addresses below the program start point into the interpreter
// area and addresses past the image end into uninitialized RAM.
func (c *Chip8) Resolve(address arch.LogicalAddress, origin int, state arch.State) arch.Resolved {
	if displacement, ok := address.Displacement(); ok {
		target := origin + opcodeSize + int(displacement)
		if target >= 0 && target < state.Size() {
			return arch.Physical(target)
		}
		return arch.System(uint16(ProgramStart + target))
	}

	bus, _ := address.Absolute()
	if bus < ProgramStart {
		return arch.System(bus)
	}
	offset := int(bus) - ProgramStart
	if offset >= state.Size() {
		return arch.System(bus)
	}
	return arch.Physical(offset)
}

// EntryPoints returns the program start, CHIP-8 execution always begins at
// the first image byte.
func (c *Chip8) EntryPoints(size int) []int {
	if size == 0 {
		return nil
	}
	return []int{0}
}
