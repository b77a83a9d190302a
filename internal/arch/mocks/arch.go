// Package mocks provides mock implementations of arch interfaces for testing.
package mocks

import "github.com/retroenv/gbdisasm/internal/arch"

// Architecture is a scripted arch.Architecture implementation for testing.
// Instructions are keyed by the byte at the start of the decode window,
// unscripted bytes do not decode. This lets engine tests describe control
// flow without depending on a real instruction set.
type Architecture struct {
	Instructions map[byte]arch.Instruction
	Entries      []int
}

// NewArchitecture creates a new scripted architecture without any
// instructions.
func NewArchitecture() *Architecture {
	return &Architecture{
		Instructions: map[byte]arch.Instruction{},
	}
}

var _ arch.Architecture = (*Architecture)(nil)

// Script registers the instruction that decoding returns for windows
// starting with the given byte.
func (a *Architecture) Script(opcode byte, ins arch.Instruction) {
	a.Instructions[opcode] = ins
}

func (a *Architecture) Name() string {
	return "mock"
}

func (a *Architecture) Constants() map[uint16]string {
	return nil
}

func (a *Architecture) Decode(window []byte) (arch.Instruction, bool) {
	if len(window) == 0 {
		return arch.Instruction{}, false
	}
	ins, ok := a.Instructions[window[0]]
	if !ok || ins.Size > len(window) {
		return arch.Instruction{}, false
	}
	return ins, true
}

// Resolve maps absolute addresses to the image offset of the same value and
// relative addresses to origin plus displacement. Targets outside the image
// stay unresolved.
func (a *Architecture) Resolve(address arch.LogicalAddress, origin int, state arch.State) arch.Resolved {
	target := origin
	if value, ok := address.Absolute(); ok {
		target = int(value)
	} else if disp, ok := address.Displacement(); ok {
		target = origin + int(disp)
	}

	if target < 0 || target >= state.Size() {
		return arch.UnknownBank(uint16(target))
	}
	return arch.Physical(target)
}

func (a *Architecture) EntryPoints(size int) []int {
	points := make([]int, 0, len(a.Entries))
	for _, offset := range a.Entries {
		if offset < size {
			points = append(points, offset)
		}
	}
	return points
}
