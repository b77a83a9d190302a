// Package disasm implements the incremental disassembler engine. Offsets are
// classified one user command at a time instead of in a single full pass, the
// engine only follows the execution flow of offsets that were explicitly
// marked as code.
package disasm

import (
	"github.com/retroenv/gbdisasm/internal/arch"
	"github.com/retroenv/gbdisasm/internal/nav"
	"github.com/retroenv/gbdisasm/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

// Disasm tracks the classification of every image offset and discovers code
// reachable from offsets marked as code.
type Disasm struct {
	logger *log.Logger
	arch   arch.Architecture
	image  *rom.Image

	labels *nav.Labels
	banks  *nav.Banks

	tags []Tag
	// queue holds the offsets awaiting a code discovery walk
	queue []int
}

// The engine acts as the state view for address resolution.
var _ arch.State = (*Disasm)(nil)

// New creates a new disassembler engine for the image.
func New(logger *log.Logger, ar arch.Architecture, image *rom.Image,
	labels *nav.Labels, banks *nav.Banks) *Disasm {

	return &Disasm{
		logger: logger,
		arch:   ar,
		image:  image,
		labels: labels,
		banks:  banks,
		tags:   make([]Tag, image.Size()),
	}
}

// Size returns the image size in bytes.
func (dis *Disasm) Size() int {
	return dis.image.Size()
}

// Bank returns the bank assigned at the given offset.
func (dis *Disasm) Bank(origin int) (int, bool) {
	return dis.banks.Bank(origin)
}

// Image returns the disassembled image.
func (dis *Disasm) Image() *rom.Image {
	return dis.image
}

// Architecture returns the architecture of the image.
func (dis *Disasm) Architecture() arch.Architecture {
	return dis.arch
}

// TagAt returns the classification of the offset.
func (dis *Disasm) TagAt(offset int) Tag {
	if offset < 0 || offset >= len(dis.tags) {
		return Unknown
	}
	return dis.tags[offset]
}

// Mark overrides the classification of the offset and processes all changes
// that follow from it before returning. Marking an offset as code seeds the
// execution flow walk.
func (dis *Disasm) Mark(offset int, tag Tag) {
	if offset < 0 || offset >= len(dis.tags) {
		return
	}
	dis.tags[offset] = tag
	if tag != Code {
		return
	}
	dis.queue = append(dis.queue, offset)
	dis.drain()
}

// InstructionAt decodes the instruction starting at the offset.
func (dis *Disasm) InstructionAt(offset int) (arch.Instruction, bool) {
	return dis.arch.Decode(dis.image.Window(offset))
}

// Resolve resolves a logical address read at the given origin offset.
func (dis *Disasm) Resolve(address arch.LogicalAddress, origin int) arch.Resolved {
	return dis.arch.Resolve(address, origin, dis)
}

// ResolveTarget resolves the branch target of the instruction at the offset
// to an image offset.
func (dis *Disasm) ResolveTarget(offset int) (int, bool) {
	ins, ok := dis.InstructionAt(offset)
	if !ok {
		return 0, false
	}
	target, ok := ins.BranchTarget()
	if !ok {
		return 0, false
	}
	return dis.Resolve(target, offset).ImageOffset()
}
