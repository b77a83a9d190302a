// Package arch contains types and functions used for multi architecture support.
// It acts as a bridge between the disassembler engine and the architecture
// specific decoder and address resolver implementations.
package arch

// Architecture contains architecture specific information.
type Architecture interface {
	// Name returns the architecture name.
	Name() string
	// Constants returns the names of well known system addresses, used to
	// replace raw addresses in the output by hardware register names.
	Constants() map[uint16]string
	// Decode decodes a single instruction at the start of the byte window.
	// It returns false if the window starts with an illegal opcode or is too
	// short to contain the full instruction encoding.
	Decode(window []byte) (Instruction, bool)
	// Resolve maps a logical address of an instruction at the given image
	// offset to a resolved address. The classification state is read-only
	// and used to look up bank assignments.
	Resolve(address LogicalAddress, origin int, state State) Resolved
	// EntryPoints returns the image offsets at which execution can start,
	// limited to offsets inside an image of the given size.
	EntryPoints(size int) []int
}

// State is a read-only view of the classification state that address
// resolvers consult during resolution.
type State interface {
	// Size returns the image size in bytes.
	Size() int
	// Bank returns the bank number assigned to the given read location.
	Bank(origin int) (int, bool)
}
