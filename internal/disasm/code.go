package disasm

import (
	"github.com/retroenv/gbdisasm/internal/arch"
	"github.com/retroenv/retrogolib/log"
)

// drain processes queued code classification requests until no more follow.
// Discovered branch targets are only queued while still unknown and a walk
// only tags offsets that decode, so the queue empties after a bounded number
// of steps.
func (dis *Disasm) drain() {
	for len(dis.queue) > 0 {
		last := len(dis.queue) - 1
		offset := dis.queue[last]
		dis.queue = dis.queue[:last]

		dis.walk(offset)
	}
}

// walk follows the execution flow from the offset and tags each reached
// instruction start as code. An offset is only tagged after it decoded, a
// chain ending at a byte that does not decode leaves that byte unclassified.
// The walk ends at instructions that do not continue to the next offset and
// at offsets that are already classified.
func (dis *Disasm) walk(offset int) {
	for {
		ins, ok := dis.arch.Decode(dis.image.Window(offset))
		if !ok {
			return
		}
		dis.tags[offset] = Code

		if target, ok := ins.BranchTarget(); ok {
			dis.discover(target, offset)
		}

		if !ins.FallsThrough {
			return
		}

		offset += ins.Size
		if offset >= len(dis.tags) || dis.tags[offset] != Unknown {
			return
		}
	}
}

// discover resolves a branch target read at the origin offset and queues it
// for code classification if it is still unknown. Every target that resolves
// to an image offset receives a generated label.
func (dis *Disasm) discover(target arch.LogicalAddress, origin int) {
	offset, ok := dis.Resolve(target, origin).ImageOffset()
	if !ok {
		return
	}

	dis.labels.EnsureDefault(offset)
	if dis.tags[offset] != Unknown {
		return
	}

	dis.queue = append(dis.queue, offset)
	dis.logger.Debug("Discovered code",
		log.Hex("offset", offset),
		log.Hex("origin", origin))
}
