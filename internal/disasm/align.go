package disasm

// maxProbe is how far the alignment looks backwards for an instruction that
// spans the requested offset, the longest encoding is three bytes.
const maxProbe = 2

// AlignToValid snaps an offset to a position the listing can start rendering
// at. Classified offsets are trusted as they are. For unknown offsets the
// preceding bytes are probed for a decodable instruction that spans the
// offset, preferring the earliest start.
func (dis *Disasm) AlignToValid(offset int) int {
	if offset <= 0 || offset >= len(dis.tags) {
		return offset
	}
	if dis.tags[offset] != Unknown {
		return offset
	}

	for back := maxProbe; back >= 1; back-- {
		start := offset - back
		if start < 0 {
			continue
		}
		ins, ok := dis.arch.Decode(dis.image.Window(start))
		if ok && ins.Size > back {
			return start
		}
	}
	return offset
}

// NextAligned returns the offset the line after the given one starts at,
// stepping over the full instruction for decodable code offsets.
func (dis *Disasm) NextAligned(offset int) int {
	if dis.TagAt(offset) == Code {
		if ins, ok := dis.InstructionAt(offset); ok {
			return offset + ins.Size
		}
	}
	return offset + 1
}
