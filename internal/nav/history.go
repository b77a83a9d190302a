package nav

// History records visited offsets so that following a branch target can be
// undone and redone. It behaves like browser history, navigating somewhere
// new discards the entries in front of the cursor.
type History struct {
	entries []int
	cursor  int
}

// NewHistory creates a new visit history.
func NewHistory() *History {
	return &History{}
}

// Push records the offset the user navigated away from and discards all
// entries that a previous Back call stepped over.
func (h *History) Push(offset int) {
	h.entries = append(h.entries[:h.cursor], offset)
	h.cursor = len(h.entries)
}

// Back returns the last recorded offset. The current offset is kept so that
// Forward can return to it.
func (h *History) Back(current int) (int, bool) {
	if h.cursor == 0 {
		return 0, false
	}
	if h.cursor == len(h.entries) {
		h.entries = append(h.entries, current)
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Forward returns the offset the last Back call moved away from.
func (h *History) Forward() (int, bool) {
	if h.cursor+1 >= len(h.entries) {
		return 0, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}
