package nav

// Banks tracks which switchable ROM bank the user declared to be active for
// code at a given offset. The address resolver consults these assignments
// when an offset does not determine its own bank.
type Banks struct {
	assigned map[int]int
}

// NewBanks creates a new bank assignment manager.
func NewBanks() *Banks {
	return &Banks{
		assigned: make(map[int]int),
	}
}

// Assign declares the active bank for the given offset.
func (b *Banks) Assign(offset, bank int) {
	b.assigned[offset] = bank
}

// Bank returns the bank assigned for the given offset.
func (b *Banks) Bank(offset int) (int, bool) {
	bank, ok := b.assigned[offset]
	return bank, ok
}

// Len returns the number of assigned banks.
func (b *Banks) Len() int {
	return len(b.assigned)
}
