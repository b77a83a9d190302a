package nav

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestHistoryBackForward(t *testing.T) {
	history := NewHistory()

	// follow 0x100 -> 0x200 -> 0x300
	history.Push(0x100)
	history.Push(0x200)

	offset, ok := history.Back(0x300)
	assert.True(t, ok)
	assert.Equal(t, 0x200, offset)

	offset, ok = history.Back(offset)
	assert.True(t, ok)
	assert.Equal(t, 0x100, offset)

	// the start of the history has been reached
	_, ok = history.Back(offset)
	assert.False(t, ok)

	offset, ok = history.Forward()
	assert.True(t, ok)
	assert.Equal(t, 0x200, offset)

	offset, ok = history.Forward()
	assert.True(t, ok)
	assert.Equal(t, 0x300, offset)

	// the end of the history has been reached
	_, ok = history.Forward()
	assert.False(t, ok)

	// going back again does not duplicate the end entry
	offset, ok = history.Back(0x300)
	assert.True(t, ok)
	assert.Equal(t, 0x200, offset)
}

func TestHistoryTruncate(t *testing.T) {
	history := NewHistory()

	history.Push(0x100)
	offset, ok := history.Back(0x200)
	assert.True(t, ok)
	assert.Equal(t, 0x100, offset)

	// navigating somewhere new discards the forward entries
	history.Push(0x100)

	_, ok = history.Forward()
	assert.False(t, ok)

	offset, ok = history.Back(0x500)
	assert.True(t, ok)
	assert.Equal(t, 0x100, offset)

	offset, ok = history.Forward()
	assert.True(t, ok)
	assert.Equal(t, 0x500, offset)
}

func TestHistoryEmpty(t *testing.T) {
	history := NewHistory()

	_, ok := history.Back(0x100)
	assert.False(t, ok)

	_, ok = history.Forward()
	assert.False(t, ok)
}
