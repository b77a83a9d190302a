package listing

import (
	"testing"

	"github.com/retroenv/gbdisasm/internal/arch/gbz80"
	"github.com/retroenv/gbdisasm/internal/disasm"
	"github.com/retroenv/gbdisasm/internal/nav"
	"github.com/retroenv/gbdisasm/internal/rom"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestBuilder(t *testing.T, data []byte) (*Builder, *disasm.Disasm, *nav.Labels) {
	t.Helper()

	logger := log.NewTestLogger(t)
	labels := nav.NewLabels()
	banks := nav.NewBanks()
	dis := disasm.New(logger, gbz80.New(), rom.New(data), labels, banks)
	return NewBuilder(dis, labels), dis, labels
}

func TestLineUnclassified(t *testing.T) {
	builder, _, _ := newTestBuilder(t, []byte{0xff})

	line := builder.Line(0)

	assert.Equal(t, "ff", line.Bytes)
	assert.Equal(t, "??", line.Text)
	assert.Equal(t, 1, line.Length)
}

func TestLineData(t *testing.T) {
	builder, dis, labels := newTestBuilder(t, []byte{0x42, 0x43})
	labels.Set(1, "table")
	dis.Mark(1, disasm.Data)

	line := builder.Line(1)

	assert.Equal(t, "43", line.Bytes)
	assert.Equal(t, "db", line.Text)
	assert.Equal(t, "table", line.Label)
}

func TestLineCode(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{
			name:     "absolute jump to label",
			data:     []byte{0xc3, 0x00, 0x00},
			expected: "JP    LOC_000000",
		},
		{
			name:     "relative jump to label",
			data:     []byte{0x18, 0x02, 0x00, 0x00, 0x00},
			expected: "JR    LOC_000004",
		},
		{
			name:     "relative jump outside the image",
			data:     []byte{0x18, 0xfc},
			expected: "JR    (??:3ffe)",
		},
		{
			name:     "jump into unresolved bank",
			data:     []byte{0xc3, 0x00, 0x50},
			expected: "JP    (??:1000)",
		},
		{
			name:     "load immediate 16",
			data:     []byte{0x01, 0x34, 0x12},
			expected: "LD    BC, 1234",
		},
		{
			name:     "load immediate 8",
			data:     []byte{0x3e, 0x42},
			expected: "LD    A, 42",
		},
		{
			name:     "high load with named register",
			data:     []byte{0xe0, 0x40},
			expected: "LDH   (LCDC), A",
		},
		{
			name:     "high load without named register",
			data:     []byte{0xe0, 0x80},
			expected: "LDH   (SYS:ff80), A",
		},
		{
			name:     "indirect register jump",
			data:     []byte{0xe9},
			expected: "JP    (HL)",
		},
		{
			name:     "add to stack pointer",
			data:     []byte{0xe8, 0xfe},
			expected: "ADD   SP, -2",
		},
		{
			name:     "post increment store",
			data:     []byte{0x22},
			expected: "LD    (HL+), A",
		},
		{
			name:     "shift instruction",
			data:     []byte{0xcb, 0x87},
			expected: "RES 0 A",
		},
		{
			name:     "reset vector",
			data:     []byte{0xc7},
			expected: "RST   LOC_000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder, dis, _ := newTestBuilder(t, tt.data)
			dis.Mark(0, disasm.Code)

			line := builder.Line(0)

			assert.Equal(t, tt.expected, line.Text)
		})
	}
}

func TestLineIllegalInstruction(t *testing.T) {
	builder, dis, _ := newTestBuilder(t, []byte{0xdd})
	dis.Mark(0, disasm.Code)

	line := builder.Line(0)

	assert.Equal(t, "dd", line.Bytes)
	assert.Equal(t, "<illegal>", line.Text)
	assert.Equal(t, 1, line.Length)
}

func TestLineBytes(t *testing.T) {
	builder, dis, _ := newTestBuilder(t, []byte{0x01, 0x34, 0x12})
	dis.Mark(0, disasm.Code)

	line := builder.Line(0)

	assert.Equal(t, "01 34 12", line.Bytes)
	assert.Equal(t, 3, line.Length)
}

func TestRender(t *testing.T) {
	builder, dis, _ := newTestBuilder(t, []byte{0xc3, 0x03, 0x00, 0xc9, 0xff})
	dis.Mark(0, disasm.Code)

	lines := builder.Render(0, 10)

	assert.Len(t, lines, 3)
	assert.Equal(t, "JP    LOC_000003", lines[0].Text)
	assert.Equal(t, "RET", lines[1].Text)
	assert.Equal(t, "LOC_000003", lines[1].Label)
	assert.Equal(t, "??", lines[2].Text)
	assert.Equal(t, 4, lines[2].Offset)
}

func TestRenderLimitsCount(t *testing.T) {
	builder, _, _ := newTestBuilder(t, []byte{0x00, 0x00, 0x00, 0x00})

	lines := builder.Render(0, 2)

	assert.Len(t, lines, 2)
}

func TestLineOutOfRange(t *testing.T) {
	builder, _, _ := newTestBuilder(t, []byte{0x00})

	line := builder.Line(4)

	assert.Equal(t, 1, line.Length)
	assert.Equal(t, "", line.Text)
}
