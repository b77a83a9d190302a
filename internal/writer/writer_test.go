package writer

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"testing"

	"github.com/retroenv/gbdisasm/internal/arch/gbz80"
	"github.com/retroenv/gbdisasm/internal/disasm"
	"github.com/retroenv/gbdisasm/internal/nav"
	"github.com/retroenv/gbdisasm/internal/rom"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestWriter(t *testing.T, data []byte, options Options) (*Writer, *disasm.Disasm, *nav.Labels, *bytes.Buffer) {
	t.Helper()

	logger := log.NewTestLogger(t)
	labels := nav.NewLabels()
	banks := nav.NewBanks()
	dis := disasm.New(logger, gbz80.New(), rom.New(data), labels, banks)
	buffer := &bytes.Buffer{}
	return New(dis, labels, buffer, options), dis, labels, buffer
}

func expectedHeader(data []byte) string {
	checksum := crc32.Checksum(data, crc32.MakeTable(crc32.IEEE))
	return fmt.Sprintf("; ROM CRC32 checksum: %08x\n; ROM size: %d bytes\n\n", checksum, len(data))
}

func TestWrite(t *testing.T) {
	data := []byte{0x00, 0xc3, 0x00, 0x00, 0x12, 0x34}
	writer, dis, _, buffer := newTestWriter(t, data, Options{})
	dis.Mark(0, disasm.Code)

	assert.NoError(t, writer.Write())

	expected := expectedHeader(data) + `LOC_000000:
  NOP
  JP    LOC_000000

db $12, $34
`
	assert.Equal(t, expected, buffer.String())
}

func TestWriteBundlesData(t *testing.T) {
	data := make([]byte, 20)
	for i := range data {
		data[i] = byte(i)
	}
	writer, _, _, buffer := newTestWriter(t, data, Options{})

	assert.NoError(t, writer.Write())

	expected := expectedHeader(data) + `db $00, $01, $02, $03, $04, $05, $06, $07, $08, $09, $0a, $0b, $0c, $0d, $0e, $0f
db $10, $11, $12, $13
`
	assert.Equal(t, expected, buffer.String())
}

func TestWriteLabelBreaksDataRun(t *testing.T) {
	data := []byte{0xff, 0xff, 0xff, 0xff}
	writer, _, labels, buffer := newTestWriter(t, data, Options{})
	labels.Set(2, "table")

	assert.NoError(t, writer.Write())

	expected := expectedHeader(data) + `db $ff, $ff

table:
db $ff, $ff
`
	assert.Equal(t, expected, buffer.String())
}

func TestWriteDataAfterCode(t *testing.T) {
	data := []byte{0xc9, 0x42}
	writer, dis, _, buffer := newTestWriter(t, data, Options{})
	dis.Mark(0, disasm.Code)

	assert.NoError(t, writer.Write())

	expected := expectedHeader(data) + `  RET

db $42
`
	assert.Equal(t, expected, buffer.String())
}

func TestWriteOffsetComments(t *testing.T) {
	data := []byte{0x00, 0x12}
	writer, dis, _, buffer := newTestWriter(t, data, Options{OffsetComments: true})
	dis.Mark(0, disasm.Code)

	assert.NoError(t, writer.Write())

	output := buffer.String()
	assert.Contains(t, output, "; 000000")
	assert.Contains(t, output, "; 000001")
}

func TestBundleDataWrites(t *testing.T) {
	writer, _, _, buffer := newTestWriter(t, []byte{0x00}, Options{})

	assert.NoError(t, writer.BundleDataWrites([]byte{0x12, 0x34, 0x56}, nil))

	assert.Equal(t, "db $12, $34, $56\n", buffer.String())
}
