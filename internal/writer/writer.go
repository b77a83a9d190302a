// Package writer implements listing file writing functionality.
package writer

import (
	"fmt"
	"hash/crc32"
	"io"
	"strings"

	"github.com/retroenv/gbdisasm/internal/disasm"
	"github.com/retroenv/gbdisasm/internal/listing"
	"github.com/retroenv/gbdisasm/internal/nav"
)

const dataBytesPerLine = 16

type lineWriterFunc func(line string, byteCount int) error

// Writer writes the classified listing of an image to an output stream.
type Writer struct {
	dis     *disasm.Disasm
	labels  *nav.Labels
	builder *listing.Builder
	writer  io.Writer
	options Options
}

// Options of the writer.
type Options struct {
	OffsetComments bool
}

// New creates a new writer.
func New(dis *disasm.Disasm, labels *nav.Labels, writer io.Writer, options Options) *Writer {
	return &Writer{
		dis:     dis,
		labels:  labels,
		builder: listing.NewBuilder(dis, labels),
		writer:  writer,
		options: options,
	}
}

// Write writes the comment header and all labels, code lines and data lines
// of the image.
func (w *Writer) Write() error {
	if err := w.writeCommentHeader(); err != nil {
		return err
	}

	var previousLineWasCode bool

	for offset := 0; offset < w.dis.Size(); {
		line := w.builder.Line(offset)
		isCode := w.dis.TagAt(offset) == disasm.Code

		if line.Label != "" {
			if err := w.writeLabel(offset, line.Label); err != nil {
				return err
			}
		} else if offset > 0 && isCode != previousLineWasCode {
			// print an empty line in case of data after code and vice versa
			if _, err := fmt.Fprintln(w.writer); err != nil {
				return fmt.Errorf("writing line: %w", err)
			}
		}
		previousLineWasCode = isCode

		if isCode {
			if err := w.writeCodeLine(line); err != nil {
				return err
			}
			offset += line.Length
			continue
		}

		count, err := w.writeDataRun(offset)
		if err != nil {
			return err
		}
		offset += count
	}
	return nil
}

// BundleDataWrites bundles writes of data bytes to print dataBytesPerLine
// bytes per line.
func (w *Writer) BundleDataWrites(data []byte, lineWriter lineWriterFunc) error {
	remaining := len(data)
	for i := 0; remaining > 0; {
		toWrite := min(remaining, dataBytesPerLine)

		buf := &strings.Builder{}
		buf.WriteString("db ")

		for j := range toWrite {
			if _, err := fmt.Fprintf(buf, "$%02x, ", data[i+j]); err != nil {
				return fmt.Errorf("writing data byte: %w", err)
			}
		}

		line := strings.TrimRight(buf.String(), ", ")

		if lineWriter != nil {
			if err := lineWriter(line, toWrite); err != nil {
				return fmt.Errorf("writing data line using custom writer: %w", err)
			}
		} else {
			if _, err := fmt.Fprintf(w.writer, "%s\n", line); err != nil {
				return fmt.Errorf("writing data line: %w", err)
			}
		}

		i += toWrite
		remaining -= toWrite
	}

	return nil
}

// writeCommentHeader writes the CRC32 checksum and size of the image as
// comments to the output.
func (w *Writer) writeCommentHeader() error {
	crc32q := crc32.MakeTable(crc32.IEEE)
	checksum := crc32.Checksum(w.dis.Image().Data(), crc32q)

	if _, err := fmt.Fprintf(w.writer, "; ROM CRC32 checksum: %08x\n", checksum); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; ROM size: %d bytes\n\n", w.dis.Size()); err != nil {
		return fmt.Errorf("writing size: %w", err)
	}
	return nil
}

func (w *Writer) writeLabel(offset int, label string) error {
	if offset > 0 {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w.writer, "%s:\n", label); err != nil {
		return fmt.Errorf("writing label: %w", err)
	}
	return nil
}

func (w *Writer) writeCodeLine(line listing.Line) error {
	if !w.options.OffsetComments {
		if _, err := fmt.Fprintf(w.writer, "  %s\n", line.Text); err != nil {
			return fmt.Errorf("writing code line: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(w.writer, "  %-30s ; %06x\n", line.Text, line.Offset); err != nil {
		return fmt.Errorf("writing code line: %w", err)
	}
	return nil
}

// writeDataRun bundles consecutive data and unclassified bytes into data
// lines, stopping at the next code offset or label.
func (w *Writer) writeDataRun(offset int) (int, error) {
	data := w.dataRun(offset)

	currentOffset := offset
	lineWriter := func(line string, byteCount int) error {
		var err error
		if w.options.OffsetComments {
			_, err = fmt.Fprintf(w.writer, "%-32s ; %06x\n", line, currentOffset)
		} else {
			_, err = fmt.Fprintf(w.writer, "%s\n", line)
		}
		if err != nil {
			return fmt.Errorf("writing data line: %w", err)
		}

		currentOffset += byteCount
		return nil
	}

	if err := w.BundleDataWrites(data, lineWriter); err != nil {
		return 0, fmt.Errorf("writing data: %w", err)
	}
	return len(data), nil
}

func (w *Writer) dataRun(offset int) []byte {
	var data []byte

	for current := offset; current < w.dis.Size(); current++ {
		if w.dis.TagAt(current) == disasm.Code {
			break
		}
		// stop at the next label after the start to keep it on its own line
		if current > offset && w.labels.Has(current) {
			break
		}
		data = append(data, w.dis.Image().Byte(current))
	}

	return data
}
