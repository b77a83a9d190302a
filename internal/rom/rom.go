// Package rom handles ROM image loading and cartridge header parsing.
package rom

import (
	"errors"
	"fmt"
	"os"
)

// Image is a loaded ROM image. Offsets into the image are physical, the
// architecture specific address resolution maps bus addresses onto them.
type Image struct {
	data []byte
}

// Load reads a ROM image from a file.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, errors.New("file is empty")
	}
	return New(data), nil
}

// New creates an image from a raw data buffer.
func New(data []byte) *Image {
	return &Image{data: data}
}

// Size returns the image size in bytes.
func (i *Image) Size() int {
	return len(i.data)
}

// Byte returns the byte at the given offset.
func (i *Image) Byte(offset int) byte {
	return i.data[offset]
}

// Window returns the image content starting at the given offset, used as
// decoder input. It returns nil for offsets outside of the image.
func (i *Image) Window(offset int) []byte {
	if offset < 0 || offset >= len(i.data) {
		return nil
	}
	return i.data[offset:]
}

// Data returns the raw image content.
func (i *Image) Data() []byte {
	return i.data
}
