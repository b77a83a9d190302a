package rom

import (
	"fmt"
	"strings"
)

// Game Boy cartridge header layout.
const (
	titleStart          = 0x0134
	titleEnd            = 0x0144
	cartridgeTypeOffset = 0x0147
	romSizeOffset       = 0x0148
	ramSizeOffset       = 0x0149
	checksumOffset      = 0x014d
	headerSize          = 0x0150

	// checksumStart and checksumEnd delimit the inclusive byte range the
	// header checksum covers.
	checksumStart = 0x0134
	checksumEnd   = 0x014c

	// minROMSize is the smallest valid cartridge ROM size, the size byte of
	// the header scales it in powers of two.
	minROMSize = 0x8000

	// maxROMSizeCode is the largest assigned ROM size code, 8MB.
	maxROMSizeCode = 8
)

// Header contains the cartridge header fields relevant for disassembly.
type Header struct {
	Title         string
	CartridgeType byte
	ROMSize       int
	RAMSizeCode   byte
	ChecksumValid bool
}

// Header parses the Game Boy cartridge header of the image. It returns false
// if the image is too small to contain one.
func (i *Image) Header() (Header, bool) {
	if len(i.data) < headerSize {
		return Header{}, false
	}

	header := Header{
		Title:         parseTitle(i.data[titleStart:titleEnd]),
		CartridgeType: i.data[cartridgeTypeOffset],
		ROMSize:       romSize(i.data[romSizeOffset]),
		RAMSizeCode:   i.data[ramSizeOffset],
		ChecksumValid: headerChecksum(i.data) == i.data[checksumOffset],
	}
	return header, true
}

// CartridgeTypeName returns the mapper name of the cartridge type byte.
func (h Header) CartridgeTypeName() string {
	if name, ok := cartridgeTypeNames[h.CartridgeType]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%02x)", h.CartridgeType)
}

// Banks returns the number of ROM banks the header declares.
func (h Header) Banks() int {
	return h.ROMSize / 0x4000
}

// parseTitle reads the zero padded ASCII title, newer cartridges reuse the
// last title bytes for manufacturer and CGB flags.
func parseTitle(data []byte) string {
	end := len(data)
	for idx, b := range data {
		if b < 0x20 || b > 0x7e {
			end = idx
			break
		}
	}
	return strings.TrimSpace(string(data[:end]))
}

func romSize(code byte) int {
	if code > maxROMSizeCode {
		return 0
	}
	return minROMSize << code
}

func headerChecksum(data []byte) byte {
	var sum byte
	for _, b := range data[checksumStart : checksumEnd+1] {
		sum = sum - b - 1
	}
	return sum
}

var cartridgeTypeNames = map[byte]string{
	0x00: "ROM only",
	0x01: "MBC1",
	0x02: "MBC1+RAM",
	0x03: "MBC1+RAM+BATTERY",
	0x05: "MBC2",
	0x06: "MBC2+BATTERY",
	0x08: "ROM+RAM",
	0x09: "ROM+RAM+BATTERY",
	0x0f: "MBC3+TIMER+BATTERY",
	0x10: "MBC3+TIMER+RAM+BATTERY",
	0x11: "MBC3",
	0x12: "MBC3+RAM",
	0x13: "MBC3+RAM+BATTERY",
	0x19: "MBC5",
	0x1a: "MBC5+RAM",
	0x1b: "MBC5+RAM+BATTERY",
	0x1c: "MBC5+RUMBLE",
	0x1d: "MBC5+RUMBLE+RAM",
	0x1e: "MBC5+RUMBLE+RAM+BATTERY",
	0x20: "MBC6",
	0x22: "MBC7",
}
