// Package detector handles system architecture detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/gbdisasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// System identifies a supported target system.
type System string

// Supported systems.
const (
	GameBoy System = "gb"
	CHIP8   System = "chip8"
)

// String implements fmt.Stringer.
func (s System) String() string {
	return string(s)
}

// SystemFromString returns the system matching the given name.
func SystemFromString(value string) (System, bool) {
	switch strings.ToLower(value) {
	case "gb", "gbc", "gameboy":
		return GameBoy, true
	case "chip8", "ch8":
		return CHIP8, true
	default:
		return "", false
	}
}

// Detector handles system architecture detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the system architecture from options or file auto-detection.
// It first checks if a system is explicitly specified in options, otherwise
// attempts to detect the system from the input filename extension.
func (d *Detector) Detect(opts options.Program) System {
	system, ok := SystemFromString(opts.System)
	if !ok {
		system = d.detectFromFile(opts.Input)
		d.logger.Debug("Auto-detected system",
			log.Stringer("system", system),
			log.String("file", opts.Input))
	}
	return system
}

// detectFromFile determines the system type based on file extension.
func (d *Detector) detectFromFile(filename string) System {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ch8":
		return CHIP8
	case ".gb", ".gbc":
		return GameBoy
	default:
		// Default to Game Boy for unknown extensions
		return GameBoy
	}
}
