package detector

import (
	"testing"

	"github.com/retroenv/gbdisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		systemOpt  string
		inputFile  string
		wantSystem System
	}{
		{
			name:       "explicit gb system option",
			systemOpt:  "gb",
			inputFile:  "game.bin",
			wantSystem: GameBoy,
		},
		{
			name:       "explicit chip8 system option",
			systemOpt:  "chip8",
			inputFile:  "game.bin",
			wantSystem: CHIP8,
		},
		{
			name:       "gbc option maps to gb",
			systemOpt:  "gbc",
			inputFile:  "game.bin",
			wantSystem: GameBoy,
		},
		{
			name:       "detect from .gb extension",
			systemOpt:  "",
			inputFile:  "game.gb",
			wantSystem: GameBoy,
		},
		{
			name:       "detect from .ch8 extension",
			systemOpt:  "",
			inputFile:  "game.ch8",
			wantSystem: CHIP8,
		},
		{
			name:       "unknown extension defaults to Game Boy",
			systemOpt:  "",
			inputFile:  "game.bin",
			wantSystem: GameBoy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Input:  tt.inputFile,
				System: tt.systemOpt,
			}

			got := d.Detect(opts)
			assert.Equal(t, tt.wantSystem, got)
		})
	}
}

func TestDetectFromFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		filename   string
		wantSystem System
	}{
		{
			name:       ".gb extension",
			filename:   "tetris.gb",
			wantSystem: GameBoy,
		},
		{
			name:       ".GB extension (uppercase)",
			filename:   "TETRIS.GB",
			wantSystem: GameBoy,
		},
		{
			name:       ".gbc extension",
			filename:   "game.gbc",
			wantSystem: GameBoy,
		},
		{
			name:       ".ch8 extension",
			filename:   "pong.ch8",
			wantSystem: CHIP8,
		},
		{
			name:       "no extension",
			filename:   "game",
			wantSystem: GameBoy,
		},
		{
			name:       ".bin extension",
			filename:   "game.bin",
			wantSystem: GameBoy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.detectFromFile(tt.filename)
			assert.Equal(t, tt.wantSystem, got)
		})
	}
}

func TestSystemFromString(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		wantSystem System
		wantOK     bool
	}{
		{name: "gb", value: "gb", wantSystem: GameBoy, wantOK: true},
		{name: "gameboy", value: "gameboy", wantSystem: GameBoy, wantOK: true},
		{name: "chip8 uppercase", value: "CHIP8", wantSystem: CHIP8, wantOK: true},
		{name: "empty", value: "", wantOK: false},
		{name: "unknown", value: "n64", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SystemFromString(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSystem, got)
		})
	}
}
