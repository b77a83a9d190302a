package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/gbdisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "positional input file",
			args: []string{"prog", "test.gb"},
			want: options.Program{Input: "test.gb"},
		},
		{
			name: "output file",
			args: []string{"prog", "-o", "test.asm", "test.gb"},
			want: options.Program{Input: "test.gb", Output: "test.asm"},
		},
		{
			name: "system flag",
			args: []string{"prog", "-s", "chip8", "test.bin"},
			want: options.Program{Input: "test.bin", System: "chip8"},
		},
		{
			name: "system flag is normalized",
			args: []string{"prog", "-s", "GB", "test.bin"},
			want: options.Program{Input: "test.bin", System: "gb"},
		},
		{
			name: "input flag without positional",
			args: []string{"prog", "-i", "test.gb"},
			want: options.Program{Input: "test.gb"},
		},
		{
			name: "behavior flags",
			args: []string{"prog", "-binary", "-debug", "-nooffsets", "-q", "test.gb"},
			want: options.Program{Input: "test.gb", Binary: true, Debug: true, NoOffsets: true, Quiet: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantUsage bool
	}{
		{
			name:      "no input file",
			args:      []string{"prog"},
			wantUsage: true,
		},
		{
			name:      "flag after input file",
			args:      []string{"prog", "test.gb", "-debug"},
			wantUsage: true,
		},
		{
			name: "unsupported system",
			args: []string{"prog", "-s", "n64", "test.bin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.wantUsage, errors.As(err, &usageErr))
		})
	}
}

func TestValidateArgs(t *testing.T) {
	assert.NoError(t, validateArgs([]string{"test.gb"}))
	assert.Error(t, validateArgs([]string{"test.gb", "-o"}))
}
