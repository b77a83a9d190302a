// Package options contains the program options.
package options

// Program options of the disassembler.
type Program struct {
	Input  string // input ROM file
	Output string // output listing file, enables batch mode
	System string // target system, auto-detected if empty

	Binary    bool // read input as raw binary without a header
	Debug     bool // enable debug logging
	NoOffsets bool // omit offset comments in the output listing
	Quiet     bool // do not print the banner and image info
}
