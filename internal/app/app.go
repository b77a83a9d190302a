// Package app provides the main application workflow for the disassembler.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/gbdisasm/internal/arch"
	"github.com/retroenv/gbdisasm/internal/arch/chip8"
	"github.com/retroenv/gbdisasm/internal/arch/gbz80"
	"github.com/retroenv/gbdisasm/internal/detector"
	"github.com/retroenv/gbdisasm/internal/disasm"
	"github.com/retroenv/gbdisasm/internal/nav"
	"github.com/retroenv/gbdisasm/internal/options"
	"github.com/retroenv/gbdisasm/internal/rom"
	"github.com/retroenv/gbdisasm/internal/tui"
	"github.com/retroenv/gbdisasm/internal/writer"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
	"golang.org/x/term"
)

// Run executes the disassembler workflow: it loads the image, picks the
// architecture and enters either batch or interactive mode.
func Run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	image, err := rom.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}

	system := detector.New(logger).Detect(opts)
	architecture, err := createArchitecture(system)
	if err != nil {
		return err
	}

	PrintInfo(logger, opts, image, system)

	labels := nav.NewLabels()
	banks := nav.NewBanks()
	dis := disasm.New(logger, architecture, image, labels, banks)

	if opts.Output != "" {
		return runBatch(ctx, logger, opts, dis, labels)
	}
	return runInteractive(dis, labels, banks)
}

// PrintInfo prints the information about the input file and the image.
func PrintInfo(logger *log.Logger, opts options.Program, image *rom.Image, system detector.System) {
	if opts.Quiet {
		return
	}

	switch system {
	case detector.GameBoy:
		logger.Info("Processing Game Boy ROM",
			log.String("file", opts.Input),
			log.Int("size", image.Size()),
		)
		if opts.Binary {
			return
		}

		header, ok := image.Header()
		if !ok {
			logger.Warn("Image has no cartridge header, treating it as raw binary")
			return
		}
		logger.Info("Cartridge header",
			log.String("title", header.Title),
			log.String("type", header.CartridgeTypeName()),
			log.Int("banks", header.Banks()),
		)
		if !header.ChecksumValid {
			logger.Warn("Cartridge header checksum does not match")
		}

	case detector.CHIP8:
		logger.Info("Processing Chip-8 ROM",
			log.String("file", opts.Input),
			log.Int("size", image.Size()),
		)
	}
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("gbdisasm", log.String("version", buildinfo.Version(version, commit, date)))
}

func createArchitecture(system detector.System) (arch.Architecture, error) {
	switch system {
	case detector.GameBoy:
		return gbz80.New(), nil
	case detector.CHIP8:
		return chip8.New(), nil
	default:
		return nil, fmt.Errorf("unsupported system '%s'", system)
	}
}

// runBatch seeds all architecture entry points and writes the resulting
// listing to the output file.
func runBatch(ctx context.Context, logger *log.Logger, opts options.Program,
	dis *disasm.Disasm, labels *nav.Labels) error {

	seeded := set.New[int]()
	for _, offset := range dis.Architecture().EntryPoints(dis.Size()) {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("seeding entry points: %w", err)
		}
		if seeded.Contains(offset) {
			continue
		}
		seeded.Add(offset)

		logger.Debug("Seeding entry point", log.Hex("offset", offset))
		dis.Mark(offset, disasm.Code)
	}

	output, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := output.(io.Closer); ok {
			_ = closer.Close()
		}
	}()

	w := writer.New(dis, labels, output, writer.Options{OffsetComments: !opts.NoOffsets})
	if err := w.Write(); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}

	if opts.Output != "-" {
		logger.Info("Wrote listing", log.String("file", opts.Output))
	}
	return nil
}

func runInteractive(dis *disasm.Disasm, labels *nav.Labels, banks *nav.Banks) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("interactive mode requires a terminal, use -o to write a listing")
	}
	return tui.Run(dis, labels, banks)
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "-" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}
