// Package main implements the main entry point for an interactive disassembler
// for Game Boy and Chip-8 ROMs
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/gbdisasm/internal/app"
	"github.com/retroenv/gbdisasm/internal/cli"
	"github.com/retroenv/gbdisasm/internal/config"
	"github.com/retroenv/gbdisasm/internal/options"
	retroapp "github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := retroapp.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := createLogger(opts)
	app.PrintBanner(logger, opts, version, commit, date)

	if err := app.Run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Disassembling failed", log.Err(err))
		os.Exit(1)
	}
}

// createLogger creates an error level logger for interactive mode to not
// interfere with the terminal user interface and a regular logger for
// batch mode.
func createLogger(opts options.Program) *log.Logger {
	if opts.Output == "" {
		return config.CreateInteractiveLogger()
	}
	return config.CreateLogger(opts.Debug, opts.Quiet)
}
