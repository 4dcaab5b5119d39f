package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sweeplab/sweepgrid/internal/app"
	"github.com/sweeplab/sweepgrid/internal/cli"
	"github.com/sweeplab/sweepgrid/internal/hclspec"
)

// main is the entrypoint for the sweepgrid CLI.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Generated commands go to outW, diagnostics to logW.
func run(outW, logW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, logW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	loader := hclspec.NewLoader()
	sweepApp := app.NewApp(outW, logW, config, loader)

	return sweepApp.Run(context.Background())
}
