package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/sweeplab/sweepgrid/internal/hclspec"
)

// Loader abstracts the sweep-file front end so the app does not depend on a
// concrete configuration format.
type Loader interface {
	Load(ctx context.Context, path string) (*hclspec.Model, error)
}

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader Loader
}

// NewApp constructs the application. Generated commands go to outW; logs go
// to logW so piping the command stream stays clean.
func NewApp(outW, logW io.Writer, config *Config, loader Loader) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
		loader: loader,
	}
}
