package app

import (
	"context"
	"fmt"

	"github.com/sweeplab/sweepgrid/internal/ctxlog"
	"github.com/sweeplab/sweepgrid/internal/hclspec"
	"github.com/sweeplab/sweepgrid/internal/sink"
)

// Run loads the sweep configuration, builds the sink, and streams every
// generated command into it.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.loader.Load(ctx, a.config.SweepPath)
	if err != nil {
		return fmt.Errorf("failed to load sweep configuration: %w", err)
	}
	a.logger.Debug("Sweep configuration loaded.")

	out, err := a.buildSink(model)
	if err != nil {
		return err
	}

	if err := out.Process(ctx, model.Spec); err != nil {
		return fmt.Errorf("sweep generation failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// buildSink selects the output sink: the scripts block (or the -out flag
// override) chooses the per-invocation file sink, otherwise commands stream
// to the output writer.
func (a *App) buildSink(model *hclspec.Model) (sink.Sink, error) {
	scripts := model.Scripts
	if a.config.OutDir != "" {
		if scripts == nil {
			scripts = &hclspec.ScriptsConfig{}
		}
		scripts.Dir = a.config.OutDir
	}

	if scripts == nil {
		return sink.NewStreamSink(a.outW, model.Formatter), nil
	}

	s, err := sink.NewScriptSink(scripts.Dir, model.Formatter)
	if err != nil {
		return nil, err
	}
	s.CreateRunToken = scripts.CreateRunToken || a.config.RunToken
	s.Prologue = scripts.Prologue
	s.Epilogue = scripts.Epilogue
	s.LinePrefix = scripts.LinePrefix
	s.LineSuffix = scripts.LineSuffix
	return s, nil
}
