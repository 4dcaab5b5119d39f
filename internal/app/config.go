package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	// SweepPath points at a sweep .hcl file or a directory of them.
	SweepPath string

	// OutDir, when set, writes one script per command under this directory
	// instead of printing, overriding any scripts block in the sweep file.
	OutDir string
	// RunToken forces run-token guards on generated scripts.
	RunToken bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SweepPath == "" {
		return nil, errors.New("SweepPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
