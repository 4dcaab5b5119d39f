package sink

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sweeplab/sweepgrid/internal/ctxlog"
	"github.com/sweeplab/sweepgrid/internal/format"
	"github.com/sweeplab/sweepgrid/internal/sweep"
)

// ScriptSink writes one shell script per command into a directory. A common
// use is generating submission files for a computing cluster.
type ScriptSink struct {
	// Prologue and Epilogue are written at the start and end of each file.
	Prologue string
	Epilogue string
	// LinePrefix and LineSuffix wrap the command line inside each file.
	LinePrefix string
	LineSuffix string
	// CreateRunToken wraps the command in a guard that skips execution
	// while the companion token file exists, and touches the token after a
	// zero exit status. Re-running an entire batch then only executes the
	// commands that have not succeeded yet.
	CreateRunToken bool
	// NameFunc maps a formatted command to a file name. Defaults to the
	// SHA-1 of the command truncated to 14 hex characters plus ".sh".
	NameFunc func(cmd string) string

	dir       string
	formatter format.Formatter
}

// NewScriptSink returns a sink writing scripts under dir, creating the
// directory (and parents) if absent. A path that exists as a regular file
// is a validation error.
func NewScriptSink(dir string, f format.Formatter) (*ScriptSink, error) {
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		return nil, &sweep.ValidationError{Msg: fmt.Sprintf("script path %q is a file, has to be a directory", dir)}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create script directory: %w", err)
	}
	return &ScriptSink{dir: dir, formatter: f}, nil
}

// Process implements Sink.
func (s *ScriptSink) Process(ctx context.Context, spec *sweep.Spec) error {
	logger := ctxlog.FromContext(ctx)

	count := 0
	cur := spec.Open()
	for cur.Next() {
		if err := s.writeScript(cur.Instance()); err != nil {
			return err
		}
		count++
	}
	if err := cur.Err(); err != nil {
		return err
	}

	logger.Info("Scripts written.", "dir", s.dir, "count", count)
	return nil
}

func (s *ScriptSink) writeScript(inst *sweep.Instance) error {
	cmd, err := s.formatter.Format(inst)
	if err != nil {
		return err
	}
	name := s.fileName(cmd)
	line := s.LinePrefix + cmd + s.LineSuffix

	if s.CreateRunToken {
		tokenPath, err := filepath.Abs(filepath.Join(s.dir, name+".token"))
		if err != nil {
			return fmt.Errorf("failed to resolve token path: %w", err)
		}
		line = wrapRunToken(line, tokenPath)
	}

	content := s.Prologue + "\n" + line + "\n" + s.Epilogue
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		return fmt.Errorf("failed to write script %s: %w", path, err)
	}
	return nil
}

func (s *ScriptSink) fileName(cmd string) string {
	if s.NameFunc != nil {
		return s.NameFunc(cmd)
	}
	sum := sha1.Sum([]byte(cmd))
	return hex.EncodeToString(sum[:])[:14] + ".sh"
}

// wrapRunToken guards line so it only runs while tokenPath does not exist,
// and records success by touching the token.
func wrapRunToken(line, tokenPath string) string {
	const tpl = `if [ ! -f %[1]s ]; then

%[2]s

    if [ $? -eq 0 ]; then
        touch %[1]s
    fi
fi`
	return fmt.Sprintf(tpl, tokenPath, line)
}
