package sink

import (
	"context"
	"fmt"
	"io"

	"github.com/sweeplab/sweepgrid/internal/ctxlog"
	"github.com/sweeplab/sweepgrid/internal/format"
	"github.com/sweeplab/sweepgrid/internal/sweep"
)

// StreamSink writes each formatted command as one line to a writer.
type StreamSink struct {
	// Prefix and Suffix wrap each emitted line.
	Prefix string
	Suffix string

	w         io.Writer
	formatter format.Formatter
}

// NewStreamSink returns a sink writing to w with a trailing newline per
// command.
func NewStreamSink(w io.Writer, f format.Formatter) *StreamSink {
	return &StreamSink{Suffix: "\n", w: w, formatter: f}
}

// Process implements Sink.
func (s *StreamSink) Process(ctx context.Context, spec *sweep.Spec) error {
	logger := ctxlog.FromContext(ctx)

	count := 0
	cur := spec.Open()
	for cur.Next() {
		line, err := s.formatter.Format(cur.Instance())
		if err != nil {
			return err
		}
		if _, err := io.WriteString(s.w, s.Prefix+line+s.Suffix); err != nil {
			return fmt.Errorf("failed to write command line: %w", err)
		}
		count++
	}
	if err := cur.Err(); err != nil {
		return err
	}

	logger.Debug("Stream sink finished.", "commands", count)
	return nil
}
