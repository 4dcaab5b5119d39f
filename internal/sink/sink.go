package sink

import (
	"context"

	"github.com/sweeplab/sweepgrid/internal/sweep"
)

// Sink consumes every instance a specification enumerates. A sink failure
// aborts its remaining work but never corrupts the specification, which
// stays fully re-iterable.
type Sink interface {
	Process(ctx context.Context, spec *sweep.Spec) error
}
