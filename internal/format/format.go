package format

import (
	"strings"

	"github.com/sweeplab/sweepgrid/internal/sweep"
)

// Formatter turns one bound argument set into a string. Formatting either
// fully succeeds or fails before any output leaves the sink.
type Formatter interface {
	Format(inst *sweep.Instance) (string, error)
}

// ArgFormatter renders an instance the way the argparse module would read
// it back: "<name> <value>" pairs joined by a separator. The emitted name
// is the param's output override when set, otherwise "--" + key.
type ArgFormatter struct {
	// PairSep separates two rendered pairs.
	PairSep string
	// PairPrefix and PairSuffix wrap each rendered pair.
	PairPrefix string
	PairSuffix string
	// Values renders individual values.
	Values *ValueRenderer
}

// NewArgFormatter returns a formatter with the default configuration:
// pairs separated by single spaces, default value rendering.
func NewArgFormatter() *ArgFormatter {
	return &ArgFormatter{PairSep: " ", Values: NewValueRenderer()}
}

// Format implements Formatter.
func (f *ArgFormatter) Format(inst *sweep.Instance) (string, error) {
	parts := make([]string, 0, inst.Len())
	for _, b := range inst.Bindings() {
		name := b.Param.Output()
		if name == "" {
			name = "--" + b.Param.Key()
		}
		rendered, err := f.Values.Render(b.Value)
		if err != nil {
			return "", err
		}
		parts = append(parts, f.PairPrefix+name+" "+rendered+f.PairSuffix)
	}
	return strings.Join(parts, f.PairSep), nil
}
