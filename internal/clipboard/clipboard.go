package clipboard

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

const (
	BackendAuto   = "auto"
	BackendSystem = "system"
	BackendOSC52  = "osc52"
)

// ErrUnknownBackend indicates a backend name New does not recognize.
var ErrUnknownBackend = errors.New("unknown clipboard backend")

// Writer places plain text on a clipboard.
type Writer interface {
	WriteText(text string) error
	Supported() bool
}

// System writes to the operating system clipboard.
type System struct{}

// WriteText copies text to the system clipboard.
func (System) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard copy failed: %w", err)
	}
	return nil
}

// Supported reports whether a system clipboard utility is available.
func (System) Supported() bool {
	return !clipboard.Unsupported
}

// New returns the Writer for backend. Auto prefers the system clipboard and
// falls back to OSC 52 on out.
func New(backend string, out io.Writer) (Writer, error) {
	switch backend {
	case BackendSystem:
		return System{}, nil
	case BackendOSC52:
		return NewOSC52(out), nil
	case BackendAuto, "":
		if (System{}).Supported() {
			return System{}, nil
		}
		return NewOSC52(out), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: auto, system, osc52)", ErrUnknownBackend, backend)
	}
}
