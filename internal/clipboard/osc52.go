package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"
)

// OSC52 copies through the terminal using the OSC 52 escape sequence, which
// also works over SSH.
type OSC52 struct {
	out io.Writer
	// Force skips the terminal check in Supported.
	Force bool
	getenv func(string) string
}

// NewOSC52 returns an OSC52 writer emitting to out.
func NewOSC52(out io.Writer) *OSC52 {
	return &OSC52{out: out, getenv: os.Getenv}
}

// WriteText emits the sequence, wrapped for tmux or screen when running
// inside one.
func (o *OSC52) WriteText(text string) error {
	seq := osc52.New(text)
	switch {
	case o.getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(o.getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	if _, err := fmt.Fprint(o.out, seq); err != nil {
		return fmt.Errorf("osc52 copy failed: %w", err)
	}
	return nil
}

// Supported reports whether out is a terminal.
func (o *OSC52) Supported() bool {
	if o.Force {
		return true
	}
	f, ok := o.out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
