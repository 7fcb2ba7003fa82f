package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/evgfitil/docclip/internal/stdin"
)

const maxStdinSize = 64 * 1024 // 64KB

// ErrStdinTooLarge indicates piped input exceeds the size limit.
var ErrStdinTooLarge = errors.New("stdin input too large (max 64KB)")

// readStdin detects piped input and reads up to 64KB.
// Returns stdin.ErrNotPiped if stdin is a TTY.
func readStdin() (string, error) {
	return readFromReader(os.Stdin)
}

// readFromReader reads piped input from the given file descriptor.
// Content is returned untouched: trailing newlines matter to the formatter.
func readFromReader(f *os.File) (string, error) {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return "", stdin.ErrNotPiped
	}

	limited := io.LimitReader(f, int64(maxStdinSize)+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	if len(data) > maxStdinSize {
		return "", ErrStdinTooLarge
	}

	return string(data), nil
}
