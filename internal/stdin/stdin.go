package stdin

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// MaxPageSize bounds how much HTML is read from a pipe.
const MaxPageSize = 4 << 20

// ErrTooLarge indicates piped input exceeded the reader's limit.
var ErrTooLarge = errors.New("stdin input too large")

// ErrNotPiped indicates stdin is a terminal, so there is nothing to read.
var ErrNotPiped = errors.New("stdin is a terminal, pipe a page or pass a file")

// Reader reads piped documents from stdin.
type Reader struct {
	input io.Reader
	limit int64
}

// New creates a Reader over input that accepts at most limit bytes.
// Pass os.Stdin for normal operation.
func New(input io.Reader, limit int64) *Reader {
	return &Reader{input: input, limit: limit}
}

// IsPiped returns true if input is not a terminal.
func (r *Reader) IsPiped() bool {
	if f, ok := r.input.(*os.File); ok {
		return !term.IsTerminal(int(f.Fd()))
	}
	return true
}

// Read returns all piped content.
func (r *Reader) Read() ([]byte, error) {
	if !r.IsPiped() {
		return nil, ErrNotPiped
	}

	data, err := io.ReadAll(io.LimitReader(r.input, r.limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	if int64(len(data)) > r.limit {
		return nil, fmt.Errorf("%w (max %d bytes)", ErrTooLarge, r.limit)
	}
	return data, nil
}

// ReadPage reads a piped HTML page from os.Stdin.
func ReadPage() ([]byte, error) {
	return New(os.Stdin, MaxPageSize).Read()
}
