// Package terminal probes the writer the CLI prints to.
package terminal

import (
	"io"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultWidth is the width assumed when w is not a terminal.
const DefaultWidth = 50

// Fder is implemented by writers backed by a file descriptor.
type Fder interface {
	Fd() uintptr
}

//nolint:gochecknoglobals // Required for test mocking
var (
	// GetSize reports the width and height of a terminal descriptor.
	GetSize = term.GetSize

	// IsTTY reports whether a descriptor is a terminal.
	IsTTY = isatty.IsTerminal
)

// Size returns the dimensions of the terminal behind w.
// ok is false when w is not a terminal or either dimension is unknown.
func Size(w io.Writer) (width, height int, ok bool) {
	f, isFder := w.(Fder)
	if !isFder || !IsTTY(f.Fd()) {
		return 0, 0, false
	}

	//nolint:gosec // G115: file descriptors fit in int
	width, height, err := GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return 0, 0, false
	}

	return width, height, true
}

// Width returns the width of the terminal behind w, at most limit.
func Width(w io.Writer, limit int) int {
	width, _, ok := Size(w)
	if !ok {
		width = DefaultWidth
	}

	return min(width, limit)
}
