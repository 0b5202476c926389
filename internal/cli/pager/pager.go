// Package pager shows long listings through a terminal pager.
package pager

import (
	"bytes"
	"io"
	"strings"

	"github.com/walles/moor/v2/pkg/moor"

	"github.com/mpyw/winharden/internal/cli/terminal"
)

//nolint:gochecknoglobals // Required for test mocking
var pageString = moor.PageFromString

// WithPagerWriter runs fn against stdout, or against a buffer that is then
// shown through moor when it is taller than the terminal.
// Without a terminal, or with noPager set, fn writes to stdout directly.
func WithPagerWriter(stdout io.Writer, noPager bool, fn func(w io.Writer) error) error {
	if noPager {
		return fn(stdout)
	}

	_, height, ok := terminal.Size(stdout)
	if !ok {
		return fn(stdout)
	}

	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}

	switch text := buf.String(); {
	case text == "":
		return nil
	case lineCount(text) < height:
		_, err := io.WriteString(stdout, text)

		return err
	default:
		return pageString(text, moor.Options{})
	}
}

// lineCount counts rendered lines, ignoring terminal wrapping.
func lineCount(text string) int {
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}

	return n
}
