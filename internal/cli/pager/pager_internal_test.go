package pager

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walles/moor/v2/pkg/moor"

	"github.com/mpyw/winharden/internal/cli/terminal"
)

type fdBuffer struct {
	bytes.Buffer
}

func (*fdBuffer) Fd() uintptr { return 1 }

// stubTerminal makes every descriptor a TTY of the given height and
// records what would have been paged.
func stubTerminal(t *testing.T, height int) *string {
	t.Helper()

	origIsTTY := terminal.IsTTY
	origGetSize := terminal.GetSize
	origPage := pageString

	t.Cleanup(func() {
		terminal.IsTTY = origIsTTY
		terminal.GetSize = origGetSize
		pageString = origPage
	})

	var paged string

	terminal.IsTTY = func(uintptr) bool { return true }
	terminal.GetSize = func(int) (int, int, error) { return 80, height, nil }
	pageString = func(text string, _ moor.Options) error {
		paged = text

		return nil
	}

	return &paged
}

func writeLines(n int) func(w io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, strings.Repeat("line\n", n))

		return err
	}
}

func TestWithPagerWriter_NoPager(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, WithPagerWriter(&buf, true, writeLines(3)))
	assert.Equal(t, 3, strings.Count(buf.String(), "line"))
}

func TestWithPagerWriter_NotFder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, WithPagerWriter(&buf, false, writeLines(100)))
	assert.Equal(t, 100, strings.Count(buf.String(), "line"))
}

//nolint:paralleltest // Test modifies package globals (IsTTY, GetSize, pageString)
func TestWithPagerWriter_FitsOnScreen(t *testing.T) {
	paged := stubTerminal(t, 24)

	out := &fdBuffer{}
	require.NoError(t, WithPagerWriter(out, false, writeLines(5)))

	assert.Equal(t, 5, strings.Count(out.String(), "line"))
	assert.Empty(t, *paged)
}

//nolint:paralleltest // Test modifies package globals (IsTTY, GetSize, pageString)
func TestWithPagerWriter_Pages(t *testing.T) {
	paged := stubTerminal(t, 10)

	out := &fdBuffer{}
	require.NoError(t, WithPagerWriter(out, false, writeLines(30)))

	assert.Empty(t, out.String())
	assert.Equal(t, 30, strings.Count(*paged, "line"))
}

//nolint:paralleltest // Test modifies package globals (IsTTY, GetSize, pageString)
func TestWithPagerWriter_PropagatesError(t *testing.T) {
	stubTerminal(t, 10)

	err := WithPagerWriter(&fdBuffer{}, false, func(io.Writer) error { return assert.AnError })
	require.ErrorIs(t, err, assert.AnError)
}

func TestLineCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, lineCount("a\nb\n"))
	assert.Equal(t, 2, lineCount("a\nb"))
	assert.Equal(t, 1, lineCount("a"))
}

//nolint:paralleltest // Test modifies package globals (IsTTY, GetSize, pageString)
func TestWithPagerWriter_OneLineShort(t *testing.T) {
	paged := stubTerminal(t, 3)

	out := &fdBuffer{}
	require.NoError(t, WithPagerWriter(out, false, writeLines(2)))
	assert.Empty(t, *paged)

	require.NoError(t, WithPagerWriter(out, false, writeLines(3)))
	assert.Equal(t, 3, strings.Count(*paged, "line"))
}
