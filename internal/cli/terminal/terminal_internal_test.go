package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fdBuffer struct {
	bytes.Buffer
}

func (*fdBuffer) Fd() uintptr { return 1 }

func stubTerminal(t *testing.T, tty bool, width, height int, err error) {
	t.Helper()

	origIsTTY, origGetSize := IsTTY, GetSize

	t.Cleanup(func() {
		IsTTY, GetSize = origIsTTY, origGetSize
	})

	IsTTY = func(uintptr) bool { return tty }
	GetSize = func(int) (int, int, error) { return width, height, err }
}

//nolint:paralleltest // Test modifies package globals (IsTTY, GetSize)
func TestSize(t *testing.T) {
	tests := []struct {
		name       string
		tty        bool
		width      int
		height     int
		err        error
		wantWidth  int
		wantHeight int
		wantOK     bool
	}{
		{name: "terminal", tty: true, width: 72, height: 40, wantWidth: 72, wantHeight: 40, wantOK: true},
		{name: "not a terminal", tty: false, width: 72, height: 40},
		{name: "size error", tty: true, err: assert.AnError},
		{name: "zero width", tty: true, width: 0, height: 40},
		{name: "zero height", tty: true, width: 72, height: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubTerminal(t, tt.tty, tt.width, tt.height, tt.err)

			width, height, ok := Size(&fdBuffer{})
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantWidth, width)
			assert.Equal(t, tt.wantHeight, height)
		})
	}
}

func TestSize_NonFder(t *testing.T) {
	t.Parallel()

	_, _, ok := Size(&bytes.Buffer{})
	assert.False(t, ok)
}

//nolint:paralleltest // Test modifies package globals (IsTTY, GetSize)
func TestWidth(t *testing.T) {
	t.Run("terminal narrower than limit", func(t *testing.T) {
		stubTerminal(t, true, 72, 40, nil)
		assert.Equal(t, 72, Width(&fdBuffer{}, 100))
	})

	t.Run("capped at limit", func(t *testing.T) {
		stubTerminal(t, true, 120, 40, nil)
		assert.Equal(t, 80, Width(&fdBuffer{}, 80))
	})

	t.Run("default when not a terminal", func(t *testing.T) {
		stubTerminal(t, false, 0, 0, nil)
		assert.Equal(t, DefaultWidth, Width(&fdBuffer{}, 100))
		assert.Equal(t, 20, Width(&fdBuffer{}, 20))
	})
}
