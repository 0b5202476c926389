package errormode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

//nolint:paralleltest // Test modifies package globals (setErrorMode)
func TestSuppress(t *testing.T) {
	orig := setErrorMode

	defer func() { setErrorMode = orig }()

	var got []uint32

	setErrorMode = func(mode uint32) uint32 {
		got = append(got, mode)

		return FailCriticalErrors
	}

	assert.Equal(t, FailCriticalErrors, Suppress())
	assert.Equal(t, []uint32{0x8003}, got)
}

func TestQuiet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(0x8003), Quiet)
}
