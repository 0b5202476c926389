//go:build !windows

package console

import (
	"errors"
	"fmt"
)

// SystemDevice returns a Device that always fails: only Windows consoles
// need virtual terminal processing switched on.
func SystemDevice() Device {
	return unsupported{}
}

type unsupported struct{}

func (unsupported) OpenOutput() (Handle, error) {
	return nil, fmt.Errorf("open console output: %w", errors.ErrUnsupported)
}
