//go:build !windows

package mitigation

import (
	"errors"
	"fmt"
)

// ProcessSetter returns a Setter that always fails: process mitigation
// policies exist only on Windows.
func ProcessSetter() Setter {
	return unsupported{}
}

type unsupported struct{}

func (unsupported) SetPolicy(p Policy) error {
	return fmt.Errorf("%s: %w", p.Label(), errors.ErrUnsupported)
}
