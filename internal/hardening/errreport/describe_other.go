//go:build !windows

package errreport

import (
	"errors"
	"fmt"
)

// DescribeStatus is only available on Windows.
func DescribeStatus(code uint32) (string, error) {
	return "", fmt.Errorf("describe status %d: %w", code, errors.ErrUnsupported)
}
