//go:build windows

package errreport

import (
	"errors"

	"golang.org/x/sys/windows"
)

const (
	// langUserDefault is MAKELANGID(LANG_NEUTRAL, SUBLANG_DEFAULT).
	langUserDefault = 0x0400

	describeBufferSize = 512
	// FormatMessage output is limited to 64K bytes.
	maxDescribeBufferSize = 32 * 1024
)

//nolint:gochecknoglobals // Required for test mocking
var formatMessage = windows.FormatMessage

// DescribeStatus returns the system message for a Win32 status code.
// The buffer grows until the message fits.
func DescribeStatus(code uint32) (string, error) {
	for size := describeBufferSize; ; size *= 2 {
		buf := make([]uint16, size)

		n, err := formatMessage(
			windows.FORMAT_MESSAGE_FROM_SYSTEM|windows.FORMAT_MESSAGE_IGNORE_INSERTS,
			0,
			code,
			langUserDefault,
			buf,
			nil,
		)
		if err == nil {
			return windows.UTF16ToString(buf[:n]), nil
		}

		if !errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER) || size >= maxDescribeBufferSize {
			return "", err
		}
	}
}
