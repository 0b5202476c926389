//go:build windows

package errormode

import (
	"golang.org/x/sys/windows"
)

func platformSetErrorMode(mode uint32) uint32 {
	return windows.SetErrorMode(mode)
}
