//go:build !windows

package errormode

// platformSetErrorMode is a no-op: error dialogs are a Windows concern.
func platformSetErrorMode(uint32) uint32 {
	return 0
}
