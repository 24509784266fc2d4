//go:build !windows

package wallet

import (
	"golang.org/x/sys/unix"
)

// lockMemory attempts to pin the region containing sensitive data so it
// is never swapped to disk. Best effort: failure is not fatal.
func lockMemory(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return unix.Mlock(data) == nil
}

// unlockMemory releases a previously locked region.
func unlockMemory(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Munlock(data)
}
