//go:build windows

package wallet

// Memory locking is not implemented on Windows; VirtualLock has enough
// sharp edges (working set quotas) that best-effort is worse than none.
func lockMemory([]byte) bool { return false }

func unlockMemory([]byte) {}
