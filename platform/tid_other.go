//go:build !linux && !windows

package platform

// No portable thread identity here; 0 disables the owning-thread check
// and leaves thread discipline to the embedding host.
func currentThreadID() uint64 { return 0 }
