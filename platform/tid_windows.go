//go:build windows

package platform

import "syscall"

var (
	kernel32          = syscall.NewLazyDLL("kernel32.dll")
	procCurrentThread = kernel32.NewProc("GetCurrentThreadId")
)

func currentThreadID() uint64 {
	id, _, _ := procCurrentThread.Call()
	return uint64(id)
}
