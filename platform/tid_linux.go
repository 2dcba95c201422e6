//go:build linux

package platform

import "syscall"

func currentThreadID() uint64 { return uint64(syscall.Gettid()) }
