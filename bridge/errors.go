package bridge

import "errors"

var (
	// ErrNotInitialized is returned by every context-dependent operation
	// until an init succeeds.
	ErrNotInitialized = errors.New("glfw: not initialized")

	// ErrBackendInit wraps a backend failure during init; the bridge is
	// left uninitialized.
	ErrBackendInit = errors.New("glfw: backend init failed")

	// ErrWindowCreation wraps a backend failure to open a window. It is
	// also returned, without a cause, for non-positive dimensions.
	ErrWindowCreation = errors.New("glfw: window creation failed")

	// ErrWrongThread is returned by thread-affine backends when a call
	// arrives off the thread that initialized them.
	ErrWrongThread = errors.New("glfw: call outside owning thread")
)

// ArgumentError reports a native call whose arguments do not fit the
// operation's signature: wrong count, wrong variant at a position, or a
// key code outside the backend's key set.
type ArgumentError struct {
	Op     string // operation name as published in the dispatch table
	Detail string
}

func (e *ArgumentError) Error() string {
	return e.Op + ": " + e.Detail
}
