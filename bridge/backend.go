// Package bridge exposes native windowing to the Rill runtime. A Bridge
// owns the windowing context and the window registry, serializes every
// operation behind one lock, and publishes the operations into a
// script.Table under their fixed names. The native layer itself is
// supplied as a Backend, so the core carries no GLFW dependency.
package bridge

// Backend is a native windowing implementation. ProcAddress and ValidKey
// are static properties of the implementation and must work before Open.
type Backend interface {
	// Open initializes the native subsystem and returns its live context.
	Open() (Context, error)

	// ProcAddress reports the address of the implementation's
	// symbol-resolver function, not a binding to any particular context.
	ProcAddress() uintptr

	// ValidKey reports whether code names a key the implementation can
	// query for state.
	ValidKey(code int64) bool
}

// Context is an initialized windowing subsystem. Implementations that are
// thread-affine return ErrWrongThread (wrapped) from the affected calls
// rather than corrupting native state.
type Context interface {
	// CreateWindow opens a windowed-mode native window with key-event
	// buffering enabled, makes its graphics context current on the
	// calling thread, and returns the window paired with the stream its
	// key events are delivered to.
	CreateWindow(width, height int, title string) (Window, *EventStream, error)

	// PollEvents pumps the platform event queue once, delivering buffered
	// key events to each window's stream.
	PollEvents() error

	// Time reports seconds on the backend's monotonic clock.
	Time() float64

	// Terminate releases the subsystem and every window it owns.
	Terminate() error
}

// Window is one live native window.
type Window interface {
	ShouldClose() bool
	SwapBuffers()
	KeyState(key int64) (Action, error)
}
