package bridge

import (
	"fmt"
	"log/slog"
	"sync"
)

// Bridge owns the windowing context, the handle registry, and the handle
// counter. One mutex serializes every operation; nothing is shared with
// the caller except opaque handles.
//
// Handles start at 1, grow strictly, and are never reused for the life
// of the Bridge. The counter deliberately survives re-initialization and
// Shutdown, so a handle observed once can never later name a different
// window.
type Bridge struct {
	backend Backend

	mu      sync.Mutex
	log     *slog.Logger
	ctx     Context
	windows map[int64]*windowEntry
	nextID  int64
}

// windowEntry pairs a window with the stream its key events arrive on.
// The two are created together by the backend and retire together.
type windowEntry struct {
	win    Window
	events *EventStream
}

// New returns a Bridge over backend. The bridge starts uninitialized;
// Init (or the registered glfw_init) opens the backend.
func New(backend Backend) *Bridge {
	if backend == nil {
		panic("bridge: nil backend")
	}
	return &Bridge{
		backend: backend,
		log:     slog.Default(),
		windows: make(map[int64]*windowEntry),
		nextID:  1,
	}
}

// Init opens the native backend. Calling it on an initialized bridge
// first terminates the previous context, which releases every native
// window and empties the registry; stale handles then take the unknown
// handle paths. If the backend cannot be reopened the bridge is left
// uninitialized.
func (b *Bridge) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctx != nil {
		if n := len(b.windows); n > 0 {
			b.log.Warn("glfw re-init, releasing windows", "count", n)
		}
		if err := b.ctx.Terminate(); err != nil {
			return fmt.Errorf("%w: releasing previous context: %w", ErrBackendInit, err)
		}
		b.ctx = nil
		clear(b.windows)
	}

	ctx, err := b.backend.Open()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendInit, err)
	}
	b.ctx = ctx
	b.log.Info("glfw initialized")
	return nil
}

// Shutdown terminates the context and empties the registry. It is a
// no-op on an uninitialized bridge. The handle counter is not reset.
func (b *Bridge) Shutdown() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctx == nil {
		return nil
	}
	if err := b.ctx.Terminate(); err != nil {
		return err
	}
	b.ctx = nil
	clear(b.windows)
	return nil
}

// CreateWindow opens a window and returns its handle. The new window's
// graphics context is current on the calling thread when this returns.
func (b *Bridge) CreateWindow(width, height int, title string) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctx == nil {
		return 0, ErrNotInitialized
	}
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: size %dx%d", ErrWindowCreation, width, height)
	}

	win, events, err := b.ctx.CreateWindow(width, height, title)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}

	id := b.nextID
	b.nextID++
	b.windows[id] = &windowEntry{win: win, events: events}
	b.log.Info("window created", "handle", id, "width", width, "height", height, "title", title)
	return id, nil
}

// ShouldClose reports the close flag of handle. Unknown handles read as
// closed, so a host loop keyed on a stale handle terminates instead of
// spinning.
func (b *Bridge) ShouldClose(handle int64) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctx == nil {
		return false, ErrNotInitialized
	}
	e, ok := b.windows[handle]
	if !ok {
		return true, nil
	}
	return e.win.ShouldClose(), nil
}

// SwapBuffers presents handle's back buffer. Unknown handles are a
// silent no-op.
func (b *Bridge) SwapBuffers(handle int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctx == nil {
		return ErrNotInitialized
	}
	e, ok := b.windows[handle]
	if !ok {
		return nil
	}
	e.win.SwapBuffers()
	return nil
}

// PollEvents pumps the platform event queue once.
func (b *Bridge) PollEvents() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctx == nil {
		return ErrNotInitialized
	}
	return b.ctx.PollEvents()
}

// GetKey reports whether key is held down (pressed or repeating) in
// handle's window. The key code is checked against the backend's key set
// before anything else is consulted; unknown handles read as not held.
func (b *Bridge) GetKey(handle, key int64) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctx == nil {
		return false, ErrNotInitialized
	}
	if !b.backend.ValidKey(key) {
		return false, &ArgumentError{Op: opGetKey, Detail: fmt.Sprintf("key code %d is not a known key", key)}
	}
	e, ok := b.windows[handle]
	if !ok {
		return false, nil
	}
	st, err := e.win.KeyState(key)
	if err != nil {
		return false, err
	}
	return st == Press || st == Repeat, nil
}

// Time reports seconds on the backend's monotonic clock.
func (b *Bridge) Time() (float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctx == nil {
		return 0, ErrNotInitialized
	}
	return b.ctx.Time(), nil
}

// ProcAddress returns the address of the backend's symbol-resolver
// function. It does not require init; the address is a property of the
// linked implementation, not of a context.
func (b *Bridge) ProcAddress() uintptr {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.backend.ProcAddress()
}

// Events returns the key-event stream of handle, or nil for unknown
// handles. Hosts that consume buffered input drain it after each poll.
func (b *Bridge) Events(handle int64) *EventStream {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.windows[handle]
	if !ok {
		return nil
	}
	return e.events
}
