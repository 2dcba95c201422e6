// Package platform implements the bridge contracts on go-gl's GLFW
// bindings.
package platform

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/rill-lang/rill-glfw/bridge"
)

// GLFW is the native windowing backend. The zero value is ready to use;
// GLFW itself is process-global, so only one context can be live at a
// time and Open fails while another one is.
type GLFW struct{}

var (
	mu   sync.Mutex
	live *session
)

// Open initializes GLFW on the calling goroutine, which gets locked to
// its OS thread for the life of the context. Thread-affine calls made
// from anywhere else return bridge.ErrWrongThread instead of reaching
// the native layer.
func (GLFW) Open() (bridge.Context, error) {
	mu.Lock()
	defer mu.Unlock()
	if live != nil {
		return nil, fmt.Errorf("glfw already initialized in this process")
	}

	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	live = &session{tid: currentThreadID()}
	return live, nil
}

// session is one initialized run of the GLFW library.
type session struct {
	tid uint64 // owning OS thread, 0 when thread identity is unavailable
}

func (s *session) check(op string) error {
	if s.tid == 0 {
		return nil
	}
	if currentThreadID() != s.tid {
		return fmt.Errorf("%s: %w", op, bridge.ErrWrongThread)
	}
	return nil
}

func (s *session) CreateWindow(width, height int, title string) (bridge.Window, *bridge.EventStream, error) {
	if err := s.check("create window"); err != nil {
		return nil, nil, err
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	win.MakeContextCurrent()

	events := &bridge.EventStream{}
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		events.Push(bridge.KeyEvent{
			Key:      int64(key),
			Scancode: scancode,
			Action:   translateAction(action),
			Mods:     int(mods),
		})
	})

	return &window{w: win, owner: s}, events, nil
}

func (s *session) PollEvents() error {
	if err := s.check("poll events"); err != nil {
		return err
	}
	glfw.PollEvents()
	return nil
}

func (s *session) Time() float64 { return glfw.GetTime() }

func (s *session) Terminate() error {
	if err := s.check("terminate"); err != nil {
		return err
	}
	glfw.Terminate()
	runtime.UnlockOSThread()
	mu.Lock()
	live = nil
	mu.Unlock()
	return nil
}

// window wraps one glfw window for the bridge.
type window struct {
	w     *glfw.Window
	owner *session
}

func (w *window) ShouldClose() bool { return w.w.ShouldClose() }

func (w *window) SwapBuffers() { w.w.SwapBuffers() }

func (w *window) KeyState(key int64) (bridge.Action, error) {
	if err := w.owner.check("get key"); err != nil {
		return bridge.Release, err
	}
	return translateAction(w.w.GetKey(glfw.Key(key))), nil
}

func translateAction(a glfw.Action) bridge.Action {
	switch a {
	case glfw.Press:
		return bridge.Press
	case glfw.Repeat:
		return bridge.Repeat
	default:
		return bridge.Release
	}
}
