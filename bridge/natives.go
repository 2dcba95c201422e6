package bridge

import (
	"fmt"
	"strings"

	"github.com/rill-lang/rill-glfw/script"
)

// Operation names as the scripting side sees them. The set is fixed:
// Register publishes these eight and nothing else.
const (
	opInit        = "glfw_init"
	opCreate      = "glfw_create_window"
	opShouldClose = "glfw_window_should_close"
	opPoll        = "glfw_poll_events"
	opSwap        = "glfw_swap_buffers"
	opProcAddress = "glfw_get_proc_address"
	opGetKey      = "glfw_get_key"
	opGetTime     = "glfw_get_time"
)

// Register installs the windowing operations into tbl. Each entry is a
// thin adapter: it checks arity and argument variants, producing
// ArgumentError on mismatch, then calls the typed operation. Existing
// entries under the same names are replaced.
func (b *Bridge) Register(tbl script.Table) {
	tbl[opInit] = func(args []script.Value) (script.Value, error) {
		if err := wantArgs(opInit, args); err != nil {
			return script.Null, err
		}
		if err := b.Init(); err != nil {
			return script.Null, err
		}
		return script.Bool(true), nil
	}

	tbl[opCreate] = func(args []script.Value) (script.Value, error) {
		if err := wantArgs(opCreate, args, "width", "height", "title"); err != nil {
			return script.Null, err
		}
		width, err := intArg(opCreate, args, 0, "width")
		if err != nil {
			return script.Null, err
		}
		height, err := intArg(opCreate, args, 1, "height")
		if err != nil {
			return script.Null, err
		}
		title, err := strArg(opCreate, args, 2, "title")
		if err != nil {
			return script.Null, err
		}
		handle, err := b.CreateWindow(int(width), int(height), title)
		if err != nil {
			return script.Null, err
		}
		return script.Int(handle), nil
	}

	tbl[opShouldClose] = func(args []script.Value) (script.Value, error) {
		if err := wantArgs(opShouldClose, args, "window_id"); err != nil {
			return script.Null, err
		}
		handle, err := intArg(opShouldClose, args, 0, "window_id")
		if err != nil {
			return script.Null, err
		}
		closing, err := b.ShouldClose(handle)
		if err != nil {
			return script.Null, err
		}
		return script.Bool(closing), nil
	}

	tbl[opPoll] = func(args []script.Value) (script.Value, error) {
		if err := wantArgs(opPoll, args); err != nil {
			return script.Null, err
		}
		if err := b.PollEvents(); err != nil {
			return script.Null, err
		}
		return script.Null, nil
	}

	tbl[opSwap] = func(args []script.Value) (script.Value, error) {
		if err := wantArgs(opSwap, args, "window_id"); err != nil {
			return script.Null, err
		}
		handle, err := intArg(opSwap, args, 0, "window_id")
		if err != nil {
			return script.Null, err
		}
		if err := b.SwapBuffers(handle); err != nil {
			return script.Null, err
		}
		return script.Null, nil
	}

	tbl[opProcAddress] = func(args []script.Value) (script.Value, error) {
		if err := wantArgs(opProcAddress, args); err != nil {
			return script.Null, err
		}
		return script.Int(int64(b.ProcAddress())), nil
	}

	tbl[opGetKey] = func(args []script.Value) (script.Value, error) {
		if err := wantArgs(opGetKey, args, "window_id", "key_code"); err != nil {
			return script.Null, err
		}
		handle, err := intArg(opGetKey, args, 0, "window_id")
		if err != nil {
			return script.Null, err
		}
		key, err := intArg(opGetKey, args, 1, "key_code")
		if err != nil {
			return script.Null, err
		}
		down, err := b.GetKey(handle, key)
		if err != nil {
			return script.Null, err
		}
		return script.Bool(down), nil
	}

	tbl[opGetTime] = func(args []script.Value) (script.Value, error) {
		if err := wantArgs(opGetTime, args); err != nil {
			return script.Null, err
		}
		t, err := b.Time()
		if err != nil {
			return script.Null, err
		}
		return script.Float(t), nil
	}
}

// wantArgs checks the argument count against the parameter names.
func wantArgs(op string, args []script.Value, names ...string) error {
	if len(args) == len(names) {
		return nil
	}
	if len(names) == 0 {
		return &ArgumentError{Op: op, Detail: fmt.Sprintf("want no args, got %d", len(args))}
	}
	return &ArgumentError{
		Op:     op,
		Detail: fmt.Sprintf("want %d args (%s), got %d", len(names), strings.Join(names, ", "), len(args)),
	}
}

func intArg(op string, args []script.Value, i int, name string) (int64, error) {
	n, err := args[i].AsInt()
	if err != nil {
		return 0, &ArgumentError{Op: op, Detail: fmt.Sprintf("%s: %v", name, err)}
	}
	return n, nil
}

func strArg(op string, args []script.Value, i int, name string) (string, error) {
	s, err := args[i].AsStr()
	if err != nil {
		return "", &ArgumentError{Op: op, Detail: fmt.Sprintf("%s: %v", name, err)}
	}
	return s, nil
}
