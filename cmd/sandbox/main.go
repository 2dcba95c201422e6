// Command sandbox opens a window and runs a minimal render loop, using
// the bridge exactly the way a script would: every windowing call goes
// through the dispatch table by its published name. The GL work itself
// stays on the host side, since the table's graphics surface is the
// proc-address integer and the buffer swap.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/rill-lang/rill-glfw/bridge"
	"github.com/rill-lang/rill-glfw/platform"
	"github.com/rill-lang/rill-glfw/script"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "sandbox.yaml", "demo config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}
	if err := run(cfg, log); err != nil {
		log.Error("sandbox exit", "err", err)
		os.Exit(1)
	}
}

func run(cfg Config, log *slog.Logger) error {
	b := bridge.New(platform.GLFW{})
	tbl := script.Table{}
	b.Register(tbl)

	if _, err := call(tbl, "glfw_init"); err != nil {
		return err
	}
	defer b.Shutdown()

	handle, err := callInt(tbl, "glfw_create_window",
		script.Int(int64(cfg.Width)), script.Int(int64(cfg.Height)), script.Str(cfg.Title))
	if err != nil {
		return err
	}

	addr, err := callInt(tbl, "glfw_get_proc_address")
	if err != nil {
		return err
	}
	log.Info("GL loader ready", "proc_address", fmt.Sprintf("%#x", addr))

	rend, err := newRenderer()
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	var (
		base = palette[cfg.ClearColor]
		win  = script.Int(handle)
		esc  = script.Int(int64(glfw.KeyEscape))
	)
	for {
		closing, err := callBool(tbl, "glfw_window_should_close", win)
		if err != nil {
			return err
		}
		if closing {
			break
		}

		if _, err := call(tbl, "glfw_poll_events"); err != nil {
			return err
		}
		down, err := callBool(tbl, "glfw_get_key", win, esc)
		if err != nil {
			return err
		}
		if down {
			log.Info("escape pressed, closing")
			break
		}

		now, err := callFloat(tbl, "glfw_get_time")
		if err != nil {
			return err
		}

		c := base
		if cfg.Pulse {
			// Breathe the clear color so the clock query shows on screen.
			k := float32(0.75 + 0.25*math.Sin(0.5*math.Pi*now))
			c = [4]float32{base[0] * k, base[1] * k, base[2] * k, base[3]}
		}
		rend.Clear(c[0], c[1], c[2], c[3])
		if cfg.Triangle {
			rend.DrawTriangle()
		}

		if _, err := call(tbl, "glfw_swap_buffers", win); err != nil {
			return err
		}

		if cfg.MaxSeconds > 0 && now >= cfg.MaxSeconds {
			log.Info("demo time up", "seconds", now)
			break
		}
	}
	return nil
}

// call invokes a dispatch-table operation by its published name, the
// way the scripting side would.
func call(tbl script.Table, name string, args ...script.Value) (script.Value, error) {
	v, err := tbl.Call(name, args...)
	if err != nil {
		return script.Null, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func callBool(tbl script.Table, name string, args ...script.Value) (bool, error) {
	v, err := call(tbl, name, args...)
	if err != nil {
		return false, err
	}
	b, err := v.AsBool()
	if err != nil {
		return false, fmt.Errorf("%s result: %w", name, err)
	}
	return b, nil
}

func callInt(tbl script.Table, name string, args ...script.Value) (int64, error) {
	v, err := call(tbl, name, args...)
	if err != nil {
		return 0, err
	}
	n, err := v.AsInt()
	if err != nil {
		return 0, fmt.Errorf("%s result: %w", name, err)
	}
	return n, nil
}

func callFloat(tbl script.Table, name string, args ...script.Value) (float64, error) {
	v, err := call(tbl, name, args...)
	if err != nil {
		return 0, err
	}
	f, err := v.AsFloat()
	if err != nil {
		return 0, fmt.Errorf("%s result: %w", name, err)
	}
	return f, nil
}
