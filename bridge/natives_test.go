package bridge

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/rill-lang/rill-glfw/script"
)

func registerTestTable(t *testing.T) (script.Table, *fakeBackend) {
	t.Helper()
	b, fb := newTestBridge(t)
	tbl := script.Table{}
	b.Register(tbl)
	return tbl, fb
}

func callOK(t *testing.T, tbl script.Table, name string, args ...script.Value) script.Value {
	t.Helper()
	v, err := tbl.Call(name, args...)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return v
}

func TestRegisterPublishesExactlyEightOps(t *testing.T) {
	tbl, _ := registerTestTable(t)

	want := []string{
		"glfw_create_window",
		"glfw_get_key",
		"glfw_get_proc_address",
		"glfw_get_time",
		"glfw_init",
		"glfw_poll_events",
		"glfw_swap_buffers",
		"glfw_window_should_close",
	}
	got := make([]string, 0, len(tbl))
	for name := range tbl {
		got = append(got, name)
	}
	sort.Strings(got)

	if len(got) != len(want) {
		t.Fatalf("registered ops: want %d, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("registered ops: want %v, got %v", want, got)
		}
	}
}

func TestRegisterReplacesExistingEntries(t *testing.T) {
	b, _ := newTestBridge(t)
	tbl := script.Table{}
	tbl["glfw_init"] = func([]script.Value) (script.Value, error) {
		return script.Str("stale"), nil
	}
	b.Register(tbl)

	v := callOK(t, tbl, "glfw_init")
	if ok, _ := v.AsBool(); !ok {
		t.Fatalf("glfw_init after Register: want true, got %s", v)
	}
}

func TestTableScenario(t *testing.T) {
	tbl, _ := registerTestTable(t)

	if v := callOK(t, tbl, "glfw_init"); v.Tag != script.TagBool {
		t.Fatalf("glfw_init: want bool, got %s", v)
	}

	first := callOK(t, tbl, "glfw_create_window", script.Int(800), script.Int(600), script.Str("Test"))
	if h, _ := first.AsInt(); h != 1 {
		t.Fatalf("first window: want handle 1, got %s", first)
	}
	second := callOK(t, tbl, "glfw_create_window", script.Int(320), script.Int(240), script.Str("Test2"))
	if h, _ := second.AsInt(); h != 2 {
		t.Fatalf("second window: want handle 2, got %s", second)
	}

	if closing, _ := callOK(t, tbl, "glfw_window_should_close", first).AsBool(); closing {
		t.Fatal("live window reports closing")
	}
	if closing, _ := callOK(t, tbl, "glfw_window_should_close", script.Int(99)).AsBool(); !closing {
		t.Fatal("unknown handle reports open")
	}

	if v := callOK(t, tbl, "glfw_poll_events"); v.Tag != script.TagNull {
		t.Fatalf("glfw_poll_events: want null, got %s", v)
	}
	if v := callOK(t, tbl, "glfw_swap_buffers", first); v.Tag != script.TagNull {
		t.Fatalf("glfw_swap_buffers: want null, got %s", v)
	}
	if v := callOK(t, tbl, "glfw_get_time"); v.Tag != script.TagFloat {
		t.Fatalf("glfw_get_time: want float, got %s", v)
	}
	if down, _ := callOK(t, tbl, "glfw_get_key", first, script.Int(32)).AsBool(); down {
		t.Fatal("idle key reports held")
	}
}

func TestProcAddressThroughTable(t *testing.T) {
	tbl, fb := registerTestTable(t)

	// No init on purpose: the resolver address is context free.
	v := callOK(t, tbl, "glfw_get_proc_address")
	if addr, _ := v.AsInt(); uintptr(addr) != fb.addr {
		t.Fatalf("glfw_get_proc_address: want %#x, got %s", fb.addr, v)
	}
}

func TestErrorsCrossTheTableIntact(t *testing.T) {
	tbl, _ := registerTestTable(t)

	v, err := tbl.Call("glfw_window_should_close", script.Int(1))
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("want ErrNotInitialized, got %v", err)
	}
	if v.Tag != script.TagNull {
		t.Fatalf("failed call result: want null, got %s", v)
	}
}

func TestAdapterArity(t *testing.T) {
	tbl, _ := registerTestTable(t)
	callOK(t, tbl, "glfw_init")

	cases := []struct {
		op   string
		args []script.Value
	}{
		{"glfw_init", []script.Value{script.Int(1)}},
		{"glfw_create_window", []script.Value{script.Int(800), script.Int(600)}},
		{"glfw_create_window", []script.Value{}},
		{"glfw_window_should_close", []script.Value{}},
		{"glfw_poll_events", []script.Value{script.Null}},
		{"glfw_swap_buffers", []script.Value{script.Int(1), script.Int(2)}},
		{"glfw_get_proc_address", []script.Value{script.Int(0)}},
		{"glfw_get_key", []script.Value{script.Int(1)}},
		{"glfw_get_time", []script.Value{script.Float(0)}},
	}
	for _, tc := range cases {
		_, err := tbl.Call(tc.op, tc.args...)
		var ae *ArgumentError
		if !errors.As(err, &ae) {
			t.Fatalf("%s with %d args: want ArgumentError, got %v", tc.op, len(tc.args), err)
		}
		if ae.Op != tc.op {
			t.Fatalf("ArgumentError.Op: want %q, got %q", tc.op, ae.Op)
		}
	}
}

func TestAdapterVariants(t *testing.T) {
	tbl, _ := registerTestTable(t)
	callOK(t, tbl, "glfw_init")

	cases := []struct {
		name   string
		op     string
		args   []script.Value
		detail string
	}{
		{"string width", "glfw_create_window", []script.Value{script.Str("800"), script.Int(600), script.Str("t")}, "width"},
		{"float height", "glfw_create_window", []script.Value{script.Int(800), script.Float(600), script.Str("t")}, "height"},
		{"int title", "glfw_create_window", []script.Value{script.Int(800), script.Int(600), script.Int(7)}, "title"},
		{"bool handle", "glfw_window_should_close", []script.Value{script.Bool(true)}, "window_id"},
		{"null handle", "glfw_swap_buffers", []script.Value{script.Null}, "window_id"},
		{"float key", "glfw_get_key", []script.Value{script.Int(1), script.Float(32)}, "key_code"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tbl.Call(tc.op, tc.args...)
			var ae *ArgumentError
			if !errors.As(err, &ae) {
				t.Fatalf("want ArgumentError, got %v", err)
			}
			if !strings.Contains(ae.Detail, tc.detail) {
				t.Fatalf("detail %q does not name %q", ae.Detail, tc.detail)
			}
		})
	}
}

func TestInvalidKeyCodeThroughTable(t *testing.T) {
	tbl, _ := registerTestTable(t)
	callOK(t, tbl, "glfw_init")
	h := callOK(t, tbl, "glfw_create_window", script.Int(640), script.Int(480), script.Str("w"))

	_, err := tbl.Call("glfw_get_key", h, script.Int(9999))
	var ae *ArgumentError
	if !errors.As(err, &ae) {
		t.Fatalf("want ArgumentError, got %v", err)
	}
}

func TestCreateFailureSurfacesThroughTable(t *testing.T) {
	tbl, fb := registerTestTable(t)
	callOK(t, tbl, "glfw_init")
	fb.ctx.createErr = errors.New("no display")

	v, err := tbl.Call("glfw_create_window", script.Int(640), script.Int(480), script.Str("w"))
	if !errors.Is(err, ErrWindowCreation) {
		t.Fatalf("want ErrWindowCreation, got %v", err)
	}
	if v.Tag != script.TagNull {
		t.Fatalf("failed create result: want null, got %s", v)
	}
}
