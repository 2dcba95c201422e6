// Command console is an interactive shell over the dispatch table: type
// an operation by its published name with literal arguments and see the
// value or error the scripting side would. Handy for smoke-testing a
// GLFW build without a script runtime attached.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/rill-lang/rill-glfw/bridge"
	"github.com/rill-lang/rill-glfw/platform"
	"github.com/rill-lang/rill-glfw/script"
)

const (
	historyFile = ".rill_glfw_history"
	prompt      = "glfw> "
	banner      = "rill-glfw console — Ctrl+C clears the line, Ctrl+D exits. Type :help for commands."
	helpText    = `
Call an operation by name with literal arguments:
  glfw_init
  glfw_create_window 800 600 "Demo"
  glfw_window_should_close 1
  glfw_get_key 1 256

Literals: integers, floats, true/false, null, "quoted strings".
A bare word is taken as a string.

Console commands:
  :help            Show this help
  :ops             List the registered operations
  :quit / :exit    Exit the console
`
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	var evalStr string
	flag.StringVar(&evalStr, "e", "", "run one call and exit")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	b := bridge.New(platform.GLFW{})
	tbl := script.Table{}
	b.Register(tbl)

	var code int
	if evalStr != "" {
		code = runEval(tbl, evalStr)
	} else {
		code = runConsole(tbl)
	}
	b.Shutdown()
	os.Exit(code)
}

func runEval(tbl script.Table, line string) int {
	out, err := eval(tbl, line)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	if out != "" {
		fmt.Println(out)
	}
	return 0
}

func runConsole(tbl script.Table) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(completer(tbl))

	// Load history (best-effort)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(line, ":") {
			if done := handleCommand(tbl, line); done {
				break
			}
			continue
		}

		if out, err := eval(tbl, line); err != nil {
			fmt.Println("error:", err)
		} else {
			fmt.Println(out)
		}
	}

	// Persist history (best-effort)
	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}

// eval parses one console line as "op arg..." and calls it through the
// table, exactly as a script call would arrive.
func eval(tbl script.Table, line string) (string, error) {
	fields, err := splitFields(line)
	if err != nil {
		return "", err
	}
	if len(fields) == 0 {
		return "", nil
	}
	args, err := parseValues(fields[1:])
	if err != nil {
		return "", err
	}
	v, err := tbl.Call(fields[0], args...)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func handleCommand(tbl script.Table, line string) (exit bool) {
	switch strings.ToLower(strings.Fields(line)[0]) {
	case ":help":
		fmt.Print(helpText)
	case ":ops":
		for _, name := range opNames(tbl) {
			fmt.Println(" ", name)
		}
	case ":quit", ":exit":
		return true
	default:
		fmt.Println("unknown command. Type :help for help.")
	}
	return false
}

func completer(tbl script.Table) liner.Completer {
	names := opNames(tbl)
	return func(line string) (out []string) {
		if strings.ContainsAny(line, " \t") {
			return nil // only the leading op name completes
		}
		for _, name := range names {
			if strings.HasPrefix(name, line) {
				out = append(out, name)
			}
		}
		return out
	}
}

func opNames(tbl script.Table) []string {
	names := make([]string, 0, len(tbl))
	for name := range tbl {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
