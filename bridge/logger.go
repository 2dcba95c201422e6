package bridge

import (
	"context"
	"log/slog"
)

// nopHandler drops every record; SetLogger(nil) installs it.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// SetLogger redirects the bridge's diagnostics. New bridges log through
// slog.Default; passing nil silences them.
func (b *Bridge) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	b.mu.Lock()
	b.log = l
	b.mu.Unlock()
}
