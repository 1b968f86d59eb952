package particles

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, which lets the
// pipeline skip counting mask cells when nobody is listening.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var (
	silent = slog.New(discard{})
	active atomic.Pointer[slog.Logger]
)

func init() { active.Store(silent) }

// SetLogger routes pipeline diagnostics to l. Pass nil to go back to the
// silent default. It may be called while generators are running.
//
// One FromRGBA call emits at most these records:
//
//	WARN  "particles: degenerate input"  width height bytes
//	DEBUG "particles: edge band built"   width height inside edge
//	DEBUG "particles: relaxed"           particles iterations radius
//	DEBUG "particles: done"              mode particles elapsed
//
// The degenerate warning replaces the other three: such input returns an
// empty set before any stage runs.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	active.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger { return active.Load() }
