// Package log provides context-aware structured logging for docsweep.
//
// Repair workers run in parallel, so the logger must emit each event as a
// single atomic line. zerolog guarantees one Write per event; the wrapper
// adds context attachment so commands and internal packages share one sink.
package log

import (
	"context"
	"io"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

type ctxKey struct{}

// nop swallows events on the quiet path. Event constructors are pointer
// methods, so the disabled logger needs an addressable home.
var nop = zerolog.Nop()

// Logger wraps zerolog for diagnostic output.
type Logger struct {
	zl    zerolog.Logger
	quiet bool
}

// New creates a logger writing to out at the given level
// (debug, info, warn, error). Unknown levels fall back to info.
// When quiet is set, all output is suppressed.
func New(out io.Writer, level string, quiet bool) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if f, ok := out.(interface{ Fd() uintptr }); ok && isatty.IsTerminal(f.Fd()) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	zl := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return &Logger{zl: zl, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{zl: zerolog.Nop()}
}

// Debug starts a debug-level event.
func (l *Logger) Debug() *zerolog.Event {
	if l.quiet {
		return nop.Debug()
	}
	return l.zl.Debug()
}

// Info starts an info-level event.
func (l *Logger) Info() *zerolog.Event {
	if l.quiet {
		return nop.Info()
	}
	return l.zl.Info()
}

// Warn starts a warn-level event.
func (l *Logger) Warn() *zerolog.Event {
	if l.quiet {
		return nop.Warn()
	}
	return l.zl.Warn()
}

// Error starts an error-level event.
func (l *Logger) Error() *zerolog.Event {
	if l.quiet {
		return nop.Error()
	}
	return l.zl.Error()
}
