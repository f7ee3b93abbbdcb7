// Package log provides structured logging for the derivation pipeline. It
// wraps Go's log/slog with conveniences such as per-module child loggers
// and a pluggable output format, for the three ways a deposit-derivation
// run's output is consumed: machine-parsed JSON when piped into another
// process, interactive colored text at an operator's terminal, and plain
// text when redirected to a plain log file.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Format selects how a Logger renders its output.
type Format int

const (
	// FormatJSON renders one JSON object per line, via slog's own JSON
	// handler. This is the default: stable, machine-parseable output.
	FormatJSON Format = iota
	// FormatText renders plain `[time] LEVEL message key=value` lines.
	FormatText
	// FormatColor is FormatText with ANSI level coloring, for an
	// interactive terminal.
	FormatColor
)

// Logger wraps slog.Logger with per-module and key-value child loggers.
type Logger struct {
	inner *slog.Logger
}

// defaultLogger is the process-wide logger used by the package-level
// convenience functions.
var defaultLogger *Logger

func init() {
	defaultLogger = New(slog.LevelInfo, FormatJSON)
}

// New creates a Logger writing to stderr at the given level and format.
func New(level slog.Level, format Format) *Logger {
	return NewWithHandler(newHandler(os.Stderr, level, format))
}

// newHandler builds the slog.Handler backing a given level/format pair.
func newHandler(w io.Writer, level slog.Level, format Format) slog.Handler {
	switch format {
	case FormatText:
		return newFormatHandler(w, &TextFormatter{}, level)
	case FormatColor:
		return newFormatHandler(w, &ColorFormatter{}, level)
	default:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
}

// NewWithHandler creates a Logger backed by the supplied slog.Handler. This
// is useful for testing or for writing to a custom destination.
func NewWithHandler(h slog.Handler) *Logger {
	return &Logger{inner: slog.New(h)}
}

// SetDefault replaces the package-level default logger.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Default returns the current package-level default logger.
func Default() *Logger {
	return defaultLogger
}

// Module returns a child logger with an additional "module" attribute. This
// is the primary way subsystems (rollup, geth, cmd/derive, ...) obtain
// their own contextual logger.
func (l *Logger) Module(name string) *Logger {
	return &Logger{inner: l.inner.With("module", name)}
}

// With returns a child logger with additional key-value context.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{inner: l.inner.With(args...)}
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) { l.inner.Info(msg, args...) }

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, args ...any) { l.inner.Warn(msg, args...) }

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

// ---------------------------------------------------------------------------
// Package-level convenience functions -- delegate to defaultLogger.
// ---------------------------------------------------------------------------

// Debug logs at LevelDebug using the default logger.
func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }

// Info logs at LevelInfo using the default logger.
func Info(msg string, args ...any) { defaultLogger.Info(msg, args...) }

// Warn logs at LevelWarn using the default logger.
func Warn(msg string, args ...any) { defaultLogger.Warn(msg, args...) }

// Error logs at LevelError using the default logger.
func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }

// ParseFormat parses a --log-format flag value. Unrecognized strings fall
// back to FormatJSON.
func ParseFormat(s string) Format {
	switch s {
	case "text":
		return FormatText
	case "color":
		return FormatColor
	default:
		return FormatJSON
	}
}
