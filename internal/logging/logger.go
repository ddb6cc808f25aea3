package logging

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger creates the structured logger for a planner session, writing to stderr.
func NewLogger(verbose bool) *slog.Logger {
	return NewLoggerTo(os.Stderr, verbose)
}

// NewLoggerTo creates a structured logger writing to w.
// A terminal gets slog.TextHandler; pipes, files and buffers get slog.JSONHandler.
// The level is debug when verbose is set or DP_DEBUG is present, info otherwise.
func NewLoggerTo(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose || DebugEnabled() {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if IsTerminal(w) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// IsTerminal reports whether v is an *os.File attached to a terminal.
func IsTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
