// Package logging provides the engine's ambient instrumentation: a small
// per-call QueryLogger used by tagdb.Database and registry.Registry, and a
// slog-based default logger configured from LOG_LEVEL.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

func sprintf(format string, v ...any) string { return fmt.Sprintf(format, v...) }
func joinArgs(v ...any) string               { return fmt.Sprint(v...) }

// QueryLogger is the logging hook accepted by tagdb.Database and
// registry.Registry. Those two only ever call Printf: both the search
// engine and the registry emit single formatted lines per call.
type QueryLogger interface {
	Print(v ...any)
	Printf(format string, v ...any)
	Println(v ...any)
}

// StdoutLogger forwards every call to the default slog logger at info level;
// once Init has run that logger writes to stderr and drops lines below
// LOG_LEVEL — useful for a CLI's --verbose mode.
type StdoutLogger struct{}

func (StdoutLogger) Print(v ...any)                 { slog.Info(joinArgs(v...)) }
func (StdoutLogger) Printf(format string, v ...any) { slog.Info(sprintf(format, v...)) }
func (StdoutLogger) Println(v ...any)               { slog.Info(joinArgs(v...)) }

// NullLogger discards everything. It is the default for a Database or
// Registry constructed outside a host that cares about instrumentation.
type NullLogger struct{}

func (NullLogger) Print(v ...any)                 {}
func (NullLogger) Printf(format string, v ...any) {}
func (NullLogger) Println(v ...any)               {}

// Init configures the default slog logger from the LOG_LEVEL environment
// variable (debug, info, warn, error; defaults to info).
func Init() {
	level := slog.LevelInfo
	if raw, ok := os.LookupEnv("LOG_LEVEL"); ok {
		switch strings.ToLower(raw) {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
