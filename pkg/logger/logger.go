// Package logger provides a logging utility based on log/slog
//
// DEBUG logging can be enabled by setting the FIXTURE_DEBUG environment variable:
//   export FIXTURE_DEBUG=1
//
// Everything is written to stderr. Stdout belongs to the fixture's own output
// and must stay byte-exact.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// DebugEnv is the environment variable that switches on debug logging
const DebugEnv = "FIXTURE_DEBUG"

var (
	// Logger is the global logger instance
	Logger *slog.Logger
)

func init() {
	Logger = New(os.Stderr, DebugEnabled(os.Getenv(DebugEnv)))

	// Replace the default slog logger too
	slog.SetDefault(Logger)
}

// DebugEnabled reports whether an environment value turns debug logging on.
// Empty, "0" and "false" (any case) leave it off.
func DebugEnabled(value string) bool {
	return value != "" && strings.ToLower(value) != "false" && value != "0"
}

// New builds a text logger writing to w
func New(w io.Writer, debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// Debug logs a debug message if debug logging is enabled
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
