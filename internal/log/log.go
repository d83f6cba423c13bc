// Package log provides structured logging for smoothcam.
// It wraps slog with the defaults the extension runs with inside a host.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu     sync.Mutex
	logger *slog.Logger
	closer io.Closer
)

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "trace":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "critical":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Init installs the global logger. When file is non-empty, output goes to
// that file (truncated) instead of stdout. Calling Init again replaces the
// previous logger.
func Init(level, file string) error {
	var w io.Writer = os.Stdout
	var c io.Closer
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		w, c = f, f
	}
	setOutput(w, ParseLevel(level))

	mu.Lock()
	if closer != nil {
		_ = closer.Close()
	}
	closer = c
	mu.Unlock()
	return nil
}

// SetOutput redirects the global logger to w. Tests use it to capture output.
func SetOutput(w io.Writer, level slog.Level) {
	setOutput(w, level)
}

func setOutput(w io.Writer, level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}

	var l *slog.Logger
	// JSON when shipped, text while developing
	if os.Getenv("SMOOTHCAM_ENV") == "production" {
		l = slog.New(slog.NewJSONHandler(w, opts))
	} else {
		l = slog.New(slog.NewTextHandler(w, opts))
	}

	mu.Lock()
	logger = l
	mu.Unlock()
}

// Close releases the log file opened by Init, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	logger = nil
	return err
}

// L returns the global logger instance.
func L() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return logger
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	L().Debug(msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	L().Info(msg, args...)
}

// Warn logs at warn level.
func Warn(msg string, args ...any) {
	L().Warn(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	L().Error(msg, args...)
}

// With returns a logger with the given attributes.
func With(args ...any) *slog.Logger {
	return L().With(args...)
}
