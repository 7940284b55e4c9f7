// Package logging configures the process-wide structured logger. The
// terminal belongs to the UI, so records go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu       sync.Mutex
	logFile  *os.File
	logger   = slog.New(slog.NewTextHandler(io.Discard, nil))
	levelVar = &slog.LevelVar{}
)

// Setup points the logger at path, creating parent directories. An empty
// path keeps logging disabled.
func Setup(path, level string) (*slog.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	SetRawLevel(level)
	if path == "" {
		return logger, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return logger, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return logger, fmt.Errorf("failed to open log file: %w", err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = New(f)
	return logger, nil
}

// New returns a JSON logger writing to w at the shared level.
func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: false,
	}))
}

// Logger returns the configured logger.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// ParseLevel maps a level name to a slog level. Unknown names are info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetRawLevel changes the level of every logger created by this package.
func SetRawLevel(raw string) {
	levelVar.Set(ParseLevel(raw))
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}
