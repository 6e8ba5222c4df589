// Package logging wires log/slog to a file under the store directory.
// The TUI owns the terminal, so nothing is ever logged to stdout or stderr.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// EnvLevel selects the minimum level: debug|info|warn|error.
const EnvLevel = "TODO_LOG_LEVEL"

// Init opens <dir>/logs/todo.log in append mode and installs it as the default
// slog logger. The returned closer releases the file.
func Init(dir string) (io.Closer, error) {
	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(filepath.Join(logDir, "todo.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: ParseLevel(os.Getenv(EnvLevel)),
	})
	slog.SetDefault(slog.New(handler))

	// Stray log.Printf calls from dependencies land in the same file.
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// Discard installs a logger that drops everything.
func Discard() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
