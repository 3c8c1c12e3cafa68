// Package logging configures the process-wide slog logger. Output goes to a
// file because the terminal belongs to the TUI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultPath returns the log file location under the XDG state dir.
func DefaultPath() (string, error) {
	path, err := xdg.StateFile("mymusic/mymusic.log")
	if err != nil {
		return "", fmt.Errorf("get log path: %w", err)
	}
	return path, nil
}

// Setup opens path for appending, installs a text handler at level as the
// default logger and returns it with the file's closer.
func Setup(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := New(f, level)
	slog.SetDefault(logger)
	return logger, f, nil
}

// New returns a text logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
