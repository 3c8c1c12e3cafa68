package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "nested", "test.log")
	logger, closer, err := Setup(path, slog.LevelWarn)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	logger.Info("hidden")
	slog.Warn("visible", "key", "value")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Errorf("info line logged at warn level:\n%s", out)
	}
	if !strings.Contains(out, "msg=visible") || !strings.Contains(out, "key=value") {
		t.Errorf("warn line missing:\n%s", out)
	}
}

func TestDiscard(t *testing.T) {
	if Discard().Enabled(t.Context(), slog.LevelError) {
		t.Error("Discard() logger should be disabled")
	}
}
