//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/music/library/albums",
			expected: filepath.Join(home, "music", "library", "albums"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/albums",
			expected: "music/albums",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
		{
			name:     "tilde with slash",
			input:    "~/",
			expected: filepath.Join(home, ""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	// Should have at least one path
	if len(paths) == 0 {
		t.Error("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	// If we have home dir, first path should be ~/.config/waves/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "waves", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func boolPtr(b bool) *bool { return &b }

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	return path
}

func TestGetPlayerConfig_Defaults(t *testing.T) {
	cfg := &Config{}
	got := cfg.GetPlayerConfig()

	if !got.ResumePlayback {
		t.Error("ResumePlayback = false, want true")
	}
	if got.DefaultVolume != DefaultVolume {
		t.Errorf("DefaultVolume = %v, want %v", got.DefaultVolume, DefaultVolume)
	}
	if got.PreviousThreshold != 3*time.Second {
		t.Errorf("PreviousThreshold = %v, want 3s", got.PreviousThreshold)
	}
	if got.SnapshotInterval != time.Second {
		t.Errorf("SnapshotInterval = %v, want 1s", got.SnapshotInterval)
	}
}

func TestGetPlayerConfig_CustomValues(t *testing.T) {
	cfg := &Config{
		ResumePlayback:    boolPtr(false),
		DefaultVolume:     0.25,
		PreviousThreshold: 5 * time.Second,
		SnapshotInterval:  2 * time.Second,
	}
	got := cfg.GetPlayerConfig()

	want := PlayerConfig{
		ResumePlayback:    false,
		DefaultVolume:     0.25,
		PreviousThreshold: 5 * time.Second,
		SnapshotInterval:  2 * time.Second,
	}
	if got != want {
		t.Errorf("GetPlayerConfig() = %+v, want %+v", got, want)
	}
}

func TestGetPlayerConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
	}{
		{"negative volume", -0.5},
		{"volume above one", 1.5},
		{"zero volume", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{DefaultVolume: tt.volume, PreviousThreshold: -time.Second}
			got := cfg.GetPlayerConfig()
			if got.DefaultVolume != DefaultVolume {
				t.Errorf("DefaultVolume = %v, want %v", got.DefaultVolume, DefaultVolume)
			}
			if got.PreviousThreshold != DefaultPreviousThreshold {
				t.Errorf("PreviousThreshold = %v, want %v", got.PreviousThreshold, DefaultPreviousThreshold)
			}
		})
	}
}

func TestGetRequestTimeout(t *testing.T) {
	if got := (&Config{}).GetRequestTimeout(); got != 10*time.Second {
		t.Errorf("GetRequestTimeout() = %v, want 10s", got)
	}
	if got := (&Config{RequestTimeout: time.Minute}).GetRequestTimeout(); got != time.Minute {
		t.Errorf("GetRequestTimeout() = %v, want 1m", got)
	}
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.input}
			if got := cfg.GetLogLevel(); got != tt.want {
				t.Errorf("GetLogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadFrom_Missing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("ServerURL = %q, want %q", cfg.ServerURL, DefaultServerURL)
	}
	if cfg.ResumePlayback != nil {
		t.Error("ResumePlayback should be unset")
	}
}

func TestLoadFrom_BasicConfig(t *testing.T) {
	path := writeConfig(t, `
server_url = "https://music.example.com/"
icons = "nerd"
resume_playback = false
notifications = true
default_volume = 0.4
previous_threshold = "5s"
snapshot_interval = "500ms"
request_timeout = "30s"
log_level = "debug"
cache_dir = "~/mymusic-cache"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.ServerURL != "https://music.example.com" {
		t.Errorf("ServerURL = %q, want trailing slash removed", cfg.ServerURL)
	}
	if cfg.Icons != "nerd" {
		t.Errorf("Icons = %q, want %q", cfg.Icons, "nerd")
	}
	if !cfg.Notifications {
		t.Error("Notifications = false, want true")
	}

	pc := cfg.GetPlayerConfig()
	if pc.ResumePlayback {
		t.Error("ResumePlayback = true, want false")
	}
	if pc.DefaultVolume != 0.4 {
		t.Errorf("DefaultVolume = %v, want 0.4", pc.DefaultVolume)
	}
	if pc.PreviousThreshold != 5*time.Second {
		t.Errorf("PreviousThreshold = %v, want 5s", pc.PreviousThreshold)
	}
	if pc.SnapshotInterval != 500*time.Millisecond {
		t.Errorf("SnapshotInterval = %v, want 500ms", pc.SnapshotInterval)
	}
	if cfg.GetRequestTimeout() != 30*time.Second {
		t.Errorf("GetRequestTimeout() = %v, want 30s", cfg.GetRequestTimeout())
	}
	if cfg.GetLogLevel() != slog.LevelDebug {
		t.Errorf("GetLogLevel() = %v, want debug", cfg.GetLogLevel())
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "mymusic-cache"); cfg.CacheDir != want {
		t.Errorf("CacheDir = %q, want %q", cfg.CacheDir, want)
	}
}

func TestLoadFrom_LastWins(t *testing.T) {
	first := writeConfig(t, `server_url = "http://first"
icons = "unicode"`)
	second := writeConfig(t, `server_url = "http://second"`)

	cfg, err := LoadFrom(first, second)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.ServerURL != "http://second" {
		t.Errorf("ServerURL = %q, want %q", cfg.ServerURL, "http://second")
	}
	if cfg.Icons != "unicode" {
		t.Errorf("Icons = %q, want value kept from first file", cfg.Icons)
	}
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	path := writeConfig(t, "invalid = [[[")
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() expected error for invalid TOML, got nil")
	}
}

func TestLoad_LocalFile(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	if err := os.WriteFile("config.toml", []byte(`server_url = "http://local:9000"`), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// ./config.toml has the highest priority
	if cfg.ServerURL != "http://local:9000" {
		t.Errorf("ServerURL = %q, want %q", cfg.ServerURL, "http://local:9000")
	}
}
