package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultServerURL         = "http://localhost:5000"
	DefaultVolume            = 0.7
	DefaultPreviousThreshold = 3 * time.Second
	DefaultSnapshotInterval  = time.Second
	DefaultRequestTimeout    = 10 * time.Second
)

type Config struct {
	ServerURL      string `koanf:"server_url"`      // backend base URL
	CacheDir       string `koanf:"cache_dir"`       // audio cache; empty means XDG cache dir
	ResumePlayback *bool  `koanf:"resume_playback"` // resume a session that was playing (default: true)
	Notifications  bool   `koanf:"notifications"`   // desktop "now playing" notices
	Icons          string `koanf:"icons"`           // "nerd", "unicode", or "none"
	LogLevel       string `koanf:"log_level"`       // debug, info, warn, error

	DefaultVolume     float64       `koanf:"default_volume"`     // 0-1, used when no session exists
	PreviousThreshold time.Duration `koanf:"previous_threshold"` // restart instead of going back after this
	SnapshotInterval  time.Duration `koanf:"snapshot_interval"`  // throttle for session saves while playing
	RequestTimeout    time.Duration `koanf:"request_timeout"`    // API request timeout
}

// PlayerConfig holds playback settings with defaults applied.
type PlayerConfig struct {
	ResumePlayback    bool
	DefaultVolume     float64
	PreviousThreshold time.Duration
	SnapshotInterval  time.Duration
}

// Load reads the config files in priority order.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order (last wins). Missing files are
// skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		ServerURL: DefaultServerURL,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.ServerURL = strings.TrimSuffix(strings.TrimSpace(cfg.ServerURL), "/")
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}

	if cfg.CacheDir != "" {
		cfg.CacheDir = expandPath(cfg.CacheDir)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/mymusic/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mymusic", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetPlayerConfig returns the playback configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := PlayerConfig{
		ResumePlayback:    c.ResumePlayback == nil || *c.ResumePlayback,
		DefaultVolume:     c.DefaultVolume,
		PreviousThreshold: c.PreviousThreshold,
		SnapshotInterval:  c.SnapshotInterval,
	}

	if cfg.DefaultVolume <= 0 || cfg.DefaultVolume > 1 {
		cfg.DefaultVolume = DefaultVolume
	}
	if cfg.PreviousThreshold <= 0 {
		cfg.PreviousThreshold = DefaultPreviousThreshold
	}
	if cfg.SnapshotInterval <= 0 {
		cfg.SnapshotInterval = DefaultSnapshotInterval
	}

	return cfg
}

// GetRequestTimeout returns the API timeout, defaulting to 10s.
func (c *Config) GetRequestTimeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return c.RequestTimeout
}

// GetLogLevel parses log_level, defaulting to info.
func (c *Config) GetLogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
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
