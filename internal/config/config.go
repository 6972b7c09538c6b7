package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Storage backend names
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config represents the full taskboard configuration
type Config struct {
	Storage StorageConfig `json:"storage" toml:"storage"`
	Loading LoadingConfig `json:"loading" toml:"loading"`
	Toasts  ToastConfig   `json:"toasts" toml:"toasts"`
	Log     LogConfig     `json:"log" toml:"log"`
}

// StorageConfig selects where the boards document lives
type StorageConfig struct {
	Backend   string `json:"backend" toml:"backend"`
	Path      string `json:"path" toml:"path"`
	RedisAddr string `json:"redisAddr" toml:"redisAddr"`
	RedisKey  string `json:"redisKey" toml:"redisKey"`
}

// DefaultInitDelayMs is used when initDelayMs is unset or negative
const DefaultInitDelayMs = 150

// LoadingConfig contains loading indicator timings. InitDelayMs is a pointer
// so an explicit 0 can be told apart from an unset value.
type LoadingConfig struct {
	MinDurationMs int  `json:"minDurationMs" toml:"minDurationMs"`
	InitDelayMs   *int `json:"initDelayMs,omitempty" toml:"initDelayMs,omitempty"`
}

// MinDuration returns the minimum visible loading time
func (c LoadingConfig) MinDuration() time.Duration {
	return time.Duration(c.MinDurationMs) * time.Millisecond
}

// InitDelay returns the delay before the initial boards load
func (c LoadingConfig) InitDelay() time.Duration {
	ms := DefaultInitDelayMs
	if c.InitDelayMs != nil && *c.InitDelayMs >= 0 {
		ms = *c.InitDelayMs
	}
	return time.Duration(ms) * time.Millisecond
}

// ToastConfig contains toast presentation settings
type ToastConfig struct {
	DurationMs int `json:"durationMs" toml:"durationMs"`
}

// Duration returns how long a toast stays on screen
func (c ToastConfig) Duration() time.Duration {
	return time.Duration(c.DurationMs) * time.Millisecond
}

// LogConfig contains logging settings
type LogConfig struct {
	Dir   string `json:"dir" toml:"dir"`
	Level string `json:"level" toml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	initDelay := DefaultInitDelayMs

	return &Config{
		Storage: StorageConfig{
			Backend:   BackendFile,
			Path:      filepath.Join(homeDir, ".taskboard", "boards.json"),
			RedisAddr: "localhost:6379",
			RedisKey:  "taskboard:boards",
		},
		Loading: LoadingConfig{
			MinDurationMs: 300,
			InitDelayMs:   &initDelay,
		},
		Toasts: ToastConfig{
			DurationMs: 4000,
		},
		Log: LogConfig{
			Dir:   filepath.Join(homeDir, ".taskboard", "logs"),
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a directory with priority:
// 1. .taskboard.json
// 2. taskboard.toml
// 3. Defaults
func LoadConfig(dir string) (*Config, error) {
	jsonPath := filepath.Join(dir, ConfigFileName)
	if data, err := os.ReadFile(jsonPath); err == nil {
		var cfg Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse .taskboard.json: %w", err)
		}
		return MergeWithDefaults(&cfg), nil
	}

	tomlPath := filepath.Join(dir, "taskboard.toml")
	if _, err := os.Stat(tomlPath); err == nil {
		var cfg Config
		if _, err := toml.DecodeFile(tomlPath, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse taskboard.toml: %w", err)
		}
		return MergeWithDefaults(&cfg), nil
	}

	return DefaultConfig(), nil
}

// ConfigFileName is the JSON config file looked up by LoadConfig
const ConfigFileName = ".taskboard.json"

// SaveConfig saves configuration as JSON to the specified path
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Merge Storage config
	switch cfg.Storage.Backend {
	case BackendFile, BackendRedis:
	default:
		cfg.Storage.Backend = defaults.Storage.Backend
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaults.Storage.Path
	}
	if cfg.Storage.RedisAddr == "" {
		cfg.Storage.RedisAddr = defaults.Storage.RedisAddr
	}
	if cfg.Storage.RedisKey == "" {
		cfg.Storage.RedisKey = defaults.Storage.RedisKey
	}

	// Merge Loading config
	if cfg.Loading.MinDurationMs <= 0 {
		cfg.Loading.MinDurationMs = defaults.Loading.MinDurationMs
	}
	if cfg.Loading.InitDelayMs == nil || *cfg.Loading.InitDelayMs < 0 {
		cfg.Loading.InitDelayMs = defaults.Loading.InitDelayMs
	}

	// Merge Toasts config
	if cfg.Toasts.DurationMs <= 0 {
		cfg.Toasts.DurationMs = defaults.Toasts.DurationMs
	}

	// Merge Log config
	if cfg.Log.Dir == "" {
		cfg.Log.Dir = defaults.Log.Dir
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}

// SlogLevel maps Log.Level to a slog level, defaulting to info
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
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

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
