// Package config loads and validates the course search configuration.
//
// Resolution order: built-in defaults, then the YAML config file (if present),
// then environment variables (CS111_CONTENT_DIR).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/justinvassantachart/cs111-interactive-sub002/internal/errors"
)

// DefaultConfigName is the config file looked up in the working directory.
const DefaultConfigName = ".cs111.yaml"

// EnvContentDir overrides the content directory when set.
const EnvContentDir = "CS111_CONTENT_DIR"

// Config is the complete CLI configuration.
type Config struct {
	// ContentDir is the directory holding the course content YAML files.
	ContentDir string `yaml:"content_dir"`

	Search SearchConfig `yaml:"search"`
	Watch  WatchConfig  `yaml:"watch"`
	Log    LogConfig    `yaml:"log"`
}

// SearchConfig tunes the search session. The ranking weights themselves are
// fixed contracts and deliberately not configurable.
type SearchConfig struct {
	// CacheSize is the capacity of the per-session result cache.
	CacheSize int `yaml:"cache_size"`
}

// WatchConfig tunes the content directory watcher.
type WatchConfig struct {
	// Debounce is how long to coalesce file events before reloading.
	Debounce time.Duration `yaml:"debounce"`
}

// LogConfig tunes logging output.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// File is the log file path. Empty logs to stderr only.
	File string `yaml:"file"`
}

// NewConfig returns a Config with built-in defaults.
func NewConfig() *Config {
	return &Config{
		ContentDir: "content",
		Search: SearchConfig{
			CacheSize: 128,
		},
		Watch: WatchConfig{
			Debounce: 300 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path. An empty path falls back to
// DefaultConfigName in the working directory; a missing file is not an error
// and yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	explicit := path != ""
	if path == "" {
		path = DefaultConfigName
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if explicit {
			return nil, apperrors.New(apperrors.ErrCodeConfigNotFound,
				fmt.Sprintf("config file %s not found", path), err)
		}
	case err != nil:
		return nil, apperrors.ConfigError(fmt.Sprintf("reading %s", path), err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, apperrors.ConfigError(fmt.Sprintf("parsing %s", path), err).
				WithDetail("file", filepath.Base(path))
		}
	}

	if dir := os.Getenv(EnvContentDir); dir != "" {
		cfg.ContentDir = dir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values and fills gaps with
// defaults where that is safe.
func (c *Config) Validate() error {
	if c.ContentDir == "" {
		return apperrors.ConfigError("content_dir must not be empty", nil)
	}
	if c.Search.CacheSize < 0 {
		return apperrors.ConfigError(
			fmt.Sprintf("search.cache_size must be >= 0, got %d", c.Search.CacheSize), nil)
	}
	if c.Watch.Debounce < 0 {
		return apperrors.ConfigError(
			fmt.Sprintf("watch.debounce must be >= 0, got %s", c.Watch.Debounce), nil)
	}
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = 300 * time.Millisecond
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	return nil
}
