// Package config handles application configuration loading and defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds application-level settings. LLM settings live in the llm
// package and are loaded from their own environment variables.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `yaml:"db_path"`

	// ActivityWindowDays is the default lookback for activity insights.
	ActivityWindowDays int `yaml:"activity_window_days"`

	// CachePruneDays is the default --older-than for cache pruning.
	CachePruneDays int `yaml:"cache_prune_days"`

	// NoColor disables styled output even on a TTY.
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "/tmp"
	}
	return &Config{
		DBPath:             filepath.Join(home, ".local", "share", "recap", "recap.db"),
		ActivityWindowDays: 30,
		CachePruneDays:     90,
	}
}

// Load reads configuration from the default path, then applies
// environment overrides. A missing config file is not an error.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "recap", "config.yaml")
		if err := loadFromFile(cfg, path); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// loadFromFile reads a YAML config file and merges it into cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	cfg.DBPath = expandTilde(cfg.DBPath)
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("RECAP_DB"); v != "" {
		cfg.DBPath = expandTilde(v)
	}
	if v := os.Getenv("RECAP_NO_COLOR"); v != "" {
		cfg.NoColor, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("RECAP_ACTIVITY_WINDOW_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ActivityWindowDays = n
		}
	}
}

// expandTilde expands ~ to the user's home directory.
func expandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// Save writes the current config to disk.
func (c *Config) Save() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configDir := filepath.Join(home, ".config", "recap")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "config.yaml"), data, 0600)
}
