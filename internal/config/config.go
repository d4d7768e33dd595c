// Package config handles TOML-based configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"screenwave/internal/httputil"
)

const appName = "screenwave"

// Config holds all application configuration.
type Config struct {
	UserAgent      string `toml:"user_agent"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	Player         string `toml:"player"`
	Output         string `toml:"output"`
	History        bool   `toml:"history"`
	Debug          bool   `toml:"debug"`
	LogJSON        bool   `toml:"log_json"`
	InfoDir        string `toml:"info_dir"`
	Workers        int    `toml:"workers"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UserAgent:      httputil.DefaultUserAgent,
		TimeoutSeconds: 30,
		Player:         "mpv",
		Output:         "table",
		History:        true,
		Workers:        4,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	validPlayers := map[string]bool{
		"mpv": true, "vlc": true, "iina": true, "celluloid": true,
	}
	if !validPlayers[strings.ToLower(c.Player)] {
		return fmt.Errorf("unsupported player %q (valid: mpv, vlc, iina, celluloid)", c.Player)
	}

	switch c.Output {
	case "table", "json":
	default:
		return fmt.Errorf("unsupported output %q (valid: table, json)", c.Output)
	}

	if c.TimeoutSeconds < 1 || c.TimeoutSeconds > 600 {
		return fmt.Errorf("timeout_seconds must be between 1 and 600, got %d", c.TimeoutSeconds)
	}

	if c.Workers < 1 || c.Workers > 32 {
		return fmt.Errorf("workers must be between 1 and 32, got %d", c.Workers)
	}

	if strings.TrimSpace(c.UserAgent) == "" {
		return fmt.Errorf("user_agent cannot be empty")
	}

	return nil
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ExpandInfoDir resolves ~ in the info directory path. An empty InfoDir
// stays empty.
func (c *Config) ExpandInfoDir() (string, error) {
	dir := c.InfoDir
	if dir == "" {
		return "", nil
	}
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding home dir: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}
	return filepath.Abs(dir)
}

// HistoryPath returns the path to the history database.
func HistoryPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, appName, "history.db"), nil
}
