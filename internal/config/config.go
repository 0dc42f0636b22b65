// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hy4ri/todo-tui/internal/platform"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode   bool `yaml:"vim_mode"`
	ShowHints bool `yaml:"show_hints"`
}

// StorageConfig holds task file settings.
type StorageConfig struct {
	// Path overrides the default task file location.
	Path string `yaml:"path,omitempty"`

	// AutosaveSeconds is the interval between periodic saves.
	AutosaveSeconds int `yaml:"autosave_seconds"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			VimMode:   true,
			ShowHints: true,
		},
		Storage: StorageConfig{
			AutosaveSeconds: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// AutosaveInterval returns the configured autosave interval, falling back
// to 30 seconds for non-positive values.
func (c *Config) AutosaveInterval() time.Duration {
	if c.Storage.AutosaveSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Storage.AutosaveSeconds) * time.Second
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	paths, err := platform.DefaultPaths()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(paths.ConfigDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return paths.ConfigDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path, applying defaults for any
// missing keys.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes the configuration to path.
func SaveTo(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// TasksPath returns the task file to use: the configured override or def.
func (c *Config) TasksPath(def string) string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return def
}
