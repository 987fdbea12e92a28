package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Config represents the orgwriter configuration
type Config struct {
	InboxFile    string `json:"inbox_file"`
	LogFile      string `json:"log_file"`
	DefaultLevel int    `json:"default_level"`
	DefaultTodo  string `json:"default_todo,omitempty"`
	AssignIDs    bool   `json:"assign_ids,omitempty"`
	AddCreated   bool   `json:"add_created,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		InboxFile:    filepath.Join(home, "org", "inbox.org"),
		LogFile:      filepath.Join(xdg.StateHome, "orgwriter", "orgwriter.log"),
		DefaultLevel: 1,
		DefaultTodo:  "",
		AssignIDs:    false,
		AddCreated:   false,
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "orgwriter", "config.json")
	}
	return filepath.Join(home, ".config", "orgwriter", "config.json")
}

// Load reads configuration from the config file. Fields missing from the
// file keep their defaults.
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the config file
func (c *Config) Save() error {
	configPath := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.InboxFile == "" {
		return fmt.Errorf("inbox_file cannot be empty")
	}
	if c.LogFile == "" {
		return fmt.Errorf("log_file cannot be empty")
	}
	if c.DefaultLevel < 0 {
		return fmt.Errorf("default_level must not be negative")
	}
	if strings.ContainsAny(c.DefaultTodo, " \t\n") {
		return fmt.Errorf("invalid default_todo '%s': must be a single word", c.DefaultTodo)
	}

	return nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	c.InboxFile, err = ExpandPath(c.InboxFile)
	if err != nil {
		return fmt.Errorf("failed to expand inbox_file: %w", err)
	}

	c.LogFile, err = ExpandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	return nil
}

// ExpandPath expands ~ to home directory and converts to absolute path
func ExpandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	return filepath.Abs(path)
}
