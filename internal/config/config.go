// Package config provides configuration loading and validation for the report explorer.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from
// a JSON file. All fields are optional; missing values use defaults or
// must be provided via CLI flags or environment variables.
type Config struct {
	MongoURI    string `json:"mongo_uri,omitempty"`    // MongoDB connection URI
	Database    string `json:"database,omitempty"`     // Database name
	StaticDir   string `json:"static_dir,omitempty"`   // Directory holding rendered report artifacts
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	AuthEnabled bool   `json:"auth_enabled,omitempty"` // Gate report routes behind login
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	if c.StaticDir != "" {
		if info, err := os.Stat(c.StaticDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: 'static_dir' is not a directory: %s", c.StaticDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.MongoURI == "" {
		result.MongoURI = defaults.MongoURI
	}
	if result.Database == "" {
		result.Database = defaults.Database
	}
	if result.StaticDir == "" {
		result.StaticDir = defaults.StaticDir
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Database:  "CAG_CHATBOT",
		StaticDir: "html_files",
		Port:      8080,
	}
}
