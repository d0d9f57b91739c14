// Package config handles loading and saving user configuration for pmpy.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file inside the config directory.
const FileName = "config.yaml"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// Config holds all user configuration for pmpy.
type Config struct {
	Format   string `yaml:"format"`   // Output format: text or json
	Trace    bool   `yaml:"trace"`    // Print the rules that fired
	Color    bool   `yaml:"color"`    // Color key groups in text output
	Database string `yaml:"database"` // Default path for the chord table export
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Format:   FormatText,
		Color:    true,
		Database: "chords.db",
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalid, c.Format)
	}
	if c.Database == "" {
		return fmt.Errorf("%w: database path is empty", ErrInvalid)
	}
	return nil
}

// Load reads a config file. Fields missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDir loads FileName from dir, falling back to Default when the file
// does not exist.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pmpy"), nil
}
