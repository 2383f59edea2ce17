/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/MercMayhem/PngMe/pkg/png"
)

// Config represents the pngme configuration
type Config struct {
	Placement string  `yaml:"placement"`
	Backup    bool    `yaml:"backup"`
	BackupDir string  `yaml:"backup_dir,omitempty"`
	Output    Output  `yaml:"output"`
	Logging   Logging `yaml:"logging"`
}

// Output contains print and decode output configuration
type Output struct {
	Format string `yaml:"format"`
	Color  string `yaml:"color"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Placement: png.PlacementBeforeEnd.String(),
		Backup:    false,
		Output: Output{
			Format: "table",
			Color:  "auto",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path. Fields missing from
// the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that every enumerated field holds a known value.
func (c *Config) Validate() error {
	if _, err := png.ParsePlacement(c.Placement); err != nil {
		return err
	}

	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("unknown output format %q (want table or json)", c.Output.Format)
	}

	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", c.Output.Color)
	}

	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}

	return nil
}

// PlacementValue returns the parsed placement policy.
func (c *Config) PlacementValue() png.Placement {
	p, err := png.ParsePlacement(c.Placement)
	if err != nil {
		return png.PlacementBeforeEnd
	}
	return p
}

// ParseLevel maps a logging level name to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown logging level %q", level)
	}
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./pngme.yaml"
	}

	// For Linux/macOS, use ~/.config/pngme/config.yaml
	configDir := filepath.Join(homeDir, ".config", "pngme")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
