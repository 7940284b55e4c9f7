// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config represents the application configuration.
type Config struct {
	UI    UIConfig    `yaml:"ui"`
	Theme ThemeConfig `yaml:"theme"`
	Log   LogConfig   `yaml:"log"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	Variant       string `yaml:"variant"` // "segmented" or "tabs"
	Align         string `yaml:"align"`   // "left", "center" or "right"
	Gap           int    `yaml:"gap"`
	Padding       int    `yaml:"padding"`
	MaxLabelWidth int    `yaml:"max_label_width,omitempty"`
	AnimationMS   int    `yaml:"animation_ms"`
	FrameMS       int    `yaml:"frame_ms"`
	Language      string `yaml:"language"`
	Notify        bool   `yaml:"notify"`
	Mouse         bool   `yaml:"mouse"`
}

// ThemeConfig overrides the switch list colors. Empty values keep the
// variant's defaults.
type ThemeConfig struct {
	ActiveBackground   string `yaml:"active_background,omitempty"`
	InactiveBackground string `yaml:"inactive_background,omitempty"`
	ActiveText         string `yaml:"active_text,omitempty"`
	InactiveText       string `yaml:"inactive_text,omitempty"`
}

// IsZero reports whether no color is overridden.
func (t ThemeConfig) IsZero() bool {
	return t == ThemeConfig{}
}

// LogConfig controls the debug log.
type LogConfig struct {
	Path  string `yaml:"path,omitempty"`
	Level string `yaml:"level"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Variant:     "segmented",
			Align:       "left",
			Gap:         2,
			Padding:     1,
			AnimationMS: 200,
			FrameMS:     16,
			Language:    "en",
			Mouse:       true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks values that cannot be corrected silently.
func (c *Config) Validate() error {
	switch strings.ToLower(c.UI.Variant) {
	case "segmented", "tabs":
	default:
		return fmt.Errorf("%w: ui.variant %q, want segmented or tabs", ErrInvalid, c.UI.Variant)
	}
	switch strings.ToLower(c.UI.Align) {
	case "left", "center", "right":
	default:
		return fmt.Errorf("%w: ui.align %q, want left, center or right", ErrInvalid, c.UI.Align)
	}
	if c.UI.Gap < 0 || c.UI.Padding < 0 || c.UI.MaxLabelWidth < 0 {
		return fmt.Errorf("%w: ui.gap, ui.padding and ui.max_label_width must not be negative", ErrInvalid)
	}
	if c.UI.AnimationMS < 0 {
		return fmt.Errorf("%w: ui.animation_ms must not be negative", ErrInvalid)
	}
	if c.UI.FrameMS <= 0 {
		return fmt.Errorf("%w: ui.frame_ms must be positive", ErrInvalid)
	}
	return nil
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "multiswitch")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path.
// If the file doesn't exist, returns a default configuration.
func LoadFile(path string) (*Config, error) {
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
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes the configuration to path.
func SaveFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
