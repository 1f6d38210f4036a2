// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

// Package config loads ecapply tool configuration from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/editorconfig"
	"github.com/woozymasta/editorconfig/internal/logger"
	"github.com/woozymasta/editorconfig/internal/output"
)

// EnvConfigPath names the environment variable holding the default config file path.
const EnvConfigPath = "ECAPPLY_CONFIG"

// ErrUnsupportedFormat indicates a config file extension or output format that is not supported.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Config is ecapply configuration.
type Config struct {
	// ConfigFileName is the per-directory EditorConfig file name.
	ConfigFileName string `yaml:"config_file_name" toml:"config_file_name"`
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `yaml:"log_level" toml:"log_level"`
	// Format is the output format: text, yaml, json or ini.
	Format string `yaml:"format" toml:"format"`
	// WatchDebounce coalesces rapid config file writes in watch mode.
	WatchDebounce string `yaml:"watch_debounce" toml:"watch_debounce"`
	// DefaultTabWidth is the tab width of a fresh buffer before settings are applied.
	DefaultTabWidth uint32 `yaml:"default_tab_width" toml:"default_tab_width"`
	// MatchBasenamesAnywhere makes globs without "/" match at any depth.
	MatchBasenamesAnywhere bool `yaml:"match_basenames_anywhere" toml:"match_basenames_anywhere"`
	// NormalizeRelativePaths makes relative document paths absolute instead of skipping them.
	NormalizeRelativePaths bool `yaml:"normalize_relative_paths" toml:"normalize_relative_paths"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		ConfigFileName:  ".editorconfig",
		LogLevel:        "info",
		Format:          output.FormatText,
		WatchDebounce:   "100ms",
		DefaultTabWidth: 8,
	}
}

// DefaultPath returns config path from EnvConfigPath, or empty string.
func DefaultPath() string {
	return strings.TrimSpace(os.Getenv(EnvConfigPath))
}

// Load reads configuration from path, merged over defaults.
//
// Empty path or missing file returns defaults without error.
// The decoder is chosen by extension: .yaml/.yml or .toml.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var file Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: config extension %q", ErrUnsupportedFormat, ext)
	}

	cfg.merge(&file)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// merge applies non-zero values of other over c.
func (c *Config) merge(other *Config) {
	if other.ConfigFileName != "" {
		c.ConfigFileName = other.ConfigFileName
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.Format != "" {
		c.Format = other.Format
	}
	if other.WatchDebounce != "" {
		c.WatchDebounce = other.WatchDebounce
	}
	if other.DefaultTabWidth != 0 {
		c.DefaultTabWidth = other.DefaultTabWidth
	}
	if other.MatchBasenamesAnywhere {
		c.MatchBasenamesAnywhere = true
	}
	if other.NormalizeRelativePaths {
		c.NormalizeRelativePaths = true
	}
}

// Validate checks option values.
func (c *Config) Validate() error {
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	switch c.Format {
	case output.FormatText, output.FormatYAML, output.FormatJSON, output.FormatINI:
	default:
		return fmt.Errorf("%w: output %q", ErrUnsupportedFormat, c.Format)
	}

	if c.DefaultTabWidth == 0 {
		return errors.New("default_tab_width must be positive")
	}

	if _, err := c.Debounce(); err != nil {
		return err
	}

	if _, err := editorconfig.NewResolver(c.ResolverOptions()); err != nil {
		return fmt.Errorf("config_file_name %q: %w", c.ConfigFileName, err)
	}

	return nil
}

// Debounce returns parsed WatchDebounce.
func (c *Config) Debounce() (time.Duration, error) {
	d, err := time.ParseDuration(c.WatchDebounce)
	if err != nil {
		return 0, fmt.Errorf("invalid watch_debounce %q: %w", c.WatchDebounce, err)
	}

	if d < 0 {
		return 0, fmt.Errorf("invalid watch_debounce %q: negative", c.WatchDebounce)
	}

	return d, nil
}

// ResolverOptions returns resolver options derived from configuration.
func (c *Config) ResolverOptions() editorconfig.ResolverOptions {
	return editorconfig.ResolverOptions{
		ConfigFileName:         c.ConfigFileName,
		MatchBasenamesAnywhere: c.MatchBasenamesAnywhere,
	}
}
