// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

// Package config resolves epitypes CLI configuration.
//
// Precedence, highest first: command-line flags, environment variables,
// the YAML config file, built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prebetafinal/epitypes"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvTable       = "EPITYPES_TABLE"
	EnvTextFormats = "EPITYPES_TEXT_FORMATS"
	EnvLogLevel    = "EPITYPES_LOG_LEVEL"
	EnvNoColor     = "NO_COLOR"
)

// Config represents epitypes CLI configuration options
type Config struct {
	// Tables are classification table files merged in order.
	// Empty means the built-in table.
	Tables []string `yaml:"tables"`

	// TextAssetFormats are asset formats reported as text
	TextAssetFormats []string `yaml:"text_asset_formats"`

	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// NoColor disables coloured output
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Tables:           nil,
		TextAssetFormats: append([]string(nil), epitypes.DefaultTextAssetFormats...),
		LogLevel:         "warn",
		NoColor:          false,
	}
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/epitypes/config.yaml or its platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "epitypes", "config.yaml")
}

// LoadConfig loads configuration from the specified file path.
// A missing file yields the default configuration; a malformed one is an error.
// Relative table paths are resolved against the config file directory.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if len(fileCfg.Tables) > 0 {
		base := filepath.Dir(path)
		cfg.Tables = make([]string, 0, len(fileCfg.Tables))
		for _, table := range fileCfg.Tables {
			if !filepath.IsAbs(table) {
				table = filepath.Join(base, table)
			}

			cfg.Tables = append(cfg.Tables, table)
		}
	}

	// "text_asset_formats: []" turns text asset detection off
	if fileCfg.TextAssetFormats != nil {
		cfg.TextAssetFormats = fileCfg.TextAssetFormats
	}

	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}

	if fileCfg.NoColor {
		cfg.NoColor = true
	}

	return cfg, nil
}

// ApplyEnv overrides configuration with environment variables.
// EPITYPES_TABLE and EPITYPES_TEXT_FORMATS are path-list and comma separated.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := getenv(EnvTable); v != "" {
		c.Tables = splitList(v, string(os.PathListSeparator))
	}

	if v := getenv(EnvTextFormats); v != "" {
		c.TextAssetFormats = splitList(v, ",")
	}

	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	if getenv(EnvNoColor) != "" {
		c.NoColor = true
	}
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-empty flag values override configuration values.
func (c *Config) MergeWithFlags(tables []string, textFormats []string, logLevel string, noColor bool) {
	if len(tables) > 0 {
		c.Tables = tables
	}

	if len(textFormats) > 0 {
		c.TextAssetFormats = textFormats
	}

	if logLevel != "" {
		c.LogLevel = logLevel
	}

	if noColor {
		c.NoColor = true
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}

	for _, format := range c.TextAssetFormats {
		if strings.TrimSpace(format) == "" {
			return fmt.Errorf("text_asset_formats cannot contain empty names")
		}
	}

	return nil
}

// LoadTable loads and merges the configured tables, or the built-in table when none is set.
func (c *Config) LoadTable() (*epitypes.Table, error) {
	if len(c.Tables) == 0 {
		return epitypes.DefaultTable()
	}

	return epitypes.LoadFiles(c.Tables...)
}

// NewClassifier builds a host file system classifier from the configuration.
func (c *Config) NewClassifier() (*epitypes.Classifier, error) {
	table, err := c.LoadTable()
	if err != nil {
		return nil, err
	}

	return epitypes.NewClassifier(table, epitypes.ClassifierOptions{
		TextAssetFormats: c.TextAssetFormats,
	})
}

func splitList(s string, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}
