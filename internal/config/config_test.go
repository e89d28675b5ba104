// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prebetafinal/epitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.Tables)
	assert.Equal(t, []string{"svg"}, cfg.TextAssetFormats)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.NoColor)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	abs := filepath.Join(dir, "abs.json")
	content := "tables:\n  - tables/site.yaml\n  - " + abs + "\ntext_asset_formats: [svg, csv]\nlog_level: debug\nno_color: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "tables", "site.yaml"), abs}, cfg.Tables)
	assert.Equal(t, []string{"svg", "csv"}, cfg.TextAssetFormats)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
}

func TestLoadConfig_DisableTextAssets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("text_asset_formats: []\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.NotNil(t, cfg.TextAssetFormats)
	assert.Empty(t, cfg.TextAssetFormats)

	c, err := cfg.NewClassifier()
	require.NoError(t, err)

	svg := filepath.Join(t.TempDir(), "logo.svg")
	require.NoError(t, os.WriteFile(svg, []byte("<svg/>"), 0o600))
	assert.True(t, c.IsAsset(svg))
	assert.False(t, c.IsTextFile(svg))
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tables: {oops"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestPrecedence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tables = []string{"from-file.yaml"}
	cfg.LogLevel = "info"

	env := map[string]string{
		EnvTable:       "a.yaml" + string(os.PathListSeparator) + " b.yaml ",
		EnvTextFormats: "svg, csv,,",
		EnvLogLevel:    "error",
	}
	cfg.ApplyEnv(func(key string) string { return env[key] })

	assert.Equal(t, []string{"a.yaml", "b.yaml"}, cfg.Tables)
	assert.Equal(t, []string{"svg", "csv"}, cfg.TextAssetFormats)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.False(t, cfg.NoColor)

	cfg.MergeWithFlags([]string{"flag.yaml"}, nil, "", true)

	assert.Equal(t, []string{"flag.yaml"}, cfg.Tables)
	assert.Equal(t, []string{"svg", "csv"}, cfg.TextAssetFormats)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "verbose"
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.LogLevel = "DEBUG"
	require.NoError(t, cfg.Validate())

	cfg.TextAssetFormats = []string{"svg", " "}
	require.Error(t, cfg.Validate())
}

func TestNewClassifier(t *testing.T) {
	cfg := DefaultConfig()

	c, err := cfg.NewClassifier()
	require.NoError(t, err)
	assert.NotEmpty(t, c.Extensions(epitypes.NaturePage, ""))

	cfg.Tables = []string{filepath.Join(t.TempDir(), "missing.yaml")}
	_, err = cfg.NewClassifier()
	require.ErrorIs(t, err, epitypes.ErrNotFound)
}
