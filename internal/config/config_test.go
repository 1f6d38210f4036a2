// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/editorconfig/internal/output"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".editorconfig", cfg.ConfigFileName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, output.FormatText, cfg.Format)
	assert.Equal(t, uint32(8), cfg.DefaultTabWidth)
	assert.False(t, cfg.MatchBasenamesAnywhere)
	assert.False(t, cfg.NormalizeRelativePaths)
	require.NoError(t, cfg.Validate())

	d, err := cfg.Debounce()
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, d)
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "ecapply.yaml", `
format: json
log_level: debug
default_tab_width: 4
match_basenames_anywhere: true
watch_debounce: 250ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, output.FormatJSON, cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint32(4), cfg.DefaultTabWidth)
	assert.True(t, cfg.MatchBasenamesAnywhere)
	assert.Equal(t, ".editorconfig", cfg.ConfigFileName, "unset fields keep defaults")

	d, err := cfg.Debounce()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "ecapply.toml", `
config_file_name = ".ecrc"
format = "ini"
normalize_relative_paths = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ".ecrc", cfg.ConfigFileName)
	assert.Equal(t, output.FormatINI, cfg.Format)
	assert.True(t, cfg.NormalizeRelativePaths)
	assert.Equal(t, ".ecrc", cfg.ResolverOptions().ConfigFileName)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]struct {
		name    string
		content string
	}{
		"unknown extension": {"ecapply.json", `{}`},
		"bad yaml":          {"ecapply.yaml", "format: [json"},
		"bad toml":          {"ecapply.toml", "format = "},
		"bad format":        {"ecapply.yaml", "format: xml"},
		"bad level":         {"ecapply.yaml", "log_level: loud"},
		"bad debounce":      {"ecapply.yaml", "watch_debounce: soon"},
		"bad file name":     {"ecapply.yaml", "config_file_name: ../up"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, tc.name, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestDefaultPathFromEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, " /etc/ecapply.yaml ")
	assert.Equal(t, "/etc/ecapply.yaml", DefaultPath())
}
