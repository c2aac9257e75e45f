// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "http://localhost:3000/api", cfg.API.BaseURL)
	assert.Equal(t, 15, cfg.API.TimeoutSecs)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().API.BaseURL, cfg.API.BaseURL)
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[api]
base_url = "https://portal.example.com/api"

[ui]
theme = "light"
compact_mode = true
`), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "https://portal.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.True(t, cfg.UI.CompactMode)

	// Unset fields are filled from defaults.
	assert.Equal(t, 15, cfg.API.TimeoutSecs)
}

func TestLoadBadTOMLFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("{not toml"), 0600))

	cfg, err := LoadFromPath(path)
	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, Default().API.BaseURL, cfg.API.BaseURL)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STAFFDESK_API_URL", "https://override.example.com/api")
	t.Setenv("STAFFDESK_THEME", "light")

	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "https://override.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, "light", cfg.UI.Theme)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = "ftp://nope"
	err := cfg.Validate()
	require.Error(t, err)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "api.base_url", verr.Field)

	cfg = Default()
	cfg.UI.Theme = "solarized"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.API.TimeoutSecs = 0
	assert.Error(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.API.BaseURL = "https://portal.example.com/api"
	cfg.UI.CompactMode = true
	require.NoError(t, SaveToPath(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	back, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.API.BaseURL, back.API.BaseURL)
	assert.True(t, back.UI.CompactMode)
}

func TestGlobalSetAndReset(t *testing.T) {
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	cfg := Default()
	cfg.UI.Theme = "light"
	SetGlobal(cfg)
	assert.Equal(t, "light", Global().UI.Theme)
}

func TestWatcherReloadsGlobal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	t.Setenv("STAFFDESK_DATA_DIR", dir)
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"dark\"\n"), 0600))
	require.Equal(t, "dark", Global().UI.Theme)

	var reloads atomic.Int32
	w, err := NewWatcher(path, func() { reloads.Add(1) })
	require.NoError(t, err)
	require.NoError(t, w.Watch())
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"light\"\ncompact_mode = true\n"), 0600))

	assert.Eventually(t, func() bool {
		return Global().UI.Theme == "light" && reloads.Load() > 0
	}, 5*time.Second, 50*time.Millisecond, "global config should pick up the edited file")
	assert.True(t, Global().UI.CompactMode)
}
