// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/staffdesk/staffdesk-tui/internal/util"
)

// =============================================================================
// TYPES
// =============================================================================

// Config is the full client configuration.
type Config struct {
	API     APIConfig     `toml:"api"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// APIConfig configures the portal gateway connection.
type APIConfig struct {
	// BaseURL is the gateway root, e.g. "http://localhost:3000/api".
	BaseURL string `toml:"base_url"`

	// TimeoutSecs is the per-request timeout in seconds.
	TimeoutSecs int `toml:"timeout_secs"`
}

// StorageConfig configures local persistence.
type StorageConfig struct {
	// Path is the session database location. Empty means the default
	// under the data directory.
	Path string `toml:"path"`
}

// UIConfig configures terminal rendering.
type UIConfig struct {
	Theme       string `toml:"theme"`
	CompactMode bool   `toml:"compact_mode"`
}

// ValidThemes lists the accepted UI.Theme values.
var ValidThemes = []string{"dark", "light"}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:     "http://localhost:3000/api",
			TimeoutSecs: 15,
		},
		UI: UIConfig{
			Theme: "dark",
		},
	}
}

// Dir returns the data directory (~/.staffdesk), honoring
// STAFFDESK_DATA_DIR.
func Dir() (string, error) {
	if dir := os.Getenv("STAFFDESK_DATA_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".staffdesk"), nil
}

// Path returns the configuration file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file, filling defaults and applying
// environment overrides. A missing file is not an error; defaults apply.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from an explicit path.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		cfg = Default()
	case err != nil:
		return Default(), fmt.Errorf("failed to read config: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config: %w", err)
		}
	}

	fillDefaults(cfg)
	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// fillDefaults populates zero-valued fields from Default.
func fillDefaults(cfg *Config) {
	def := Default()
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = def.API.BaseURL
	}
	if cfg.API.TimeoutSecs <= 0 {
		cfg.API.TimeoutSecs = def.API.TimeoutSecs
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = def.UI.Theme
	}
}

// ApplyEnvOverrides applies environment variables on top of file values.
func (c *Config) ApplyEnvOverrides() {
	if url := os.Getenv("STAFFDESK_API_URL"); url != "" {
		c.API.BaseURL = url
	}
	if theme := os.Getenv("STAFFDESK_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if dir := os.Getenv("STAFFDESK_DATA_DIR"); dir != "" && c.Storage.Path == "" {
		c.Storage.Path = filepath.Join(dir, "session.db")
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return ValidationError{Field: "api.base_url", Message: "must start with http:// or https://"}
	}
	if c.API.TimeoutSecs <= 0 {
		return ValidationError{Field: "api.timeout_secs", Message: "must be positive"}
	}
	valid := false
	for _, t := range ValidThemes {
		if c.UI.Theme == t {
			valid = true
			break
		}
	}
	if !valid {
		return ValidationError{Field: "ui.theme", Message: fmt.Sprintf("must be one of %v", ValidThemes)}
	}
	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the default path with 0600 permissions.
// The config never holds secrets, but the data directory is private anyway.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the configuration to an explicit path.
func SaveToPath(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// =============================================================================
// GLOBAL INSTANCE (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration, loading it on first access.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal re-reads the configuration from disk.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal replaces the global configuration. The lazy loader is marked
// done so a later Global call cannot overwrite the injected value.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting clears the global state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
