// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config manages the client configuration file.
//
// Configuration lives at ~/.staffdesk/config.toml and covers the gateway
// base URL, request timeout, the session database path, and UI theming.
// Values resolve in order: defaults, then the file, then environment
// overrides (STAFFDESK_API_URL, STAFFDESK_DATA_DIR, STAFFDESK_THEME).
//
// # Key Types
//
//   - Config: the full configuration tree with Validate and Save
//
// # Usage
//
//	cfg := config.Global()
//	client := api.NewClient(cfg.API.BaseURL)
//
// A watcher built on fsnotify reloads the global configuration when the
// file changes on disk.
package config
