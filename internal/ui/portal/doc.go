// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package portal implements the Bubble Tea application: one root Model
// holding the session, the navigation guard, the API client, and a page
// enum with per-page sub-state.
//
// # Key Types
//
//   - Model: the root tea.Model, created by New and run by main
//
// # Data Flow
//
// API calls run inside tea.Cmd goroutines and come back as typed messages.
// Failures land in the status bar; nothing is retried automatically. The
// live elapsed-time indicator on the dashboard drives itself with
// per-second ticks that carry a generation number, so a superseded timer
// never updates the display.
package portal
