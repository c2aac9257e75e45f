// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the in-memory authentication state and keeps it in
// sync with the persistent store. It is the single source of truth for
// "who is logged in".
//
// # Key Types
//
//   - Container: the mutex-guarded session state with Restore/Login/Logout
//
// # Lifecycle
//
// A Container starts in the loading state. Restore runs exactly once at
// startup, rehydrating the user from the store when both the token and the
// serialized user are present; a corrupt user entry is deleted along with
// the token rather than surfacing a broken session. After Restore (success
// or not), loading is false for the remainder of the process.
//
// Login installs the user in memory and persists the token, the serialized
// user and the legacy per-field keys in one step. Logout clears the memory
// state and wipes the entire store. Both are idempotent.
package session
