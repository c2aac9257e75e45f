// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides the persistent session store: a small SQLite-backed
// string key/value table under the user's data directory. It survives
// process restarts and is shared by every process pointed at the same file,
// with last-writer-wins semantics per key.
//
// # Key Types
//
//   - Store: the open database handle with Get/Set/Delete/Clear/Keys
//
// # Well-Known Keys
//
// The session layer persists under KeyToken and KeyUser, and additionally
// writes KeyRole, KeyEmployeeID and KeyManagerID at login for call sites
// that predate the serialized-user scheme. Clear wipes every row, not just
// the well-known ones.
//
// # Usage
//
//	st, err := store.OpenDefault()
//	if err != nil { ... }
//	defer st.Close()
//	st.Set(store.KeyToken, token)
package store
