// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/staffdesk/staffdesk-tui/internal/model"
	"github.com/staffdesk/staffdesk-tui/internal/store"
)

// =============================================================================
// CONTAINER
// =============================================================================

// Container is the authoritative session state. All methods are safe for
// concurrent use; API continuations arrive from goroutines outside the
// UI event loop.
type Container struct {
	mu sync.RWMutex

	st       *store.Store
	user     *model.User
	loading  bool
	restored bool
}

// New creates a Container bound to the given store. The container starts
// in the loading state until Restore runs.
func New(st *store.Store) *Container {
	return &Container{st: st, loading: true}
}

// =============================================================================
// LIFECYCLE
// =============================================================================

// Restore rehydrates the session from the store. It runs its logic exactly
// once; later calls are no-ops. A corrupt stored user is deleted together
// with the token so the next start sees a clean unauthenticated state.
// Restore always leaves the container out of the loading state.
func (c *Container) Restore() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.restored {
		return nil
	}
	c.restored = true
	defer func() { c.loading = false }()

	token, hasToken, err := c.st.Get(store.KeyToken)
	if err != nil {
		return fmt.Errorf("failed to read stored token: %w", err)
	}
	raw, hasUser, err := c.st.Get(store.KeyUser)
	if err != nil {
		return fmt.Errorf("failed to read stored user: %w", err)
	}
	if !hasToken || token == "" || !hasUser {
		return nil
	}

	var u model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		// Fail safe: drop the broken session rather than carrying it.
		c.st.Delete(store.KeyUser)
		c.st.Delete(store.KeyToken)
		return nil
	}

	c.user = &u
	return nil
}

// Login installs the authenticated user and persists the full session:
// the token, the serialized user and the legacy per-field keys. In-memory
// state is installed before any store write, so the new session is
// observable immediately even if persistence fails.
func (c *Container) Login(u model.User, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.user = &u
	c.loading = false

	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}
	writes := []struct{ key, value string }{
		{store.KeyToken, token},
		{store.KeyUser, string(raw)},
		{store.KeyRole, u.Role.String()},
		{store.KeyEmployeeID, u.ID},
		{store.KeyManagerID, u.ManagerID},
	}
	for _, w := range writes {
		if err := c.st.Set(w.key, w.value); err != nil {
			return fmt.Errorf("failed to persist session: %w", err)
		}
	}
	return nil
}

// Logout clears the in-memory user and wipes the entire store. Calling it
// while already logged out is a no-op that still reports success.
func (c *Container) Logout() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.user = nil
	if err := c.st.Clear(); err != nil {
		return fmt.Errorf("failed to clear session store: %w", err)
	}
	return nil
}

// SetUser replaces the current user and rewrites the stored copy. State
// flows memory to storage only; nothing reads the store after Restore.
func (c *Container) SetUser(u model.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.user = &u
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}
	if err := c.st.Set(store.KeyUser, string(raw)); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}
	return nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Current returns a copy of the logged-in user, or nil when unauthenticated.
func (c *Container) Current() *model.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// IsAuthenticated reports whether a user is logged in.
func (c *Container) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user != nil
}

// IsLoading reports whether the one-time restore has not finished yet.
func (c *Container) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Role returns the current user's role, defaulting to Employee when no
// user is present.
func (c *Container) Role() model.Role {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user.EffectiveRole()
}

// ClearToken deletes only the stored token, leaving the user entry in
// place. Used when the server rejects the token as expired: the next
// restart starts unauthenticated, while the current view keeps whatever
// user it was showing.
func (c *Container) ClearToken() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.Delete(store.KeyToken)
}

// Token reads the bearer token from the store. Empty when absent.
func (c *Container) Token() string {
	c.mu.RLock()
	st := c.st
	c.mu.RUnlock()
	v, _, err := st.Get(store.KeyToken)
	if err != nil {
		return ""
	}
	return v
}
