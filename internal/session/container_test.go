// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-tui/internal/model"
	"github.com/staffdesk/staffdesk-tui/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestRestoreEmptyStore(t *testing.T) {
	c := New(openTestStore(t))
	assert.True(t, c.IsLoading())

	require.NoError(t, c.Restore())
	assert.False(t, c.IsLoading())
	assert.False(t, c.IsAuthenticated())
	assert.Nil(t, c.Current())
}

func TestRestoreRoundTrip(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.Set(store.KeyToken, "t1"))
	require.NoError(t, st.Set(store.KeyUser,
		`{"id":"emp-1","fullName":"Ana","email":"ana@example.com","role":"Manager"}`))

	c := New(st)
	require.NoError(t, c.Restore())

	assert.False(t, c.IsLoading())
	require.True(t, c.IsAuthenticated())
	u := c.Current()
	require.NotNil(t, u)
	assert.Equal(t, "emp-1", u.ID)
	assert.Equal(t, model.RoleManager, u.Role)
	assert.Equal(t, "t1", c.Token())
}

func TestRestoreCorruptUser(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.Set(store.KeyToken, "t1"))
	require.NoError(t, st.Set(store.KeyUser, "{not json"))

	c := New(st)
	require.NoError(t, c.Restore())

	assert.False(t, c.IsAuthenticated())
	assert.False(t, c.IsLoading())

	// Both broken entries are gone.
	_, ok, err := st.Get(store.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = st.Get(store.KeyUser)
	require.NoError(t, err)
	assert.False(t, ok)

	// A second restore is a no-op and does not resurrect anything.
	require.NoError(t, c.Restore())
	assert.False(t, c.IsAuthenticated())
}

func TestRestoreTokenWithoutUser(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.Set(store.KeyToken, "t1"))

	c := New(st)
	require.NoError(t, c.Restore())
	assert.False(t, c.IsAuthenticated())
}

func TestRestoreRunsOnce(t *testing.T) {
	st := openTestStore(t)
	c := New(st)
	require.NoError(t, c.Restore())

	// A session written after the first restore is not picked up.
	require.NoError(t, st.Set(store.KeyToken, "t1"))
	require.NoError(t, st.Set(store.KeyUser, `{"id":"emp-1","role":"Employee"}`))
	require.NoError(t, c.Restore())
	assert.False(t, c.IsAuthenticated())
}

func TestLoginImmediatelyObservable(t *testing.T) {
	st := openTestStore(t)
	c := New(st)
	require.NoError(t, c.Restore())

	u := model.User{
		ID:        "emp-7",
		FullName:  "Ravi Kumar",
		Email:     "a@x.com625ad",
		Role:      model.RoleManager,
		ManagerID: "mgr-2",
	}
	require.NoError(t, c.Login(u, "t1"))

	assert.True(t, c.IsAuthenticated())
	assert.False(t, c.IsLoading())
	assert.Equal(t, model.RoleManager, c.Role())
	assert.Equal(t, "t1", c.Token())

	// Legacy keys are written alongside the serialized user.
	for key, want := range map[string]string{
		store.KeyRole:       "Manager",
		store.KeyEmployeeID: "emp-7",
		store.KeyManagerID:  "mgr-2",
	} {
		v, ok, err := st.Get(key)
		require.NoError(t, err)
		require.True(t, ok, key)
		assert.Equal(t, want, v, key)
	}
}

func TestLoginSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	st, err := store.Open(path)
	require.NoError(t, err)

	c := New(st)
	require.NoError(t, c.Restore())
	require.NoError(t, c.Login(model.User{ID: "emp-1", Role: model.RoleHR}, "t9"))
	require.NoError(t, st.Close())

	st2, err := store.Open(path)
	require.NoError(t, err)
	defer st2.Close()

	c2 := New(st2)
	require.NoError(t, c2.Restore())
	require.True(t, c2.IsAuthenticated())
	assert.Equal(t, model.RoleHR, c2.Current().Role)
	assert.Equal(t, "t9", c2.Token())
}

func TestLogoutWipesEverything(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.Set("unrelated", "survivor?"))

	c := New(st)
	require.NoError(t, c.Restore())
	require.NoError(t, c.Login(model.User{ID: "emp-1", Role: model.RoleAdmin}, "t1"))

	require.NoError(t, c.Logout())
	assert.False(t, c.IsAuthenticated())
	assert.Nil(t, c.Current())

	// Logout wipes the whole store, not just session keys.
	keys, err := st.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	// Idempotent.
	require.NoError(t, c.Logout())
	assert.False(t, c.IsAuthenticated())
}

func TestSetUserRewritesStoredCopy(t *testing.T) {
	st := openTestStore(t)
	c := New(st)
	require.NoError(t, c.Restore())
	require.NoError(t, c.Login(model.User{ID: "emp-1", FullName: "Old", Role: model.RoleEmployee}, "t1"))

	require.NoError(t, c.SetUser(model.User{ID: "emp-1", FullName: "New", Role: model.RoleEmployee}))
	assert.Equal(t, "New", c.Current().FullName)

	raw, ok, err := st.Get(store.KeyUser)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"New"`)
}

func TestRoleDefaultsToEmployee(t *testing.T) {
	c := New(openTestStore(t))
	require.NoError(t, c.Restore())
	assert.Equal(t, model.RoleEmployee, c.Role())
}
