// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSetGetDelete(t *testing.T) {
	st := openTestStore(t)

	_, ok, err := st.Get(KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.Set(KeyToken, "t1"))
	v, ok, err := st.Get(KeyToken)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "t1", v)

	// Last writer wins.
	require.NoError(t, st.Set(KeyToken, "t2"))
	v, _, err = st.Get(KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "t2", v)

	require.NoError(t, st.Delete(KeyToken))
	_, ok, err = st.Get(KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is fine.
	require.NoError(t, st.Delete(KeyToken))
}

func TestClearWipesEverything(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.Set(KeyToken, "t1"))
	require.NoError(t, st.Set(KeyUser, `{"id":"e1"}`))
	require.NoError(t, st.Set("unrelated", "x"))

	require.NoError(t, st.Clear())

	keys, err := st.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestKeysSorted(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.Set("b", "2"))
	require.NoError(t, st.Set("a", "1"))
	require.NoError(t, st.Set("c", "3"))

	keys, err := st.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Set(KeyUser, `{"id":"e1"}`))
	require.NoError(t, st.Close())

	st2, err := Open(path)
	require.NoError(t, err)
	defer st2.Close()

	v, ok, err := st2.Get(KeyUser)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"id":"e1"}`, v)
}

func TestClosedStore(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.Close())

	_, _, err := st.Get(KeyToken)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, st.Set(KeyToken, "x"), ErrClosed)
	assert.ErrorIs(t, st.Clear(), ErrClosed)

	// Close is idempotent.
	assert.NoError(t, st.Close())
}
