// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-tui/internal/store"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		argv []string
		want Command
	}{
		{nil, CmdTUI},
		{[]string{"tui"}, CmdTUI},
		{[]string{"version"}, CmdVersion},
		{[]string{"--version"}, CmdVersion},
		{[]string{"config"}, CmdConfig},
		{[]string{"config", "path"}, CmdConfig},
		{[]string{"logout"}, CmdLogout},
		{[]string{"help"}, CmdHelp},
		{[]string{"bogus"}, CmdUnknown},
	}
	for _, tt := range tests {
		got, _ := ParseArgs(tt.argv)
		assert.Equal(t, tt.want, got, "%v", tt.argv)
	}
}

func TestParseArgsPassesRest(t *testing.T) {
	cmd, rest := ParseArgs([]string{"config", "path"})
	assert.Equal(t, CmdConfig, cmd)
	assert.Equal(t, []string{"path"}, rest)
}

func TestHandleLogoutClearsStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	st, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Set(store.KeyToken, "t1"))
	require.NoError(t, st.Close())

	require.NoError(t, HandleLogout(path))

	st2, err := store.Open(path)
	require.NoError(t, err)
	defer st2.Close()
	keys, err := st2.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}
