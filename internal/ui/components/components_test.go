// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-tui/internal/model"
	"github.com/staffdesk/staffdesk-tui/internal/nav"
)

func TestMenuNavigationWraps(t *testing.T) {
	m := NewMenu(nav.Filter(model.RoleEmployee))
	require.Len(t, m.Items, 3)

	assert.Equal(t, 0, m.Selected)
	m.Prev()
	assert.Equal(t, 2, m.Selected)
	m.Next()
	assert.Equal(t, 0, m.Selected)

	d, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, nav.RouteDashboard, d.Route)
}

func TestMenuSetItemsClampsSelection(t *testing.T) {
	m := NewMenu(nav.Filter(model.RoleAdmin))
	m.Selected = 5
	m.SetItems(nav.Filter(model.RoleEmployee))
	assert.Equal(t, 0, m.Selected)
}

func TestMenuSelectByRoute(t *testing.T) {
	m := NewMenu(nav.Filter(model.RoleAdmin))
	m.Select(nav.RouteDepartments)
	d, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, nav.RouteDepartments, d.Route)
}

func TestStatusBarMessages(t *testing.T) {
	s := NewStatusBar()
	s.UserName = "Ana"
	s.Role = "HR"

	s.SetError(errors.New("boom"))
	assert.True(t, s.IsError)
	assert.Contains(t, s.View(), "Ana (HR)")

	s.SetMessage("saved")
	assert.False(t, s.IsError)
	assert.Equal(t, "saved", s.Message)

	s.Clear()
	assert.Empty(t, s.Message)

	s.SetError(nil)
	assert.False(t, s.IsError)
}
