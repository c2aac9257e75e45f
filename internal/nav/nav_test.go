// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-tui/internal/model"
)

type fakeSession struct {
	authed bool
	role   model.Role
}

func (f fakeSession) IsAuthenticated() bool { return f.authed }
func (f fakeSession) Role() model.Role      { return f.role }

func routes(ds []Destination) []Route {
	out := make([]Route, len(ds))
	for i, d := range ds {
		out[i] = d.Route
	}
	return out
}

func TestFilterByRole(t *testing.T) {
	tests := []struct {
		role model.Role
		want []Route
	}{
		{model.RoleAdmin, []Route{RouteDashboard, RouteProfile, RouteEmployees, RouteRoles, RouteDepartments, RouteLeaveRequests}},
		{model.RoleHR, []Route{RouteDashboard, RouteProfile, RouteDepartments, RouteLeaveRequests}},
		{model.RoleManager, []Route{RouteDashboard, RouteProfile, RouteLeaveRequests}},
		{model.RoleEmployee, []Route{RouteDashboard, RouteProfile, RouteApplyLeave}},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, routes(Filter(tt.role)))
		})
	}
}

func TestFilterPreservesTableOrder(t *testing.T) {
	// Admin sees the most entries; their order must match the table's.
	got := Filter(model.RoleAdmin)
	var fromTable []Destination
	for _, d := range Destinations {
		if d.AllowsRole(model.RoleAdmin) {
			fromTable = append(fromTable, d)
		}
	}
	require.Equal(t, fromTable, got)
}

func TestGuardUnauthenticated(t *testing.T) {
	g := NewGuard(fakeSession{authed: false, role: model.RoleEmployee})

	assert.True(t, g.CanRender(RouteLanding))
	assert.True(t, g.CanRender(RouteRegister))
	assert.False(t, g.CanRender(RouteDashboard))
	assert.False(t, g.CanRender(RouteLeaveRequests))
}

func TestGuardRoleGating(t *testing.T) {
	emp := NewGuard(fakeSession{authed: true, role: model.RoleEmployee})
	assert.True(t, emp.CanRender(RouteDashboard))
	assert.True(t, emp.CanRender(RouteApplyLeave))
	assert.False(t, emp.CanRender(RouteEmployees))
	assert.False(t, emp.CanRender(RouteDepartments))

	hr := NewGuard(fakeSession{authed: true, role: model.RoleHR})
	assert.True(t, hr.CanRender(RouteDepartments))
	assert.True(t, hr.CanRender(RouteLeaveRequests))
	assert.False(t, hr.CanRender(RouteRoles))
	assert.False(t, hr.CanRender(RouteApplyLeave))
}

func TestGuardUnknownRoute(t *testing.T) {
	g := NewGuard(fakeSession{authed: true, role: model.RoleAdmin})
	assert.False(t, g.CanRender(Route("/nope")))
}

func TestVisibleUsesSessionRole(t *testing.T) {
	g := NewGuard(fakeSession{authed: true, role: model.RoleManager})
	assert.Equal(t, []Route{RouteDashboard, RouteProfile, RouteLeaveRequests}, routes(g.Visible()))
}
