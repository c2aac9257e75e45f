// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nav decides which destinations the current user may see and
// whether protected routes may render. The destination table is fixed;
// visibility is the intersection of each entry's allowed roles with the
// session's role, with the role defaulting to Employee when no user is
// present.
package nav

import (
	"github.com/staffdesk/staffdesk-tui/internal/model"
)

// =============================================================================
// ROUTES
// =============================================================================

// Route identifies a navigable view.
type Route string

const (
	RouteLanding       Route = "/"
	RouteDashboard     Route = "/home"
	RouteProfile       Route = "/profile"
	RouteEmployees     Route = "/users"
	RouteRoles         Route = "/roles"
	RouteDepartments   Route = "/departments"
	RouteLeaveRequests Route = "/leave-requests"
	RouteApplyLeave    Route = "/apply-leave"
	RouteRegister      Route = "/register"
)

// LandingRoute is where a logged-out user ends up.
const LandingRoute = RouteLanding

// Destination is one entry in the navigation menu.
type Destination struct {
	Route Route
	Label string
	Roles []model.Role
}

// Destinations is the full menu in display order. Filtering never reorders
// entries.
var Destinations = []Destination{
	{RouteDashboard, "Dashboard", []model.Role{model.RoleAdmin, model.RoleHR, model.RoleManager, model.RoleEmployee}},
	{RouteProfile, "Profile", []model.Role{model.RoleAdmin, model.RoleHR, model.RoleManager, model.RoleEmployee}},
	{RouteEmployees, "Employees", []model.Role{model.RoleAdmin}},
	{RouteRoles, "Roles", []model.Role{model.RoleAdmin}},
	{RouteDepartments, "Departments", []model.Role{model.RoleAdmin, model.RoleHR}},
	{RouteLeaveRequests, "Leave Requests", []model.Role{model.RoleAdmin, model.RoleHR, model.RoleManager}},
	{RouteApplyLeave, "Apply Leave", []model.Role{model.RoleEmployee}},
}

// AllowsRole reports whether the destination is visible to the given role.
func (d Destination) AllowsRole(role model.Role) bool {
	for _, r := range d.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Filter returns the destinations visible to role, preserving table order.
func Filter(role model.Role) []Destination {
	out := make([]Destination, 0, len(Destinations))
	for _, d := range Destinations {
		if d.AllowsRole(role) {
			out = append(out, d)
		}
	}
	return out
}

// =============================================================================
// GUARD
// =============================================================================

// Session is the slice of session state the guard needs.
type Session interface {
	IsAuthenticated() bool
	Role() model.Role
}

// Guard answers render decisions for protected routes.
type Guard struct {
	session Session
}

// NewGuard creates a Guard over the given session.
func NewGuard(s Session) *Guard {
	return &Guard{session: s}
}

// CanRender reports whether the route may be shown. The landing and
// register routes are always open; everything else requires an
// authenticated session whose role the destination allows.
func (g *Guard) CanRender(route Route) bool {
	if route == RouteLanding || route == RouteRegister {
		return true
	}
	if !g.session.IsAuthenticated() {
		return false
	}
	for _, d := range Destinations {
		if d.Route == route {
			return d.AllowsRole(g.session.Role())
		}
	}
	return false
}

// Visible returns the menu for the session's current role.
func (g *Guard) Visible() []Destination {
	return Filter(g.session.Role())
}
