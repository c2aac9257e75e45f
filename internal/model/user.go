// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// ROLES
// =============================================================================

// Role represents a user's access level in the portal.
type Role string

const (
	// RoleAdmin has full access including employee and role management.
	RoleAdmin Role = "Admin"

	// RoleHR can manage departments and review leave requests.
	RoleHR Role = "HR"

	// RoleManager can review and approve leave requests for their reports.
	RoleManager Role = "Manager"

	// RoleEmployee is the least privileged role: own dashboard, own leaves.
	RoleEmployee Role = "Employee"
)

// AllRoles lists every valid role in display order.
var AllRoles = []Role{RoleAdmin, RoleHR, RoleManager, RoleEmployee}

// ParseRole maps a role string to a Role. Unknown or empty input defaults
// to RoleEmployee so that a missing role never grants extra access.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleHR, RoleManager, RoleEmployee:
		return Role(s)
	default:
		return RoleEmployee
	}
}

// Valid reports whether the role is one of the four enumerated values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// String returns the role's wire representation.
func (r Role) String() string {
	return string(r)
}

// =============================================================================
// USER
// =============================================================================

// User represents an authenticated principal as returned by the auth
// gateway. ManagerID is a lookup key referencing another user, not an
// owned reference; it is empty for users without a manager.
type User struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	ManagerID string `json:"managerId,omitempty"`

	// Optional profile fields shown on the dashboard. The API omits
	// them for accounts that never filled in their profile.
	Position          string `json:"position,omitempty"`
	Address           string `json:"address,omitempty"`
	CompanyExperience string `json:"companyExperience,omitempty"`
	TotalExperience   string `json:"totalExperience,omitempty"`
}

// EffectiveRole returns the user's role, defaulting to RoleEmployee for
// a nil user or an out-of-range role value.
func (u *User) EffectiveRole() Role {
	if u == nil || !u.Role.Valid() {
		return RoleEmployee
	}
	return u.Role
}
