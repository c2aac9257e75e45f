// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("Admin"))
	assert.Equal(t, RoleHR, ParseRole("HR"))
	assert.Equal(t, RoleManager, ParseRole("Manager"))
	assert.Equal(t, RoleEmployee, ParseRole("Employee"))

	// Unknown and empty inputs fall back to the least privileged role.
	assert.Equal(t, RoleEmployee, ParseRole(""))
	assert.Equal(t, RoleEmployee, ParseRole("root"))
	assert.Equal(t, RoleEmployee, ParseRole("admin")) // case sensitive
}

func TestEffectiveRole(t *testing.T) {
	var nilUser *User
	assert.Equal(t, RoleEmployee, nilUser.EffectiveRole())

	u := &User{Role: RoleManager}
	assert.Equal(t, RoleManager, u.EffectiveRole())

	u.Role = Role("bogus")
	assert.Equal(t, RoleEmployee, u.EffectiveRole())
}

func TestUserJSONRoundTrip(t *testing.T) {
	u := User{
		ID:        "emp-42",
		FullName:  "Dana Reyes",
		Email:     "dana@example.com",
		Role:      RoleHR,
		ManagerID: "mgr-7",
	}
	raw, err := json.Marshal(u)
	require.NoError(t, err)

	var back User
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, u, back)
}

func TestAttendanceFindByDate(t *testing.T) {
	records := []AttendanceRecord{
		{Date: "2025-06-01", CheckIn: "09:05", CheckOut: "17:30"},
		{Date: "2025-06-02", CheckIn: "09:12"},
	}

	r, ok := FindByDate(records, "2025-06-02")
	require.True(t, ok)
	assert.True(t, r.CheckedIn())
	assert.False(t, r.CheckedOut())

	_, ok = FindByDate(records, "2025-06-03")
	assert.False(t, ok)
}

func TestLeavePending(t *testing.T) {
	assert.True(t, Leave{}.Pending())
	assert.True(t, Leave{Status: LeavePending}.Pending())
	assert.False(t, Leave{Status: LeaveApproved}.Pending())
	assert.False(t, Leave{Status: LeaveRejected}.Pending())
}

func TestAnnouncementVisibleTo(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)
	past := now.Add(-48 * time.Hour)

	all := Announcement{Visibility: VisibilityAll, ExpiryDate: future}
	assert.True(t, all.VisibleTo(RoleEmployee, now))
	assert.True(t, all.VisibleTo(RoleAdmin, now))

	mgrOnly := Announcement{Visibility: "Manager", ExpiryDate: future}
	assert.True(t, mgrOnly.VisibleTo(RoleManager, now))
	assert.False(t, mgrOnly.VisibleTo(RoleEmployee, now))

	expired := Announcement{Visibility: VisibilityAll, ExpiryDate: past}
	assert.False(t, expired.VisibleTo(RoleEmployee, now))

	// Expiry applies to role-scoped notices too.
	expiredMgr := Announcement{Visibility: "Manager", ExpiryDate: past}
	assert.False(t, expiredMgr.VisibleTo(RoleManager, now))
}

func TestFilterAnnouncementsPreservesOrder(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)

	in := []Announcement{
		{Title: "a", Visibility: VisibilityAll, ExpiryDate: future},
		{Title: "b", Visibility: "Admin", ExpiryDate: future},
		{Title: "c", Visibility: VisibilityAll, ExpiryDate: future},
	}
	out := FilterAnnouncements(in, RoleEmployee, now)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Title)
	assert.Equal(t, "c", out[1].Title)
}

func TestNewDepartment(t *testing.T) {
	d := NewDepartment("Engineering", "builds things")
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "Engineering", d.Name)

	d2 := NewDepartment("Engineering", "builds things")
	assert.NotEqual(t, d.ID, d2.ID)
}
