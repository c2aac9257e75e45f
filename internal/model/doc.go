// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model defines the domain types for the staffdesk portal client.
//
// These types mirror the JSON documents returned by the portal REST API:
// users, attendance records, leave requests, announcements and departments.
// The package carries no portal logic beyond simple predicates, so every
// other package can import it freely.
//
// # Key Types
//
//   - User: an authenticated principal with a Role
//   - Role: enumerated access level (Admin, HR, Manager, Employee)
//   - AttendanceRecord: one day of check-in/check-out state
//   - Leave: a leave request and its approval status
//   - Announcement: a notice with role-scoped visibility and expiry
//
// # Role Defaulting
//
// Any unknown or empty role string parses to RoleEmployee, the least
// privileged role. Consumers never see an out-of-range role value.
package model
