// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// LeaveStatus is the approval state of a leave request.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "Pending"
	LeaveApproved LeaveStatus = "Approved"
	LeaveRejected LeaveStatus = "Rejected"
)

// LeaveTypes lists the selectable categories on the apply-leave form.
var LeaveTypes = []string{"Sick Leave", "Casual Leave", "Annual Leave", "Half Day"}

// Leave is a leave request routed from an employee to their manager.
type Leave struct {
	ID         string      `json:"_id,omitempty"`
	EmployeeID string      `json:"employeeId"`
	ManagerID  string      `json:"managerId"`
	LeaveType  string      `json:"leaveType"`
	FromDate   string      `json:"fromDate"`
	ToDate     string      `json:"toDate"`
	Reason     string      `json:"reason"`
	Status     LeaveStatus `json:"status,omitempty"`
	AppliedAt  string      `json:"appliedAt,omitempty"`
}

// Pending reports whether the request is still awaiting a decision.
func (l Leave) Pending() bool {
	return l.Status == "" || l.Status == LeavePending
}
