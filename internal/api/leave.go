// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/staffdesk/staffdesk-tui/internal/model"
)

// MyLeaves fetches the leave requests filed by an employee.
func (c *Client) MyLeaves(ctx context.Context, employeeID string) ([]model.Leave, error) {
	var resp listEnvelope[model.Leave]
	path := "/leave/getMyLeaves/" + url.PathEscape(employeeID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ApplyLeave files a new leave request on behalf of the employee in the
// path. The body carries the employee and manager IDs again; the server
// trusts the path segment.
func (c *Client) ApplyLeave(ctx context.Context, leave model.Leave) error {
	path := "/leave/applyLeave/" + url.PathEscape(leave.EmployeeID)
	return c.do(ctx, http.MethodPost, path, leave, nil)
}

// LeavesForManager fetches every leave request routed to a manager.
func (c *Client) LeavesForManager(ctx context.Context, managerID string) ([]model.Leave, error) {
	var resp struct {
		Leaves []model.Leave `json:"leaves"`
	}
	path := "/leave/getLeavesByManagerId/" + url.PathEscape(managerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Leaves, nil
}

// UpdateLeaveStatus approves or rejects a leave request.
func (c *Client) UpdateLeaveStatus(ctx context.Context, leaveID string, status model.LeaveStatus, managerID string) error {
	body := map[string]string{
		"status":    string(status),
		"managerId": managerID,
	}
	path := "/leave/approveLeaveByManager/" + url.PathEscape(leaveID)
	return c.do(ctx, http.MethodPut, path, body, nil)
}
