// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/staffdesk/staffdesk-tui/internal/model"
)

// EmployeeDetails fetches the full profile for an employee.
func (c *Client) EmployeeDetails(ctx context.Context, employeeID string) (model.User, error) {
	var resp struct {
		User model.User `json:"user"`
	}
	path := "/employee/get-employee-details/" + url.PathEscape(employeeID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return model.User{}, err
	}
	return resp.User, nil
}
