// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/staffdesk/staffdesk-tui/internal/model"
)

// listEnvelope is the shared shape of list endpoints.
type listEnvelope[T any] struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
	Data    []T    `json:"data"`
}

// MyAttendance fetches the full attendance history for an employee.
func (c *Client) MyAttendance(ctx context.Context, employeeID string) ([]model.AttendanceRecord, error) {
	var resp listEnvelope[model.AttendanceRecord]
	path := "/attendance/my-attendance/" + url.PathEscape(employeeID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CheckIn records today's check-in. On this endpoint a 400 response means
// the employee has already checked in today, so it is translated to
// ErrAlreadyCheckedIn; errors.Is detects it.
func (c *Client) CheckIn(ctx context.Context, employeeID string) error {
	body := map[string]string{"userId": employeeID}
	err := c.do(ctx, http.MethodPost, "/attendance/check-in", body, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
		return fmt.Errorf("%w: %w", ErrAlreadyCheckedIn, err)
	}
	return err
}

// CheckOut records today's check-out.
func (c *Client) CheckOut(ctx context.Context, employeeID string) error {
	body := map[string]string{"userId": employeeID}
	return c.do(ctx, http.MethodPut, "/attendance/check-out", body, nil)
}
