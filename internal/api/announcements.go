// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/staffdesk/staffdesk-tui/internal/model"
)

// Announcements fetches the notices addressed to the given role. The
// server pre-filters by role; callers still apply model.VisibleTo for
// expiry.
func (c *Client) Announcements(ctx context.Context, role model.Role) ([]model.Announcement, error) {
	var resp listEnvelope[model.Announcement]
	path := "/announcements/visible-to-me?role=" + url.QueryEscape(role.String())
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
