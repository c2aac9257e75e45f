// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/staffdesk/staffdesk-tui/internal/model"
)

// loginResponse is the /auth/login envelope.
type loginResponse struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// RegisterRequest is the /auth/register body.
type RegisterRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	JoiningDate string `json:"joiningDate"`
}

// Login authenticates with email and password, returning the user and the
// issued bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (model.User, string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return model.User{}, "", err
	}
	return resp.User, resp.Token, nil
}

// Register creates a new account. The server does not log the account in;
// callers follow up with Login.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", req, nil)
}
