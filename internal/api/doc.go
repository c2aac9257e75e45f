// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the portal REST gateway:
// authentication, attendance, leave, announcements and employee lookups.
//
// # Key Types
//
//   - Client: the configured HTTP client with one method per endpoint
//   - APIError: a non-2xx response with its status code and server message
//
// # Behavior
//
// Requests are never retried; failures surface to the caller, which shows
// them and moves on. Authenticated calls attach a bearer token from the
// TokenSource. A 401 response invalidates the stored token through the
// TokenSource before the error is returned, so the next start of the
// program comes up logged out. A small client-side limiter paces requests.
//
// # Usage
//
//	client := api.NewClient("http://localhost:3000/api").
//		WithTimeout(10 * time.Second).
//		WithTokenSource(sess)
//	user, token, err := client.Login(ctx, email, password)
package api
