// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// DefaultBaseURL is where the portal gateway listens in development.
	DefaultBaseURL = "http://localhost:3000/api"

	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 15 * time.Second

	// MaxResponseSize caps response body reads.
	// SECURITY: Response size limit prevents memory exhaustion.
	MaxResponseSize = 4 * 1024 * 1024 // 4MB
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrUnauthorized indicates the server rejected the bearer token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAlreadyCheckedIn indicates a second check-in on the same day.
	ErrAlreadyCheckedIn = errors.New("already checked in today")
)

// APIError is a non-2xx response from the gateway.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("portal API error (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("portal API error (HTTP %d)", e.Status)
}

// Unwrap maps well-known statuses onto sentinel errors for errors.Is.
// A 400 carries no sentinel here: its meaning depends on the endpoint,
// so endpoint methods translate it themselves.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// =============================================================================
// CLIENT
// =============================================================================

// TokenSource supplies the bearer token for authenticated calls and
// invalidates it when the server rejects it.
type TokenSource interface {
	Token() string
	ClearToken() error
}

// Client talks to the portal gateway. Construct with NewClient and the
// builder-style With* options; the zero value is not usable.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	limiter    *rate.Limiter
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		// Polite pacing: bursts of 5, refilling at 10 req/s.
		limiter: rate.NewLimiter(rate.Limit(10), 5),
	}
}

// WithTimeout sets the per-request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient.Timeout = timeout
	return c
}

// WithTokenSource sets the bearer token provider for authenticated calls.
func (c *Client) WithTokenSource(ts TokenSource) *Client {
	c.tokens = ts
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// WithRateLimit replaces the client-side request limiter.
func (c *Client) WithRateLimit(perSecond float64, burst int) *Client {
	c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	return c
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// do performs one request and decodes the response into out (when non-nil).
// Requests are never retried. A 401 invalidates the stored token before
// the error is returned.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// Never logs the token or response bodies.
	log.Printf("api: %s %s -> %d", method, path, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized && c.tokens != nil {
			if cerr := c.tokens.ClearToken(); cerr != nil {
				log.Printf("api: failed to invalidate token: %v", cerr)
			}
		}
		return &APIError{Status: resp.StatusCode, Message: extractMessage(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// extractMessage pulls the server's message field out of an error body,
// falling back to the raw text.
func extractMessage(raw []byte) string {
	var e struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &e); err == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Error != "" {
			return e.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
