package gateway // package gateway dispatches authenticated requests to the backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource supplies the current raw bearer credential, or "" when the
// client is unauthenticated.  The gateway consults it on every request
// so a token committed mid-session is picked up immediately.
type TokenSource func() string

// Client is the single request-dispatch layer of the application.  It
// attaches the bearer credential to every outbound call and applies one
// global policy on authentication failure: any 401, from any endpoint,
// triggers the OnUnauthenticated callback exactly once per failing call.
// The callback typically purges the persisted credential and forces the
// login view.  Nothing is retried, queued or deduplicated.
type Client struct {
	base              *url.URL
	http              *http.Client
	tokens            TokenSource
	onUnauthenticated func()
}

// New builds a Client against the backend base URL.  tokens may not be
// nil; onUnauthenticated may be nil when no 401 policy is wanted (tests).
func New(baseURL string, timeout time.Duration, tokens TokenSource, onUnauthenticated func()) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if tokens == nil {
		tokens = func() string { return "" }
	}
	return &Client{
		base:              base,
		http:              &http.Client{Timeout: timeout},
		tokens:            tokens,
		onUnauthenticated: onUnauthenticated,
	}, nil
}

// GetJSON issues a GET and decodes the response body into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// PostJSON issues a POST with a JSON body and decodes the response into
// out when out is non-nil.
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// PatchJSON issues a PATCH with a JSON body and decodes the response
// into out when out is non-nil.
func (c *Client) PatchJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete issues a DELETE.  The response body, if any, is discarded.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do performs one round trip.  Transport errors and non-401 HTTP errors
// pass through to the caller (the latter as *APIError); only 401 is
// intercepted for the global re-authentication policy.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	target := c.base.JoinPath(strings.TrimPrefix(path, "/"))
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Global policy: the credential is dead no matter which call
		// noticed it first.
		if c.onUnauthenticated != nil {
			c.onUnauthenticated()
		}
		return &APIError{StatusCode: resp.StatusCode, Message: normalizeMessage(resp.StatusCode, raw)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: normalizeMessage(resp.StatusCode, raw)}
	}

	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}
