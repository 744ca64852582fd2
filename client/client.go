// Package client is the device-side core of the attendance system: the
// teacher's session controller, the student's check-in submitter and the
// live roster viewer. All of them talk only to the remote registry; no
// client ever coordinates with another client directly.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Sampreeth-sv/smart-attendance-new/sessions"
)

// Client wraps one registry endpoint. Every call is a single round trip;
// nothing here retries, so a transient failure is reported exactly once
// and the caller decides whether to repeat the action.
type Client struct {
	baseURL    string
	httpClient *http.Client
	Creds      *CredentialStore
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		Creds:      &CredentialStore{},
	}
}

func (c *Client) postJSON(ctx context.Context, path, bearer string, body, out interface{}) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path, bearer string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", sessions.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", sessions.ErrServiceUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, body)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}
	return nil
}

// decodeError recovers the registry's verdict from a wire error, so
// callers can errors.Is against the shared taxonomy. The verdict is
// surfaced verbatim, never reinterpreted here.
func decodeError(status int, body []byte) error {
	var wire struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &wire); err == nil {
		if sentinel := sessions.FromCode(wire.Error); sentinel != nil {
			if wire.Message != "" {
				return fmt.Errorf("%w: %s", sentinel, wire.Message)
			}
			return sentinel
		}
	}
	return fmt.Errorf("registry request failed with status %d: %s", status, string(body))
}
