package rolesdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a read-only client for the roles service API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Token is an optional bearer token sent with every request. Required
	// when the service is deployed with an auth secret.
	Token string
}

// NewClient creates a roles service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of the client that authenticates with token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.Token = token
	return &clone
}

// ListRoles returns all roles in registry order.
func (c *Client) ListRoles(ctx context.Context) (*ListRolesResponse, error) {
	var out ListRolesResponse
	if err := c.getJSON(ctx, "/v1/roles", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRole returns a single role by name. A missing role surfaces as an
// APIError with the not_found code; use IsNotFound to test for it.
func (c *Client) GetRole(ctx context.Context, name string) (*RoleInfo, error) {
	var out RoleInfo
	if err := c.getJSON(ctx, "/v1/roles/"+url.PathEscape(name), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ManagerRoles returns the roles permitted to manage name, in registry
// order. Unknown names return an empty manager list, not an error.
func (c *Client) ManagerRoles(ctx context.Context, name string) (*ManagerRolesResponse, error) {
	var out ManagerRolesResponse
	if err := c.getJSON(ctx, "/v1/roles/"+url.PathEscape(name)+"/managers", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health returns the service's liveness status.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.getJSON(ctx, "/livez", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getJSON performs a GET request and decodes the JSON response into out,
// converting non-2xx responses into *APIError.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// parseErrorResponse turns a non-2xx response body into an *APIError,
// falling back to a generic error built from the status code when the body
// is not the expected JSON error payload.
func parseErrorResponse(statusCode int, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  statusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  statusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode)),
	}
}
