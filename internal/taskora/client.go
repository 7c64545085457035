package taskora

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskora/taskora-mcp/internal/logging"
	"github.com/taskora/taskora-mcp/internal/taskora/auth"
)

// DefaultBaseURL is the Taskora v1 API endpoint
const DefaultBaseURL = "https://api.taskora.app/v1"

// Client wraps the Taskora REST API
type Client struct {
	httpClient *http.Client
	baseURL    string
	workspace  string // The workspace this client is associated with
}

// APIError represents a non-2xx response from the Taskora API
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("taskora API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("taskora API error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Workspace returns the workspace name this client is associated with
func (c *Client) Workspace() string {
	return c.workspace
}

// HasTokenForWorkspace checks if a stored credential exists for the workspace
func HasTokenForWorkspace(workspace string) bool {
	return auth.HasTokenForWorkspace(workspace)
}

// HasToken checks if a stored credential exists for the default workspace
func HasToken() bool {
	return auth.HasToken()
}

// NewClientForWorkspace creates a new Taskora client for a specific workspace.
// The stored OAuth token (or TASKORA_API_TOKEN) supplies authentication.
func NewClientForWorkspace(ctx context.Context, workspace string) (*Client, error) {
	httpClient, err := auth.GetHTTPClientForWorkspace(ctx, workspace)
	if err != nil {
		return nil, fmt.Errorf("no valid Taskora credential found for workspace %s: %w. Run 'taskora-mcp auth login' or set TASKORA_API_TOKEN", workspace, err)
	}

	baseURL := DefaultBaseURL
	if env := os.Getenv("TASKORA_API_URL"); env != "" {
		baseURL = strings.TrimRight(env, "/")
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		workspace:  workspace,
	}, nil
}

// NewClient creates a new Taskora client for the default workspace
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForWorkspace(ctx, "default")
}

// newClientWithHTTP creates a client with an explicit HTTP client and base URL.
// Used by tests against httptest servers.
func newClientWithHTTP(httpClient *http.Client, baseURL, workspace string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		workspace:  workspace,
	}
}

// errorBody is the shape of Taskora error responses
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do performs an HTTP request against the Taskora API.
// body (if non-nil) is JSON-encoded; out (if non-nil) receives the decoded response.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body for %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request for %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Request IDs let support correlate client calls with server logs
	req.Header.Set("X-Request-Id", uuid.NewString())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed for %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	logging.WithWorkspace(slog.Default(), c.workspace).Debug("taskora API call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status_code", resp.StatusCode),
		slog.Duration(logging.KeyDuration, time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&eb); decodeErr == nil {
			apiErr.Code = eb.Error.Code
			apiErr.Message = eb.Error.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%s %s: %w", method, path, apiErr)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response for %s %s: %w", method, path, err)
	}
	return nil
}

// GetWorkspaceProfile retrieves the authenticated workspace profile
func (c *Client) GetWorkspaceProfile(ctx context.Context) (*WorkspaceProfile, error) {
	var profile WorkspaceProfile
	if err := c.do(ctx, http.MethodGet, "/workspace", nil, nil, &profile); err != nil {
		return nil, fmt.Errorf("failed to get workspace profile: %w", err)
	}
	return &profile, nil
}
