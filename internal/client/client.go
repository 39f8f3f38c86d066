// Package client implements the HTTP client for the remote job and
// identity collections. It is a thin CRUD facade: one remote call per
// method, no caching, no retries. Any transport failure or non-success
// response surfaces as a *RemoteError carrying the operation name.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"jobtrack/pkg/api"
)

// Client talks to the collection endpoints.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RemoteError is a failed store call: the operation that failed, the
// HTTP status if a response was received (0 otherwise), and the
// underlying cause.
type RemoteError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s failed (%d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// ListJobs sends GET /jobs and returns the full record collection.
func (c *Client) ListJobs(ctx context.Context) ([]api.JobRecord, error) {
	var records []api.JobRecord
	if err := c.do(ctx, "list jobs", http.MethodGet, "/jobs", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateJob sends POST /jobs and returns the created record. The store
// assigns the authoritative id; any id in the request is provisional.
func (c *Client) CreateJob(ctx context.Context, record api.JobRecord) (*api.JobRecord, error) {
	var created api.JobRecord
	if err := c.do(ctx, "create job", http.MethodPost, "/jobs", record, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateJob sends PUT /jobs/{id} and returns the updated record.
func (c *Client) UpdateJob(ctx context.Context, id string, record api.JobRecord) (*api.JobRecord, error) {
	var updated api.JobRecord
	if err := c.do(ctx, "update job", http.MethodPut, "/jobs/"+id, record, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteJob sends DELETE /jobs/{id}.
func (c *Client) DeleteJob(ctx context.Context, id string) error {
	return c.do(ctx, "delete job", http.MethodDelete, "/jobs/"+id, nil, nil)
}

// ListUsers sends GET /users and returns the identity collection.
func (c *Client) ListUsers(ctx context.Context) ([]api.UserRecord, error) {
	var users []api.UserRecord
	if err := c.do(ctx, "list users", http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser sends GET /users/{id}.
func (c *Client) GetUser(ctx context.Context, id string) (*api.UserRecord, error) {
	var user api.UserRecord
	if err := c.do(ctx, "get user", http.MethodGet, "/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser sends PUT /users/{id} and returns the updated user.
func (c *Client) UpdateUser(ctx context.Context, id string, user api.UserRecord) (*api.UserRecord, error) {
	var updated api.UserRecord
	if err := c.do(ctx, "update user", http.MethodPut, "/users/"+id, user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// do issues a single request and decodes the response into out when
// out is non-nil. Status codes outside 2xx become a RemoteError with
// the response body as the cause.
func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return &RemoteError{Op: op, Err: fmt.Errorf("failed to marshal request: %w", err)}
		}
		reader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return &RemoteError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	httpReq.Header.Add("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return &RemoteError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &RemoteError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", string(respBody)),
		}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &RemoteError{Op: op, Err: fmt.Errorf("failed to parse response: %w", err)}
		}
	}
	return nil
}
