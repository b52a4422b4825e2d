// Package httpapi implements the service.Service interface against the
// task service's JSON-over-HTTP contract (GET / and POST /).
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"todo/internal/api"
	"todo/internal/service"
)

// DefaultEndpoint is the origin the client talks to when none is configured.
const DefaultEndpoint = "http://localhost:8080/"

// Client implements service.Service over HTTP.
// No timeout is applied; callers bound requests with their context.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New creates a client for the given endpoint.
// An empty endpoint selects DefaultEndpoint.
func New(endpoint string) *Client {
	return NewWithHTTPClient(endpoint, http.DefaultClient)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(endpoint string, httpClient *http.Client) *Client {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// Endpoint returns the URL both operations are issued against.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ListTasks issues GET and expects 200 with a JSON array of tasks.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}
	req.Header.Set("Accept", api.ContentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		drain(resp.Body)
		return nil, &service.StatusError{Op: "list", Code: resp.StatusCode}
	}

	var payload []api.Task
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}
	return api.ToServiceList(payload), nil
}

// CreateTask issues POST with the JSON-encoded title and description and
// expects 201. The response body is not inspected.
func (c *Client) CreateTask(ctx context.Context, task service.Task) error {
	body, err := json.Marshal(api.CreateRequest{
		Title:       task.Title,
		Description: task.Description,
	})
	if err != nil {
		return fmt.Errorf("encode task: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build create request: %w", err)
	}
	req.Header.Set("Content-Type", api.ContentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	defer resp.Body.Close()
	drain(resp.Body)

	if resp.StatusCode != http.StatusCreated {
		return &service.StatusError{Op: "create", Code: resp.StatusCode}
	}
	return nil
}

// drain discards the rest of a body so the connection can be reused.
func drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, r)
}
