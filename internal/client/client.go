// Package client consumes the project tracker API: it fetches and mutates
// projects over HTTP, derives filtered views, and drives the dashboard
// state machine.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hasthiya-it/tracker-backend/internal/projects"
)

// DefaultTimeout bounds every request; exceeding it is treated as a
// network failure.
const DefaultTimeout = 10 * time.Second

// fallbackMessage is shown when a failed response carries no message.
const fallbackMessage = "Operation failed"

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the project tracker API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API rooted at baseURL (e.g.
// "http://localhost:5000/api").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// NewWithHTTPClient allows callers to supply their own http.Client.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, http: hc}
}

// apiResponse mirrors the server envelope; Data stays raw until the
// caller knows its shape.
type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// CreateRequest is the body for a create call.
type CreateRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     string  `json:"due_date"`
}

// UpdateRequest is the body for a partial update; omitted fields are
// left unchanged by the server.
type UpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

// List fetches every project, most recently created first.
func (c *Client) List(ctx context.Context) ([]projects.Project, error) {
	env, err := c.do(ctx, http.MethodGet, "/projects", nil)
	if err != nil {
		return nil, err
	}
	var out []projects.Project
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return out, nil
}

// Get fetches a single project by id.
func (c *Client) Get(ctx context.Context, id int64) (*projects.Project, error) {
	env, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeProject(env.Data)
}

// Create submits a new project and returns the stored record.
func (c *Client) Create(ctx context.Context, req CreateRequest) (*projects.Project, error) {
	env, err := c.do(ctx, http.MethodPost, "/projects", req)
	if err != nil {
		return nil, err
	}
	return decodeProject(env.Data)
}

// Update submits a partial update and returns the full updated record.
func (c *Client) Update(ctx context.Context, id int64, req UpdateRequest) (*projects.Project, error) {
	env, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/projects/%d", id), req)
	if err != nil {
		return nil, err
	}
	return decodeProject(env.Data)
}

// Delete removes a project by id.
func (c *Client) Delete(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil)
	return err
}

func decodeProject(raw json.RawMessage) (*projects.Project, error) {
	var p projects.Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return &p, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*apiResponse, error) {
	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		buf = bytes.NewBuffer(b)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && resp.StatusCode < 300 {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 300 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fallbackMessage
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	return &env, nil
}
