// Package taskclient calls the task service over HTTP.
//
// Every method maps to one endpoint. Non-2xx responses are returned as
// *APIError carrying the server's detail message.
package taskclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "http://127.0.0.1:8000"

type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type Summary struct {
	Todo  int `json:"todo"`
	Doing int `json:"doing"`
	Done  int `json:"done"`
}

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	language   string
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLanguage sets the Accept-Language header sent with every request.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListTasks returns every task, or only those in status when it is not empty.
func (c *Client) ListTasks(ctx context.Context, status string) ([]Task, error) {
	path := "/tasks"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) GetTask(ctx context.Context, id string) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodGet, taskPath(id), nil, &task)
	return task, err
}

func (c *Client) CreateTask(ctx context.Context, title, description string) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPost, "/tasks", map[string]string{
		"title":       title,
		"description": description,
	}, &task)
	return task, err
}

// UpdateTask replaces title, description and status of a task. The response
// carries no timestamps.
func (c *Client) UpdateTask(ctx context.Context, id, title, description, status string) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPut, taskPath(id), map[string]string{
		"title":       title,
		"description": description,
		"status":      status,
	}, &task)
	return task, err
}

// UpdateStatus changes only the status. The returned Task holds id and status.
func (c *Client) UpdateStatus(ctx context.Context, id, status string) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPatch, taskPath(id)+"/status", map[string]string{"status": status}, &task)
	return task, err
}

// DeleteTask removes a task and returns the server's confirmation message.
func (c *Client) DeleteTask(ctx context.Context, id string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, taskPath(id), nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) Summary(ctx context.Context) (Summary, error) {
	var summary Summary
	err := c.do(ctx, http.MethodGet, "/tasks/summary", nil, &summary)
	return summary, err
}

func taskPath(id string) string {
	return "/tasks/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func newAPIError(code int, body []byte) *APIError {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Detail == "" {
		return &APIError{StatusCode: code, Message: fmt.Sprintf("Error %d", code)}
	}
	return &APIError{StatusCode: code, Message: payload.Detail}
}
