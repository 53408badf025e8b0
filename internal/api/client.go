// Package api is the HTTP client for the remote task service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/logging"
	"github.com/Iron-Ham/kanban/internal/task"
)

const (
	// tasksPath is the collection resource relative to the base URL.
	tasksPath = "/tasks"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "kanban-cli"

	// RequestIDHeader carries the per-request correlation id.
	RequestIDHeader = "X-Request-ID"
)

// Client talks to the task service over REST. It is safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *logging.Logger
	newID      func() string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout bounds every request. 0 leaves the transport default.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header. Empty keeps the default.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger *logging.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger.WithComponent("api")
	}
}

// WithRequestIDFunc replaces the correlation id generator.
func WithRequestIDFunc(fn func() string) ClientOption {
	return func(c *Client) {
		c.newID = fn
	}
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must use http or https", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  DefaultUserAgent,
		httpClient: &http.Client{},
		logger:     logging.NopLogger(),
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the service address requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches every task. A null body is an empty collection.
func (c *Client) List(ctx context.Context) ([]task.Task, error) {
	var tasks []task.Task
	if err := c.do(ctx, errors.OpList, http.MethodGet, tasksPath, nil, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	return tasks, nil
}

// Create submits t without an id and returns the stored record.
func (c *Client) Create(ctx context.Context, t task.Task) (task.Task, error) {
	t.ID = 0
	var created task.Task
	err := c.do(ctx, errors.OpCreate, http.MethodPost, tasksPath, t, &created)
	return created, err
}

// Update replaces the task with t.ID by t and returns the stored record.
// Failures are attributed to an edit; callers moving a card relabel them.
func (c *Client) Update(ctx context.Context, t task.Task) (task.Task, error) {
	var updated task.Task
	err := c.do(ctx, errors.OpEdit, http.MethodPut, taskPath(t.ID), t, &updated)
	return updated, err
}

// Delete removes the task with id.
func (c *Client) Delete(ctx context.Context, id task.ID) error {
	return c.do(ctx, errors.OpDelete, http.MethodDelete, taskPath(id), nil, nil)
}

func taskPath(id task.ID) string {
	return tasksPath + "/" + strconv.FormatInt(int64(id), 10)
}

// do sends one request. in is JSON-encoded when non-nil; out is decoded from
// a 2xx body when non-nil. Non-2xx answers become a RequestError carrying
// the status and the response body.
func (c *Client) do(ctx context.Context, op errors.Operation, method, path string, in, out any) error {
	requestID := c.newID()
	log := c.logger.WithRequest(requestID)
	reqErr := func() *errors.RequestError {
		return errors.NewRequestError(op, method, path).WithRequestID(requestID)
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return reqErr().WithCause(fmt.Errorf("marshal request: %w", err))
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return reqErr().WithCause(fmt.Errorf("create request: %w", err))
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", "op", string(op), "method", method, "path", path,
			"error", err.Error(), logging.Duration(time.Since(start)))
		return reqErr().WithCause(err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return reqErr().WithStatus(resp.StatusCode, statusText(resp)).
			WithCause(fmt.Errorf("read response: %w", err))
	}

	log.Debug("request finished", "op", string(op), "method", method, "path", path,
		"status", resp.StatusCode, logging.Duration(time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := reqErr().WithStatus(resp.StatusCode, statusText(resp)).WithBody(string(respBody))
		log.Warn("service rejected request", "op", string(op), "status", resp.StatusCode, "body", e.Body)
		return e
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return reqErr().WithCause(fmt.Errorf("%w: empty body", errors.ErrDecode))
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		log.Warn("undecodable response", "op", string(op), "error", err.Error())
		return reqErr().WithCause(fmt.Errorf("%w: %v", errors.ErrDecode, err))
	}
	return nil
}

// statusText returns the reason phrase of resp's status line ("Not Found"
// from "404 Not Found").
func statusText(resp *http.Response) string {
	if _, text, ok := strings.Cut(resp.Status, " "); ok {
		return text
	}
	return ""
}
