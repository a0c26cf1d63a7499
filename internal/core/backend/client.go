package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"cargo-portal/internal/core/config"
	"cargo-portal/internal/core/httpclient"
)

// Request describes one call to the cargo backend.
type Request struct {
	Method string
	// Path is relative to the backend base URL, e.g. "/orders/42/hold".
	Path  string
	Query url.Values
	// Body is JSON-encoded when non-nil.
	Body interface{}
	// Token is the user's bearer token; empty for public endpoints.
	Token string
}

// envelope is the backend's success shape: {"data": ..., "message": "..."}.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// errorBody is the backend's failure shape: {"error": "..."}.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Page is the data payload of every list endpoint.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Client talks to the cargo REST backend. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a backend client for the configured base URL.
func NewClient(cfg config.BackendConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		http:    httpclient.NewClient(cfg.Timeout()),
	}
}

// Do executes req and decodes the envelope's data into out (which may be nil).
// It returns the envelope message, if any.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) (string, error) {
	var body io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return "", fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := c.newRequest(ctx, req.Method, req.Path, req.Query, body, req.Token)
	if err != nil {
		return "", err
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	return c.send(httpReq, out)
}

// Upload posts a file as multipart/form-data to /upload and returns its URL.
func (c *Client) Upload(ctx context.Context, token, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("failed to copy upload content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/upload", nil, &buf, token)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	var uploaded struct {
		URL string `json:"url"`
	}
	if _, err := c.send(httpReq, &uploaded); err != nil {
		return "", err
	}
	if uploaded.URL == "" {
		return "", fmt.Errorf("%w: upload returned no url", ErrInvalidResponse)
	}
	return uploaded.URL, nil
}

// HealthCheck verifies that the backend answers its public settings endpoint.
func (c *Client) HealthCheck(ctx context.Context) error {
	if _, err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/settings/public"}, nil); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, token string) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out interface{}) (string, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeError(resp.StatusCode, raw)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return "", nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
	}

	return env.Message, nil
}

func decodeError(status int, raw []byte) error {
	var body errorBody
	msg := ""
	if err := json.Unmarshal(raw, &body); err == nil {
		msg = body.Error
		if msg == "" {
			msg = body.Message
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{Status: status, Message: msg}
}
