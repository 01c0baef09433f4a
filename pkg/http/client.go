package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const MethodGet = http.MethodGet

// maxErrorBody caps how much of a failed response is kept in StatusError.
const maxErrorBody = 512

// ClientOption configures Client.
type ClientOption func(*Client)

// RequestOptions holds HTTP request parameters. Query params are appended to
// any query already present in URL.
type RequestOptions struct {
	Method      string
	URL         string
	QueryParams map[string][]string
}

// StatusError is returned by SendAndParse for non-2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// Client is a thin JSON-over-HTTP client with default headers and a timeout.
type Client struct {
	timeout   time.Duration
	headers   map[string]string
	transport http.RoundTripper
	client    *http.Client
}

// NewClient creates a new HTTP client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		timeout: 30 * time.Second,
		headers: map[string]string{},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{Timeout: c.timeout, Transport: c.transport}
	return c
}

// SendRequest sends an HTTP request and returns the raw response. The caller
// owns the body.
func (c *Client) SendRequest(ctx context.Context, opts *RequestOptions) (*http.Response, error) {
	req, err := c.buildRequest(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}

// SendAndParse sends request and decodes a JSON response into dest.
func (c *Client) SendAndParse(ctx context.Context, opts *RequestOptions, dest interface{}) error {
	resp, err := c.SendRequest(ctx, opts)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, opts *RequestOptions) (*http.Request, error) {
	method := opts.Method
	if method == "" {
		method = MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, opts.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	if len(opts.QueryParams) > 0 {
		q := req.URL.Query()
		for key, values := range opts.QueryParams {
			for _, value := range values {
				q.Add(key, value)
			}
		}
		req.URL.RawQuery = q.Encode()
	}

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	return req, nil
}

// WithTimeout sets client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		if value != "" {
			c.headers[key] = value
		}
	}
}

// WithTransport overrides the round tripper (tests, proxies).
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.transport = rt
	}
}
