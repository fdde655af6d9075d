package api

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kegbot/client-go/internal/apierrors"
)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8000/api/"
	DefaultTimeout = 10 * time.Second
)

// APIKeyHeader carries the configured api_key. It is attached to every
// request, even when the key is empty.
const APIKeyHeader = "X-Kegbot-Api-Key"

// Config holds explicit configuration for the API client.
type Config struct {
	// BaseURL is the root of the Kegweb API, e.g. "http://host:8000/api/".
	BaseURL string

	// APIKey authenticates the client. May be empty.
	APIKey string

	// Timeout bounds connection establishment only; there is no separate
	// read timeout. Zero means DefaultTimeout.
	Timeout time.Duration

	// HTTPClient overrides the default transport when non-nil. The
	// connect timeout above is not applied to a custom client.
	HTTPClient *http.Client
}

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an API client from explicit configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		// The timeout applies to dialing only. A stalled response body
		// blocks until the server closes the connection, matching the
		// connect-timeout contract of the API.
		httpClient = &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: timeout}).DialContext,
			},
		}
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIKey returns the api_key currently attached to requests.
func (c *Client) APIKey() string {
	return c.apiKey
}

// SetAPIKey rebinds the api_key used for all subsequent requests.
// Rotation is not synchronized against in-flight calls; hosts that
// rotate from another goroutine must provide their own locking.
func (c *Client) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// url resolves a relative endpoint against the base URL: trailing slashes
// are stripped from the base, surrounding slashes from the endpoint, and
// the two are joined with a single slash.
func (c *Client) url(endpoint string) string {
	return strings.TrimRight(c.baseURL, "/") + "/" + strings.Trim(endpoint, "/")
}

// Do performs one API request and decodes the response envelope.
//
// A non-empty form issues a POST with the url-encoded form as the request
// body; otherwise the request is a GET. Query parameters, if any, are
// attached to the URL in both cases.
//
// Network-level failures surface as *apierrors.NetworkError; they are a
// single attempt, never retried.
func (c *Client) Do(ctx context.Context, endpoint string, query, form url.Values) (*Envelope, error) {
	rawURL := c.url(endpoint)
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	method := http.MethodGet
	var body io.Reader
	if len(form) > 0 {
		method = http.MethodPost
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(APIKeyHeader, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apierrors.NetworkError{Err: err, URL: rawURL}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierrors.NetworkError{Err: err, URL: rawURL}
	}

	return DecodeResponse(resp.StatusCode, data)
}
