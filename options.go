package kegbot

import (
	"net/http"
	"time"

	"github.com/kegbot/client-go/internal/api"
)

// Default configuration values, used when the corresponding option is
// not supplied.
const (
	DefaultBaseURL = api.DefaultBaseURL
	DefaultTimeout = api.DefaultTimeout
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL, e.g. "http://kegserver:8000/api/".
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithAPIKey sets the api_key attached to every request.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.apiKey = key
	}
}

// WithTimeout sets the connection timeout. The timeout bounds connection
// establishment only; there is no separate read timeout, so a stalled
// response blocks until the server closes the connection.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. The connect timeout is not
// applied to a custom client; its own transport settings govern.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}
