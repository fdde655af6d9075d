package kegbot

import (
	"context"
	"time"

	"github.com/kegbot/client-go/internal/api"
)

// Client is a Kegweb API client. The zero configuration targets a local
// Kegweb server (http://localhost:8000/api/) with no API key.
//
// The client is stateless between calls: each operation issues exactly
// one blocking HTTP request, with no retries and no caching. All
// configuration is immutable after construction except the API key,
// which SetAuthToken may rotate.
type Client struct {
	apiClient *api.Client
}

// New creates a Kegweb client.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     cfg.apiKey,
		Timeout:    cfg.timeout,
		HTTPClient: cfg.httpClient,
	})
	if err != nil {
		return nil, err
	}

	return &Client{apiClient: apiClient}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// SetAuthToken rebinds the api_key used for all subsequent requests.
// Rotation is not synchronized against in-flight calls; hosts that
// rotate from another goroutine must provide their own locking.
func (c *Client) SetAuthToken(apiKey string) {
	c.apiClient.SetAPIKey(apiKey)
}

// RecordDrink records a pour against a tap and returns the resulting
// drink.
func (c *Client) RecordDrink(ctx context.Context, req RecordDrinkRequest) (*Drink, error) {
	return c.apiClient.RecordDrink(ctx, req)
}

// CancelDrink cancels a previously recorded drink by sequence number,
// optionally marking the volume as spilled.
func (c *Client) CancelDrink(ctx context.Context, seqNum int, spilled bool) (*Drink, error) {
	return c.apiClient.CancelDrink(ctx, seqNum, spilled)
}

// LogSensorReading records a temperature reading for a sensor.
//
// The when parameter is accepted but not yet transmitted; the server
// timestamps the reading on receipt.
func (c *Client) LogSensorReading(ctx context.Context, sensorName string, tempC float64, when time.Time) (*ThermoLog, error) {
	return c.apiClient.LogSensorReading(ctx, sensorName, tempC, when)
}

// TapStatus returns the status of all taps.
func (c *Client) TapStatus(ctx context.Context) ([]*Tap, error) {
	return c.apiClient.TapStatus(ctx)
}

// GetToken looks up an auth token presented by a device. An unknown
// token yields an error matching ErrNotFound.
func (c *Client) GetToken(ctx context.Context, authDevice, tokenValue string) (*AuthToken, error) {
	return c.apiClient.GetToken(ctx, authDevice, tokenValue)
}

// AllDrinks returns all recorded drinks.
func (c *Client) AllDrinks(ctx context.Context) ([]*Drink, error) {
	return c.apiClient.AllDrinks(ctx)
}

// AllSoundEvents returns all configured sound events.
func (c *Client) AllSoundEvents(ctx context.Context) ([]*SoundEvent, error) {
	return c.apiClient.AllSoundEvents(ctx)
}
