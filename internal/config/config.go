// Package config loads Kegweb client settings for commands and tools.
//
// The client library itself never reads the environment; configuration
// is always passed to it explicitly. This package is the collaborator
// that supplies those values to the bundled CLI and examples.
package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"

	"github.com/kegbot/client-go/internal/api"
)

// Environment variables read by Load.
const (
	EnvBaseURL   = "KEGBOT_API_URL"        // default api.DefaultBaseURL
	EnvAPIKey    = "KEGBOT_API_KEY"        // default "" (no key)
	EnvTimeoutMS = "KEGBOT_API_TIMEOUT_MS" // default 10000ms (10s)
)

// Config holds the settings handed to the client constructor.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Load reads configuration from environment variables with the client's
// defaults.
func Load() *Config {
	return &Config{
		BaseURL: getEnvString(EnvBaseURL, api.DefaultBaseURL),
		APIKey:  getEnvString(EnvAPIKey, ""),
		Timeout: getEnvDurationMs(EnvTimeoutMS, 10000),
	}
}

// LoadEnvFile seeds the process environment from a dotenv file before
// Load is called. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

// Validate checks that the configuration can build a working client.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(absoluteURL)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

func absoluteURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("must be an absolute URL")
	}
	return nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}
