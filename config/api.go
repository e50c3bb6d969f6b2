package config

import (
	"strings"
	"time"
)

// APIConfig configures the client for the remote store API.
type APIConfig struct {
	// BaseURL is the root of the store API, e.g. "https://api.example.com/v1".
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:3000/api"`

	// Timeout bounds each API call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// UserAgent is sent with every request.
	UserAgent string `env:"USER_AGENT" envDefault:"storefront-ui"`

	// DataPath is a JMESPath expression selecting the payload from a response envelope.
	// "@" means the body is the payload; "data" unwraps {"data": ...}.
	DataPath string `env:"DATA_PATH" envDefault:"@"`

	// ErrorPath selects the human-readable message from an error response body.
	ErrorPath string `env:"ERROR_PATH" envDefault:"message || error"`

	// TokenPath and RefreshPath select the credential pair from a login/register response.
	TokenPath   string `env:"TOKEN_PATH"   envDefault:"token"`
	RefreshPath string `env:"REFRESH_PATH" envDefault:"refresh"`
}

// Sanitize trims values and restores defaults for blank expressions.
func (c *APIConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	c.UserAgent = strings.TrimSpace(c.UserAgent)
	c.DataPath = defaultString(c.DataPath, "@")
	c.ErrorPath = defaultString(c.ErrorPath, "message || error")
	c.TokenPath = defaultString(c.TokenPath, "token")
	c.RefreshPath = defaultString(c.RefreshPath, "refresh")
}

func defaultString(v, fallback string) string {
	if v = strings.TrimSpace(v); v == "" {
		return fallback
	}
	return v
}
