package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Store API client configuration
//   - auth.go: Credential cookies and role derivation
//   - selection.go: Shared selection store configuration
//   - redis.go: Redis configuration
//   - http.go: HTTP server configuration
//   - observability.go: Metrics configuration
type AppConfig struct {
	// IsDev controls development mode behavior (template reloading, detailed errors).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Store API configuration
	API APIConfig `envPrefix:"API_"`

	// Credential and role configuration
	Auth AuthConfig `envPrefix:"AUTH_"`

	// Shared selection store configuration
	Selection SelectionConfig `envPrefix:"SELECTION_"`

	// Redis configuration (used by the redis selection backend)
	Redis RedisConfig `envPrefix:"REDIS_"`

	// Cart summary refresh configuration
	Cart CartConfig `envPrefix:"CART_"`

	// Observability configuration
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.API.Sanitize()
	c.Auth.Sanitize()
	c.Selection.Sanitize()
	c.Cart.Sanitize()
	c.Observability.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}

// NeedsRedis reports whether any configured component requires a Redis connection.
func (c *AppConfig) NeedsRedis() bool {
	return c.Selection.Backend == SelectionBackendRedis
}
