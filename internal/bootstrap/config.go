package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/net/publicsuffix"

	"github.com/target/storefront-ui/config"
)

// InitLogger initializes the structured logger.
func InitLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (config.AppConfig, error) {
	// Load .env file if it exists (development)
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return config.AppConfig{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg config.AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

// ValidateConfig rejects combinations the storefront cannot start with.
func ValidateConfig(cfg *config.AppConfig) error {
	if cfg == nil {
		return errors.New("config is required")
	}
	if cfg.API.BaseURL == "" {
		return errors.New("API_BASE_URL is required")
	}
	if cfg.Redis.UseCluster && cfg.Redis.UseSentinel {
		return errors.New("REDIS_USE_CLUSTER and REDIS_USE_SENTINEL are mutually exclusive")
	}
	return validateCookieDomain(cfg.HTTP.CookieDomain)
}

// validateCookieDomain rejects public suffixes such as "com" or "co.uk":
// browsers drop cookies scoped to them, so no one could ever sign in.
func validateCookieDomain(domain string) error {
	domain = strings.ToLower(strings.Trim(strings.TrimSpace(domain), "."))
	if domain == "" || domain == "localhost" {
		return nil
	}
	suffix, _ := publicsuffix.PublicSuffix(domain)
	if suffix == domain {
		return fmt.Errorf("APP_COOKIE_DOMAIN %q is a public suffix", domain)
	}
	return nil
}
