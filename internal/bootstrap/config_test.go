package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/storefront-ui/config"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/v1/")
	t.Setenv("SELECTION_BACKEND", "Redis")
	t.Setenv("AUTH_ADMIN_ROLES", " Admin , staff ,")
	t.Setenv("CART_SUMMARY_INTERVAL", "1s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/v1", cfg.API.BaseURL)
	assert.Equal(t, config.SelectionBackendRedis, cfg.Selection.Backend)
	assert.True(t, cfg.NeedsRedis())
	assert.Equal(t, []string{"admin", "staff"}, cfg.Auth.AdminRoles)
	assert.Equal(t, 5*time.Second, cfg.Cart.SummaryInterval, "interval is clamped to the minimum")
}

func TestLoadConfigRejectsUnknownSelectionBackend(t *testing.T) {
	t.Setenv("SELECTION_BACKEND", "memcached")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SelectionBackend")
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.AppConfig)
		wantErr string
	}{
		{name: "valid"},
		{
			name:    "missing api base url",
			mutate:  func(c *config.AppConfig) { c.API.BaseURL = "" },
			wantErr: "API_BASE_URL",
		},
		{
			name: "cluster and sentinel",
			mutate: func(c *config.AppConfig) {
				c.Redis.UseCluster = true
				c.Redis.UseSentinel = true
			},
			wantErr: "mutually exclusive",
		},
		{
			name:   "registrable cookie domain",
			mutate: func(c *config.AppConfig) { c.HTTP.CookieDomain = ".shop.example.co.uk" },
		},
		{
			name:    "public suffix cookie domain",
			mutate:  func(c *config.AppConfig) { c.HTTP.CookieDomain = "co.uk" },
			wantErr: "public suffix",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.AppConfig{API: config.APIConfig{BaseURL: "http://api.local"}}
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			err := ValidateConfig(&cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.Error(t, ValidateConfig(nil))
}
