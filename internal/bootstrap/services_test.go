package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/storefront-ui/config"
	"github.com/target/storefront-ui/internal/adapters/memory"
	redisadapter "github.com/target/storefront-ui/internal/adapters/redis"
	domainauth "github.com/target/storefront-ui/internal/domain/auth"
	"github.com/target/storefront-ui/internal/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAppConfig() *config.AppConfig {
	cfg := &config.AppConfig{
		API:       config.APIConfig{BaseURL: "http://api.local"},
		Selection: config.SelectionConfig{Backend: config.SelectionBackendMemory},
		Auth:      config.AuthConfig{AdminRoles: []string{"admin"}, EnforceAdminRole: true},
	}
	cfg.Sanitize()
	return cfg
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unused"))
	require.NoError(t, err)
	return tok
}

func TestNewServicesWiresEverything(t *testing.T) {
	services, err := NewServices(&ServiceDeps{Config: testAppConfig(), Logger: discardLogger()})
	require.NoError(t, err)

	assert.NotNil(t, services.Auth)
	assert.NotNil(t, services.Catalog)
	assert.NotNil(t, services.Cart)
	assert.NotNil(t, services.Orders)
	assert.NotNil(t, services.Customers)
	assert.NotNil(t, services.Account)
	assert.NotNil(t, services.Insights)
	assert.NotNil(t, services.Selection)
	assert.Nil(t, services.Observability.Sink, "metrics are off by default")
}

func TestNewServicesErrors(t *testing.T) {
	_, err := NewServices(nil)
	require.Error(t, err)

	cfg := testAppConfig()
	cfg.API.BaseURL = "ftp://api.local"
	_, err = NewServices(&ServiceDeps{Config: cfg, Logger: discardLogger()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store API client")

	cfg = testAppConfig()
	cfg.API.DataPath = "data["
	_, err = NewServices(&ServiceDeps{Config: cfg, Logger: discardLogger()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JMESPath")
}

func TestBuildSelectionBackend(t *testing.T) {
	logger := discardLogger()

	backend, err := buildSelectionBackend(config.SelectionConfig{Backend: config.SelectionBackendMemory, Capacity: 2}, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &memory.SelectionBackend{}, backend)

	_, err = buildSelectionBackend(config.SelectionConfig{Backend: config.SelectionBackendRedis}, nil, logger)
	require.Error(t, err, "redis backend needs a client")

	_, err = buildSelectionBackend(config.SelectionConfig{Backend: "disk"}, nil, logger)
	require.Error(t, err)

	client := testutil.SetupTestRedis(t)
	t.Cleanup(func() { _ = client.Close() })
	backend, err = buildSelectionBackend(config.SelectionConfig{Backend: config.SelectionBackendRedis, KeyPrefix: "t:"}, client, logger)
	require.NoError(t, err)
	assert.IsType(t, &redisadapter.SelectionBackend{}, backend)
}

func TestNewServicesAuthRoles(t *testing.T) {
	adminToken := signedToken(t, jwt.MapClaims{"sub": "u1", "role": []any{"Admin"}})
	shopperToken := signedToken(t, jwt.MapClaims{"sub": "u2", "role": "customer"})

	tests := []struct {
		name    string
		enforce bool
		token   string
		want    domainauth.Role
	}{
		{name: "admin claim", enforce: true, token: adminToken, want: domainauth.RoleAdmin},
		{name: "customer claim", enforce: true, token: shopperToken, want: domainauth.RoleCustomer},
		{name: "opaque token", enforce: true, token: "opaque-token", want: domainauth.RoleCustomer},
		{name: "enforcement off", enforce: false, token: "opaque-token", want: domainauth.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testAppConfig()
			cfg.Auth.EnforceAdminRole = tt.enforce
			services, err := NewServices(&ServiceDeps{Config: cfg, Logger: discardLogger()})
			require.NoError(t, err)

			sess, ok := services.Auth.SessionFor(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.want, sess.Role)
		})
	}
}

func TestRedisProbe(t *testing.T) {
	assert.Nil(t, redisProbe(nil), "no redis means nothing to probe")

	client := testutil.SetupTestRedis(t)
	t.Cleanup(func() { _ = client.Close() })
	probe := redisProbe(client)
	require.NotNil(t, probe)
	assert.NoError(t, probe(context.Background()))
}
