package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/target/storefront-ui/config"
	httpx "github.com/target/storefront-ui/internal/http"
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config      *config.AppConfig
	Services    ServiceContainer
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildHTTPHandler assembles the storefront router from the service container.
func BuildHTTPHandler(cfg *HTTPServerConfig) (http.Handler, error) {
	if cfg == nil || cfg.Config == nil {
		return nil, errors.New("http server config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config

	handler, err := httpx.NewRouter(httpx.RouterServices{
		Auth:      cfg.Services.Auth,
		Catalog:   cfg.Services.Catalog,
		Cart:      cfg.Services.Cart,
		Orders:    cfg.Services.Orders,
		Customers: cfg.Services.Customers,
		Account:   cfg.Services.Account,
		Insights:  cfg.Services.Insights,
		Selection: cfg.Services.Selection,
		Cookies: httpx.CredentialCookies{
			TokenName:   appCfg.Auth.TokenCookie,
			RefreshName: appCfg.Auth.RefreshCookie,
			Domain:      appCfg.HTTP.CookieDomain,
			TTL:         appCfg.Auth.TokenTTL,
		},
		SummaryInterval: appCfg.Cart.SummaryInterval,
		Health:          redisProbe(cfg.RedisClient),
		Metrics:         cfg.Services.Observability.Sink,
		IsDev:           appCfg.IsDev,
		Logger:          logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}
	return handler, nil
}

// redisProbe reports the redis selection backend in /healthz. Without redis there is nothing to probe.
func redisProbe(client redis.UniversalClient) httpx.HealthProbe {
	if client == nil {
		return nil
	}
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

// StartHTTPServer starts serving in the background. Serve failures are sent on errCh.
// Request contexts derive from ctx, so canceling it ends open cart summary streams.
func StartHTTPServer(ctx context.Context, cfg *HTTPServerConfig, errCh chan<- error) (*http.Server, error) {
	handler, err := BuildHTTPHandler(cfg)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	httpCfg := cfg.Config.HTTP

	server := &http.Server{
		Addr:              httpCfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       httpCfg.ReadTimeout,
		WriteTimeout:      httpCfg.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", serveErr)
		}
	}()

	return server, nil
}

// ShutdownHTTPServer gracefully shuts down the HTTP server, closing it outright
// when in-flight requests outlive timeout.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, timeout time.Duration, logger *slog.Logger) error {
	if server == nil {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			if closeErr := server.Close(); closeErr != nil {
				return errors.Join(err, closeErr)
			}
			logger.Warn("HTTP server forced closed after shutdown timeout")
			return nil
		}
		return err
	}

	logger.Info("HTTP server stopped")
	return nil
}
