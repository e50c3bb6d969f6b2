package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/target/storefront-ui/config"
	"github.com/target/storefront-ui/internal/adapters/authroles"
	"github.com/target/storefront-ui/internal/adapters/jwtclaims"
	"github.com/target/storefront-ui/internal/adapters/memory"
	redisadapter "github.com/target/storefront-ui/internal/adapters/redis"
	"github.com/target/storefront-ui/internal/adapters/storeapi"
	"github.com/target/storefront-ui/internal/observability/metrics"
	"github.com/target/storefront-ui/internal/observability/statsd"
	"github.com/target/storefront-ui/internal/ports"
	"github.com/target/storefront-ui/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth          *service.AuthService
	Catalog       *service.CatalogService
	Cart          *service.CartService
	Orders        *service.OrderService
	Customers     *service.CustomerService
	Account       *service.AccountService
	Insights      *service.InsightsService
	Selection     *service.SelectionStore
	Observability ObservabilityContainer
}

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	// Sink is nil when metrics are disabled.
	Sink          statsd.Sink
	MetricsClient *statsd.Client
	MetricsConfig config.ObservabilityMetricsConfig
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config *config.AppConfig
	// RedisClient is required when the selection backend is redis.
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// metricsService tags every metric line with the emitting process.
const metricsService = "storefront-ui"

// buildObservability configures the StatsD sink. A dial failure disables metrics instead of failing startup.
func buildObservability(logger *slog.Logger, cfg config.ObservabilityConfig) ObservabilityContainer {
	out := ObservabilityContainer{MetricsConfig: cfg.Metrics}
	if !cfg.Metrics.IsEnabled() {
		return out
	}

	client, err := statsd.NewClient(statsd.Config{
		Address: cfg.Metrics.StatsdAddress,
		Prefix:  cfg.Metrics.Prefix,
		Service: metricsService,
		Env:     cfg.Metrics.Env,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialise statsd client", "error", err)
		return out
	}
	out.MetricsClient = client
	out.Sink = client
	return out
}

// buildStoreAPI constructs the remote API client; every call is reported to the metrics sink.
func buildStoreAPI(cfg config.APIConfig, sink statsd.Sink, logger *slog.Logger) (*storeapi.API, error) {
	opts := storeapi.ClientOptions{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
		Paths: storeapi.Paths{
			Data:    cfg.DataPath,
			Error:   cfg.ErrorPath,
			Token:   cfg.TokenPath,
			Refresh: cfg.RefreshPath,
		},
		Logger: logger,
	}
	if sink != nil {
		opts.Observer = func(op string, took time.Duration, err error) {
			metrics.EmitAPICall(sink, metrics.APICallMetric{Op: op, Duration: took, Err: err})
		}
	}

	client, err := storeapi.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("create store API client: %w", err)
	}
	return storeapi.New(client), nil
}

// buildSelectionBackend picks where page-load selection slots live.
//
//nolint:ireturn // the backend is chosen at runtime.
func buildSelectionBackend(
	cfg config.SelectionConfig,
	redisClient redis.UniversalClient,
	logger *slog.Logger,
) (ports.SelectionBackend, error) {
	switch cfg.Backend {
	case config.SelectionBackendRedis:
		if redisClient == nil {
			return nil, errors.New("selection backend redis requires a redis client")
		}
		logger.Info("selection store using redis", "prefix", cfg.KeyPrefix, "ttl", cfg.TTL)
		return redisadapter.NewSelectionBackend(redisadapter.SelectionBackendOptions{
			Client: redisClient,
			Prefix: cfg.KeyPrefix,
			TTL:    cfg.TTL,
		}), nil
	case config.SelectionBackendMemory, "":
		logger.Info("selection store using memory", "capacity", cfg.Capacity, "ttl", cfg.TTL)
		return memory.NewSelectionBackend(memory.SelectionBackendConfig{
			Capacity: cfg.Capacity,
			TTL:      cfg.TTL,
			Now:      time.Now,
		}), nil
	default:
		return nil, fmt.Errorf("unknown selection backend %q", cfg.Backend)
	}
}

// newAuthService derives session roles from unverified token claims.
func newAuthService(cfg config.AuthConfig, api *storeapi.API) *service.AuthService {
	return service.NewAuthService(service.AuthServiceOptions{
		API:    api.Auth,
		Claims: jwtclaims.Reader{RoleClaim: cfg.RoleClaim},
		Roles: authroles.ClaimRoleMapper{
			AdminRoles: cfg.AdminRoles,
			AllAdmin:   !cfg.EnforceAdminRole,
		},
	})
}

// NewServices wires the store API adapters into the application services.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service deps require a config")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	obs := buildObservability(logger, cfg.Observability)

	api, err := buildStoreAPI(cfg.API, obs.Sink, logger)
	if err != nil {
		return ServiceContainer{}, err
	}

	backend, err := buildSelectionBackend(cfg.Selection, deps.RedisClient, logger)
	if err != nil {
		return ServiceContainer{}, err
	}

	return ServiceContainer{
		Auth: newAuthService(cfg.Auth, api),
		Catalog: service.NewCatalogService(service.CatalogServiceOptions{
			Products:   api.Products,
			Categories: api.Categories,
			Logger:     logger,
		}),
		Cart:   service.NewCartService(service.CartServiceOptions{Cart: api.Cart, Logger: logger}),
		Orders: service.NewOrderService(service.OrderServiceOptions{Orders: api.Orders, Logger: logger}),
		Customers: service.NewCustomerService(service.CustomerServiceOptions{
			Customers: api.Customers,
			Orders:    api.Orders,
		}),
		Account: service.NewAccountService(api.Account),
		Insights: service.NewInsightsService(service.InsightsServiceOptions{
			Insights:  api.Insights,
			Orders:    api.Orders,
			Customers: api.Customers,
			Products:  api.Products,
		}),
		Selection: service.NewSelectionStore(service.SelectionStoreOptions{
			Backend: backend,
			Metrics: obs.Sink,
			Logger:  logger,
		}),
		Observability: obs,
	}, nil
}
