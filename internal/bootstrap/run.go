package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/target/storefront-ui/config"
)

// RunConfig contains what RunWithShutdown serves.
type RunConfig struct {
	Config      *config.AppConfig
	Services    ServiceContainer
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// RunWithShutdown serves HTTP until SIGINT/SIGTERM or a server failure, then drains.
func RunWithShutdown(cfg *RunConfig) error {
	return runUntil(cfg, shutdownSignal())
}

func shutdownSignal() <-chan struct{} {
	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		signal.Stop(quit)
		close(done)
	}()
	return done
}

// runUntil is RunWithShutdown with the stop signal injected.
func runUntil(cfg *RunConfig, stop <-chan struct{}) error {
	if cfg == nil || cfg.Config == nil {
		return errors.New("run config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	serveCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	server, err := StartHTTPServer(serveCtx, &HTTPServerConfig{
		Config:      cfg.Config,
		Services:    cfg.Services,
		RedisClient: cfg.RedisClient,
		Logger:      logger,
	}, errCh)
	if err != nil {
		return err
	}

	var runErr error
	select {
	case <-stop:
		logger.Info("shutting down storefront...")
	case runErr = <-errCh:
		logger.Error("service error", "error", runErr)
	}

	// Streams watch the request context; cancel before draining so they return.
	cancel()
	if stopErr := ShutdownHTTPServer(context.Background(), server, cfg.Config.HTTP.ShutdownTimeout, logger); stopErr != nil {
		logger.Error("graceful stop failed", "error", stopErr)
		runErr = errors.Join(runErr, stopErr)
	}
	closeObservability(cfg.Services.Observability, logger)
	return runErr
}

func closeObservability(obs ObservabilityContainer, logger *slog.Logger) {
	if obs.MetricsClient == nil {
		return
	}
	if err := obs.MetricsClient.Close(); err != nil {
		logger.Warn("close statsd client", "error", err)
	}
}
