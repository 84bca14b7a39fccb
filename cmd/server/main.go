package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/ratecard/internal/config"
	"github.com/davidbz/ratecard/internal/domain"
	"github.com/davidbz/ratecard/internal/http"
	"github.com/davidbz/ratecard/internal/http/middleware"
	"github.com/davidbz/ratecard/internal/metrics"
	"github.com/davidbz/ratecard/internal/observability"
	"github.com/davidbz/ratecard/internal/pricing"
	"github.com/davidbz/ratecard/internal/store/redis"
)

const redisPingTimeout = 5 * time.Second

// ErrUnknownStoreBackend indicates an unsupported STORE_BACKEND value.
var ErrUnknownStoreBackend = errors.New("unknown store backend")

func main() {
	container := buildContainer()

	err := container.Invoke(func(logger *zap.Logger, server *http.Server, serverCfg *config.ServerConfig) error {
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(serverCfg.ShutdownTimeout)*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})
	if err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func(logger *zap.Logger) domain.EventPublisher {
		return observability.NewEventBus(logger.Named("events"))
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}
	if err := container.Provide(func() domain.MetricsRecorder {
		return metrics.NewRecorder()
	}); err != nil {
		log.Fatalf("Failed to provide metrics recorder: %v", err)
	}

	// Rate card store
	if err := container.Provide(newRateCardStore); err != nil {
		log.Fatalf("Failed to provide rate card store: %v", err)
	}

	// Pricing
	if err := container.Provide(pricing.NewRegistry); err != nil {
		log.Fatalf("Failed to provide pricing registry: %v", err)
	}
	if err := container.Provide(pricing.NewEngine); err != nil {
		log.Fatalf("Failed to provide pricing engine: %v", err)
	}
	if err := container.Provide(func(engine *pricing.Engine, cfg *config.BatchConfig) *pricing.Orchestrator {
		return pricing.NewOrchestrator(engine, cfg.Concurrency)
	}); err != nil {
		log.Fatalf("Failed to provide batch orchestrator: %v", err)
	}

	// Domain Services
	if err := container.Provide(domain.NewQuoteService); err != nil {
		log.Fatalf("Failed to provide quote service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

func newRateCardStore(
	logger *zap.Logger,
	storeCfg *config.StoreConfig,
	redisCfg *config.RedisConfig,
) (domain.RateCardStore, error) {
	switch storeCfg.Backend {
	case config.StoreMemory, "":
		logger.Info("using in-memory rate card store")
		return domain.NewInMemoryRateCardStore(), nil

	case config.StoreRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", redisCfg.Addr, err)
		}

		logger.Info("using redis rate card store",
			observability.String("addr", redisCfg.Addr),
			observability.String("key_prefix", redisCfg.KeyPrefix))
		return redis.NewRateCardStore(client, redisCfg.KeyPrefix), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStoreBackend, storeCfg.Backend)
	}
}
