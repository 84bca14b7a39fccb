package config_test

import (
	"os"
	"testing"

	"github.com/davidbz/ratecard/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 30, cfg.Server.WriteTimeout)
		require.Equal(t, 10, cfg.Server.ShutdownTimeout)
		require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
		require.Equal(t, "info", cfg.Log.Level)
		require.False(t, cfg.Log.Development)
		require.Equal(t, config.StoreMemory, cfg.Store.Backend)
		require.Equal(t, "localhost:6379", cfg.Redis.Addr)
		require.Equal(t, "ratecard:", cfg.Redis.KeyPrefix)
		require.Empty(t, cfg.Redis.Password)
		require.Equal(t, 8, cfg.Batch.Concurrency)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("SERVER_READ_TIMEOUT", "60")
		t.Setenv("SERVER_WRITE_TIMEOUT", "60")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("STORE_BACKEND", "redis")
		t.Setenv("REDIS_ADDR", "redis:6380")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("BATCH_CONCURRENCY", "16")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, 60, cfg.Server.ReadTimeout)
		require.Equal(t, 60, cfg.Server.WriteTimeout)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, config.StoreRedis, cfg.Store.Backend)
		require.Equal(t, "redis:6380", cfg.Redis.Addr)
		require.Equal(t, 2, cfg.Redis.DB)
		require.Equal(t, 16, cfg.Batch.Concurrency)
		require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("should expose sub-configs for injection", func(t *testing.T) {
		os.Clearenv()

		cfg := config.Load()
		deps := config.ParseDependenciesConfig(cfg)

		require.Same(t, &cfg.Server, deps.ServerConfig)
		require.Same(t, &cfg.Redis, deps.RedisConfig)
		require.Same(t, &cfg.Batch, deps.BatchConfig)
	})
}
