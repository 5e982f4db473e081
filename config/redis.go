package config

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the listing cache. Caching is optional: with no address
// configured this returns nil and callers skip the cache entirely.
func InitRedis(cfg *Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		slog.Info("Redis address not configured, listing cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		slog.Error("Failed to connect to Redis, listing cache disabled", "error", err)
		return nil
	}
	slog.Info("Connected to Redis", "addr", cfg.Redis.Addr)
	return client
}
