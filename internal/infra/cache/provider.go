package cache

import (
	"context"
	"log/slog"
	"time"

	"ayra/config"
	"ayra/internal/domain/lifecycle"
	"ayra/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

// Params defines the dependencies for the marker cache.
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics service.CacheMetrics `optional:"true"`
}

// NewMarkerCache returns the Redis-backed cache when Redis is configured and
// a no-op cache otherwise. An unreachable Redis at startup is logged, not
// fatal: the breaker keeps requests on the database until it recovers.
func NewMarkerCache(params Params) service.MarkerCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, marker cache disabled")

		return noopMarkerCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, cache will retry lazily",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Marker cache enabled", slog.String("addr", cfg.Addr), slog.Duration("ttl", cfg.TTL))

	return newRedisMarkerCache(client, cfg.TTL, params.Logger, params.Metrics)
}
