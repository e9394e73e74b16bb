// Package cache implements the marker read cache on Redis.
package cache

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"ayra/internal/domain/entity"
	"ayra/internal/domain/service"
	"ayra/internal/errors"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
)

const (
	keyPrefix        = "ayra:"
	markerKeyPrefix  = keyPrefix + "marker:"
	pageKeyPrefix    = keyPrefix + "markers:page:"
	generationKey    = keyPrefix + "markers:gen"
	breakerName      = "redis-marker-cache"
	breakerTripAfter = 5
	breakerTimeout   = 30 * time.Second

	lookupMarker = "marker"
	lookupPage   = "marker_page"
)

// redisMarkerCache stores markers as JSON. Page keys embed a generation
// counter, so bumping the counter orphans every cached page at once; orphans
// expire through their TTL.
type redisMarkerCache struct {
	client  *redis.Client
	cb      *gobreaker.CircuitBreaker[[]byte]
	ttl     time.Duration
	logger  *slog.Logger
	metrics service.CacheMetrics
}

func newRedisMarkerCache(client *redis.Client, ttl time.Duration, logger *slog.Logger, metrics service.CacheMetrics) *redisMarkerCache {
	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerTripAfter
		},
		// A miss is a healthy answer.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, redis.Nil)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("cache circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &redisMarkerCache{
		client:  client,
		cb:      cb,
		ttl:     ttl,
		logger:  logger,
		metrics: metrics,
	}
}

func (c *redisMarkerCache) GetMarker(ctx context.Context, id int64) (*entity.MapMarker, bool) {
	var marker entity.MapMarker
	hit := c.getJSON(ctx, markerKey(id), &marker)
	c.observe(lookupMarker, hit)
	if !hit {
		return nil, false
	}

	return &marker, true
}

func (c *redisMarkerCache) SetMarker(ctx context.Context, marker *entity.MapMarker) {
	c.setJSON(ctx, markerKey(marker.ID), marker)
}

func (c *redisMarkerCache) GetPage(ctx context.Context, key string) (*entity.Page[*entity.MapMarker], bool) {
	generation, ok := c.generation(ctx)
	if !ok {
		c.observe(lookupPage, false)

		return nil, false
	}

	var page entity.Page[*entity.MapMarker]
	hit := c.getJSON(ctx, pageKey(generation, key), &page)
	c.observe(lookupPage, hit)
	if !hit {
		return nil, false
	}

	return &page, true
}

func (c *redisMarkerCache) SetPage(ctx context.Context, key string, page *entity.Page[*entity.MapMarker]) {
	generation, ok := c.generation(ctx)
	if !ok {
		return
	}

	c.setJSON(ctx, pageKey(generation, key), page)
}

func (c *redisMarkerCache) InvalidateMarker(ctx context.Context, id int64) {
	_, err := c.cb.Execute(func() ([]byte, error) {
		return nil, c.client.Del(ctx, markerKey(id)).Err()
	})
	if err != nil {
		c.logger.WarnContext(ctx, "cache evict failed", slog.Int64("marker_id", id), slog.Any("error", err))
	}
}

func (c *redisMarkerCache) InvalidatePages(ctx context.Context) {
	_, err := c.cb.Execute(func() ([]byte, error) {
		return nil, c.client.Incr(ctx, generationKey).Err()
	})
	if err != nil {
		c.logger.WarnContext(ctx, "cache generation bump failed", slog.Any("error", err))
	}
}

// generation returns the current page generation. An absent counter is
// generation zero.
func (c *redisMarkerCache) generation(ctx context.Context) (int64, bool) {
	raw, err := c.cb.Execute(func() ([]byte, error) {
		return c.client.Get(ctx, generationKey).Bytes()
	})
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		return 0, false
	}

	generation, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, false
	}

	return generation, true
}

func (c *redisMarkerCache) getJSON(ctx context.Context, key string, dest any) bool {
	raw, err := c.cb.Execute(func() ([]byte, error) {
		return c.client.Get(ctx, key).Bytes()
	})
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.DebugContext(ctx, "cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.WarnContext(ctx, "cache entry undecodable", slog.String("key", key), slog.Any("error", err))

		return false
	}

	return true
}

func (c *redisMarkerCache) setJSON(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "cache entry unencodable", slog.String("key", key), slog.Any("error", err))

		return
	}

	_, err = c.cb.Execute(func() ([]byte, error) {
		return nil, c.client.Set(ctx, key, raw, c.ttl).Err()
	})
	if err != nil {
		c.logger.DebugContext(ctx, "cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (c *redisMarkerCache) observe(kind string, hit bool) {
	if c.metrics != nil {
		c.metrics.CacheLookup(kind, hit)
	}
}

func markerKey(id int64) string {
	return markerKeyPrefix + strconv.FormatInt(id, 10)
}

func pageKey(generation int64, key string) string {
	return pageKeyPrefix + strconv.FormatInt(generation, 10) + ":" + key
}
