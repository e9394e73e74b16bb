package cache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"ayra/config"
	"ayra/internal/domain/entity"
	"ayra/internal/domain/service"

	"github.com/go-redis/redis/v8"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMetrics struct {
	hits, misses map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{hits: map[string]int{}, misses: map[string]int{}}
}

func (m *recordingMetrics) CacheLookup(kind string, hit bool) {
	if hit {
		m.hits[kind]++
	} else {
		m.misses[kind]++
	}
}

func newUnreachableCache(t *testing.T, metrics *recordingMetrics) *redisMarkerCache {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	var m service.CacheMetrics
	if metrics != nil {
		m = metrics
	}

	return newRedisMarkerCache(client, time.Minute, slog.New(slog.DiscardHandler), m)
}

func TestRedisMarkerCache_UnreachableRedisDegradesToMiss(t *testing.T) {
	metrics := newRecordingMetrics()
	c := newUnreachableCache(t, metrics)
	ctx := context.Background()

	c.SetMarker(ctx, &entity.MapMarker{ID: 1, Title: "x"})

	_, ok := c.GetMarker(ctx, 1)
	assert.False(t, ok)

	_, ok = c.GetPage(ctx, "intensity=high")
	assert.False(t, ok)

	assert.Equal(t, 1, metrics.misses[lookupMarker])
	assert.Equal(t, 1, metrics.misses[lookupPage])
	assert.Zero(t, metrics.hits[lookupMarker])
}

func TestRedisMarkerCache_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	c := newUnreachableCache(t, nil)
	ctx := context.Background()

	for i := 0; i < breakerTripAfter; i++ {
		_, _ = c.GetMarker(ctx, int64(i))
	}
	require.Equal(t, gobreaker.StateOpen, c.cb.State())

	// While open, calls are rejected without touching Redis.
	start := time.Now()
	c.InvalidateMarker(ctx, 1)
	c.InvalidatePages(ctx)
	assert.Less(t, time.Since(start), 40*time.Millisecond)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "ayra:marker:42", markerKey(42))
	assert.Equal(t, "ayra:markers:page:3:p=0&s=10", pageKey(3, "p=0&s=10"))
}

func TestNoopMarkerCache(t *testing.T) {
	c := NewMarkerCache(Params{Config: &config.Config{}, Logger: slog.New(slog.DiscardHandler)})
	ctx := context.Background()

	c.SetMarker(ctx, &entity.MapMarker{ID: 1})
	_, ok := c.GetMarker(ctx, 1)
	assert.False(t, ok)

	c.SetPage(ctx, "k", &entity.Page[*entity.MapMarker]{})
	_, ok = c.GetPage(ctx, "k")
	assert.False(t, ok)

	c.InvalidateMarker(ctx, 1)
	c.InvalidatePages(ctx)
}
