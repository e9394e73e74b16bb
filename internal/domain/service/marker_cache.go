package service

import (
	"context"

	"ayra/internal/domain/entity"
)

// MarkerCache is a best-effort read cache for map markers. Implementations
// never return errors: a failed lookup is a miss and a failed write is dropped.
type MarkerCache interface {
	GetMarker(ctx context.Context, id int64) (*entity.MapMarker, bool)
	SetMarker(ctx context.Context, marker *entity.MapMarker)

	// GetPage and SetPage cache listing pages under a caller-built key.
	GetPage(ctx context.Context, key string) (*entity.Page[*entity.MapMarker], bool)
	SetPage(ctx context.Context, key string, page *entity.Page[*entity.MapMarker])

	// InvalidateMarker evicts one marker.
	InvalidateMarker(ctx context.Context, id int64)

	// InvalidatePages makes every cached page stale.
	InvalidatePages(ctx context.Context)
}

// CacheMetrics records cache lookups.
type CacheMetrics interface {
	CacheLookup(kind string, hit bool)
}
