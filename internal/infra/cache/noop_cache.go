package cache

import (
	"context"

	"ayra/internal/domain/entity"
)

// noopMarkerCache is used when Redis is not configured. Every read misses.
type noopMarkerCache struct{}

func (noopMarkerCache) GetMarker(context.Context, int64) (*entity.MapMarker, bool) { return nil, false }

func (noopMarkerCache) SetMarker(context.Context, *entity.MapMarker) {}

func (noopMarkerCache) GetPage(context.Context, string) (*entity.Page[*entity.MapMarker], bool) {
	return nil, false
}

func (noopMarkerCache) SetPage(context.Context, string, *entity.Page[*entity.MapMarker]) {}

func (noopMarkerCache) InvalidateMarker(context.Context, int64) {}

func (noopMarkerCache) InvalidatePages(context.Context) {}
