package impl

import (
	"math"
	"testing"

	"ayra/config"
	"ayra/internal/domain/entity"
	domainerrors "ayra/internal/domain/errors"
	"ayra/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPageable(t *testing.T) {
	limits := &config.PaginationConfig{DefaultSize: 10, MaxSize: 100}

	tests := []struct {
		name  string
		query usecase.ListQuery
		want  entity.Pageable
	}{
		{
			name:  "defaults",
			query: usecase.ListQuery{},
			want:  entity.Pageable{Page: 0, Size: 10, Sort: entity.Sort{Field: "id", Descending: true}},
		},
		{
			name:  "explicit page and size",
			query: usecase.ListQuery{Page: 2, Size: 25},
			want:  entity.Pageable{Page: 2, Size: 25, Sort: entity.Sort{Field: "id", Descending: true}},
		},
		{
			name:  "size clamped to maximum",
			query: usecase.ListQuery{Size: 1000},
			want:  entity.Pageable{Size: 100, Sort: entity.Sort{Field: "id", Descending: true}},
		},
		{
			name:  "bare field sorts ascending",
			query: usecase.ListQuery{Sort: "title"},
			want:  entity.Pageable{Size: 10, Sort: entity.Sort{Field: "title"}},
		},
		{
			name:  "field and direction",
			query: usecase.ListQuery{Sort: " Radius , DESC "},
			want:  entity.Pageable{Size: 10, Sort: entity.Sort{Field: "radius", Descending: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildPageable(limits, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPageable_Rejects(t *testing.T) {
	limits := &config.PaginationConfig{DefaultSize: 10, MaxSize: 100}

	for name, query := range map[string]usecase.ListQuery{
		"negative page":          {Page: -1},
		"negative size":          {Size: -5},
		"unknown field":          {Sort: "password"},
		"unknown direction":      {Sort: "id,sideways"},
		"offset overflows":       {Page: math.MaxInt/10 + 1, Size: 10},
		"default size overflows": {Page: math.MaxInt/10 + 1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := buildPageable(limits, query)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestBuildPageable_LargestPageKeepsOffsetPositive(t *testing.T) {
	limits := &config.PaginationConfig{DefaultSize: 10, MaxSize: 100}

	got, err := buildPageable(limits, usecase.ListQuery{Page: math.MaxInt / 10, Size: 10})
	require.NoError(t, err)
	assert.Positive(t, got.Offset())
}

func TestPageCacheKey(t *testing.T) {
	pageable := entity.Pageable{Page: 1, Size: 10, Sort: entity.Sort{Field: "id", Descending: true}}

	assert.Equal(t, "i=high:p=1:s=10:o=id,desc", pageCacheKey(entity.IntensityFilter{Intensity: "high"}, pageable))
	assert.NotEqual(t,
		pageCacheKey(entity.IntensityFilter{}, pageable),
		pageCacheKey(entity.IntensityFilter{Intensity: "low"}, pageable),
	)
}
