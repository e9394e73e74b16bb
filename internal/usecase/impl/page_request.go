package impl

import (
	"fmt"
	"math"
	"strings"

	"ayra/config"
	"ayra/internal/domain/entity"
	domainerrors "ayra/internal/domain/errors"
	"ayra/internal/usecase"
)

// defaultSort is applied when a listing names no sort.
var defaultSort = entity.Sort{Field: entity.SortFieldID, Descending: true} //nolint:gochecknoglobals

// buildPageable turns a raw listing query into a bounded page request.
// Size 0 selects the default size and sizes above the maximum are clamped.
// Pages whose row offset does not fit in an int are rejected.
func buildPageable(limits *config.PaginationConfig, query usecase.ListQuery) (entity.Pageable, error) {
	if query.Page < 0 {
		return entity.Pageable{}, domainerrors.ErrValidationFailed.WithDetails("page must not be negative")
	}
	if query.Size < 0 {
		return entity.Pageable{}, domainerrors.ErrValidationFailed.WithDetails("size must not be negative")
	}

	size := query.Size
	if size == 0 {
		size = limits.DefaultSize
	}
	if size > limits.MaxSize {
		size = limits.MaxSize
	}
	if size > 0 && query.Page > math.MaxInt/size {
		return entity.Pageable{}, domainerrors.ErrValidationFailed.WithDetails("page is out of range")
	}

	sort, err := parseSort(query.Sort)
	if err != nil {
		return entity.Pageable{}, err
	}

	return entity.Pageable{Page: query.Page, Size: size, Sort: sort}, nil
}

// parseSort reads "field[,asc|desc]". A bare field sorts ascending.
func parseSort(raw string) (entity.Sort, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultSort, nil
	}

	field, direction, _ := strings.Cut(raw, ",")
	field = strings.ToLower(strings.TrimSpace(field))

	switch field {
	case entity.SortFieldID, entity.SortFieldTitle, entity.SortFieldIntensity, entity.SortFieldRadius:
	default:
		return entity.Sort{}, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unsupported sort field %q", field))
	}

	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "", "asc":
		return entity.Sort{Field: field}, nil
	case "desc":
		return entity.Sort{Field: field, Descending: true}, nil
	default:
		return entity.Sort{}, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unsupported sort direction %q", direction))
	}
}

func intensityFilter(query usecase.ListQuery) entity.IntensityFilter {
	return entity.IntensityFilter{Intensity: strings.TrimSpace(query.Intensity)}
}

// pageCacheKey identifies one listing page inside a cache generation.
func pageCacheKey(filter entity.IntensityFilter, pageable entity.Pageable) string {
	direction := "asc"
	if pageable.Sort.Descending {
		direction = "desc"
	}

	return fmt.Sprintf("i=%s:p=%d:s=%d:o=%s,%s", filter.Intensity, pageable.Page, pageable.Size, pageable.Sort.Field, direction)
}
