package repository

import (
	"context"

	"ayra/internal/domain/entity"
	"ayra/internal/errors"
)

// ErrMapMarkerNotFound is returned when no marker has the requested ID.
var ErrMapMarkerNotFound = errors.New("map marker not found")

// MapMarkerRepository defines persistence for map markers.
// Reads always return the marker with its coordinate loaded.
type MapMarkerRepository interface {
	Create(ctx context.Context, marker *entity.MapMarker) error
	FindByID(ctx context.Context, id int64) (*entity.MapMarker, error)

	// FindPage lists markers matching filter, ordered and sliced by pageable.
	FindPage(ctx context.Context, filter entity.IntensityFilter, pageable entity.Pageable) (*entity.Page[*entity.MapMarker], error)

	Update(ctx context.Context, marker *entity.MapMarker) error

	// Delete removes a marker. Returns ErrMapMarkerNotFound when nothing was deleted.
	Delete(ctx context.Context, id int64) error
}
