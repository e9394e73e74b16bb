// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"ayra/internal/domain/entity"
	"ayra/internal/errors"

	"github.com/paulmach/orb"
)

// ErrCoordinateNotFound is returned when no coordinate has the requested ID.
var ErrCoordinateNotFound = errors.New("coordinate not found")

// CoordinateRepository stores geographic points and answers proximity lookups.
type CoordinateRepository interface {
	// FindByID retrieves a coordinate by its ID.
	// Returns ErrCoordinateNotFound when the row does not exist.
	FindByID(ctx context.Context, id int64) (*entity.Coordinate, error)

	// FindWithinBound returns every coordinate whose latitude and longitude lie
	// inside bound (edges inclusive), ordered by ID ascending.
	FindWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Coordinate, error)

	// Create inserts a coordinate and sets its generated ID.
	Create(ctx context.Context, coordinate *entity.Coordinate) error
}
