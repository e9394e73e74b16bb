package usecase

import (
	"context"
	"time"

	"ayra/internal/domain/entity"
	"ayra/internal/domain/repository"
)

// CoordinateInput is a candidate point for a new marker, alert or user.
// When ID is set the stored row is authoritative and the other fields are ignored.
type CoordinateInput struct {
	ID        *int64
	Latitude  float64
	Longitude float64
	Date      *time.Time // Defaults to today.
}

// CoordinateResolver finds or creates the coordinate row for a candidate.
// It runs against the repository of the caller's transaction.
type CoordinateResolver interface {
	Resolve(ctx context.Context, repo repository.CoordinateRepository, input *CoordinateInput) (*entity.Coordinate, error)
}

// CoordinateUsecase exposes stored coordinates read-only.
type CoordinateUsecase interface {
	GetCoordinate(ctx context.Context, id int64) (*entity.Coordinate, error)
}
