package usecase

import (
	"context"

	"ayra/internal/domain/entity"
)

// SafetyUsecase manages the safe routes, locations and tips of an alert.
// Every operation fails with ErrAlertNotFound for an unknown alert.
type SafetyUsecase interface {
	AddSafeRoute(ctx context.Context, alertID int64, route string) (*entity.SafeRoute, error)
	ListSafeRoutes(ctx context.Context, alertID int64) ([]*entity.SafeRoute, error)

	AddSafeLocation(ctx context.Context, alertID int64, location string) (*entity.SafeLocation, error)
	ListSafeLocations(ctx context.Context, alertID int64) ([]*entity.SafeLocation, error)

	AddSafeTip(ctx context.Context, alertID int64, tip string) (*entity.SafeTip, error)
	ListSafeTips(ctx context.Context, alertID int64) ([]*entity.SafeTip, error)
}
