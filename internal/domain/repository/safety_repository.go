package repository

import (
	"context"

	"ayra/internal/domain/entity"
)

// SafetyRepository stores the safe routes, safe locations and safe tips
// attached to alerts.
type SafetyRepository interface {
	CreateRoute(ctx context.Context, route *entity.SafeRoute) error
	CreateLocation(ctx context.Context, location *entity.SafeLocation) error
	CreateTip(ctx context.Context, tip *entity.SafeTip) error

	FindRoutesByAlert(ctx context.Context, alertID int64) ([]*entity.SafeRoute, error)
	FindLocationsByAlert(ctx context.Context, alertID int64) ([]*entity.SafeLocation, error)
	FindTipsByAlert(ctx context.Context, alertID int64) ([]*entity.SafeTip, error)
}
