package usecase

import (
	"context"
	"time"

	"ayra/internal/domain/entity"
)

// AlertInput defines the data required to raise an alert.
type AlertInput struct {
	Title         string
	Description   string
	Intensity     string
	AlertDatetime *time.Time // Defaults to now.
	Location      string
	Radius        float64
	MapMarkerID   *int64
	Coordinate    *CoordinateInput
}

// AlertUsecase defines the alert operations.
type AlertUsecase interface {
	// CreateAlert persists the alert and then publishes an alert-raised event.
	CreateAlert(ctx context.Context, input *AlertInput) (*entity.Alert, error)
	GetAlert(ctx context.Context, id int64) (*entity.Alert, error)
	ListAlerts(ctx context.Context, query ListQuery) (*entity.Page[*entity.Alert], error)
	DeleteAlert(ctx context.Context, id int64) error
}
