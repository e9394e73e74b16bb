package repository

import (
	"context"

	"ayra/internal/domain/entity"
	"ayra/internal/errors"
)

// ErrAlertNotFound is returned when no alert has the requested ID.
var ErrAlertNotFound = errors.New("alert not found")

// AlertRepository defines persistence for alerts.
type AlertRepository interface {
	Create(ctx context.Context, alert *entity.Alert) error

	// FindByID loads the alert with its coordinate and safety records.
	FindByID(ctx context.Context, id int64) (*entity.Alert, error)

	// FindPage lists alerts matching filter; safety records are not loaded.
	FindPage(ctx context.Context, filter entity.IntensityFilter, pageable entity.Pageable) (*entity.Page[*entity.Alert], error)

	// Delete removes the alert and, through the foreign keys, its safety records.
	Delete(ctx context.Context, id int64) error
}
