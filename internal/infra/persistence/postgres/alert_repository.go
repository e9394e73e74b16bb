package postgres

import (
	"context"

	"ayra/internal/domain/entity"
	domainerrors "ayra/internal/domain/errors"
	"ayra/internal/domain/repository"
	"ayra/internal/errors"
	"ayra/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// alertRepository implements repository.AlertRepository using GORM.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{db: db}
}

func (repo *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	alertM := fromAlertDomain(alert)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(alertM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMapMarkerNotFound.WrapMessage("alert references a missing marker or coordinate")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt

	return nil
}

func (repo *alertRepository) FindByID(ctx context.Context, id int64) (*entity.Alert, error) {
	byID := func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }

	var alertM model.AlertModel
	err := repo.db.WithContext(ctx).
		Preload("Coordinate").
		Preload("SafeRoutes", byID).
		Preload("SafeLocations", byID).
		Preload("SafeTips", byID).
		First(&alertM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert by id")
	}

	return toAlertDomain(&alertM), nil
}

func (repo *alertRepository) FindPage(ctx context.Context, filter entity.IntensityFilter, pageable entity.Pageable) (*entity.Page[*entity.Alert], error) {
	alertMs, total, err := findFilteredPage[model.AlertModel](ctx, repo.db, filter, pageable, "Coordinate")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alerts")
	}

	alerts := make([]*entity.Alert, 0, len(alertMs))
	for _, alertM := range alertMs {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return entity.NewPage(alerts, pageable, total), nil
}

// Delete removes the alert row; safety records go with it through ON DELETE CASCADE.
func (repo *alertRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.AlertModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete alert")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

func toAlertDomain(data *model.AlertModel) *entity.Alert {
	alert := &entity.Alert{
		ID:            data.ID,
		Title:         data.Title,
		Description:   data.Description,
		Intensity:     data.Intensity,
		AlertDatetime: data.AlertDatetime,
		Location:      data.Location,
		Radius:        data.Radius,
		CoordinateID:  data.CoordinateID,
		Coordinate:    toCoordinateDomain(data.Coordinate),
		MapMarkerID:   data.MapMarkerID,
		CreatedAt:     data.CreatedAt,
	}

	for i := range data.SafeRoutes {
		alert.SafeRoutes = append(alert.SafeRoutes, toSafeRouteDomain(&data.SafeRoutes[i]))
	}
	for i := range data.SafeLocations {
		alert.SafeLocations = append(alert.SafeLocations, toSafeLocationDomain(&data.SafeLocations[i]))
	}
	for i := range data.SafeTips {
		alert.SafeTips = append(alert.SafeTips, toSafeTipDomain(&data.SafeTips[i]))
	}

	return alert
}

func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	coordinateID := data.CoordinateID
	if coordinateID == 0 && data.Coordinate != nil {
		coordinateID = data.Coordinate.ID
	}

	return &model.AlertModel{
		ID:            data.ID,
		Title:         data.Title,
		Description:   data.Description,
		Intensity:     data.Intensity,
		AlertDatetime: data.AlertDatetime,
		Location:      data.Location,
		Radius:        data.Radius,
		CoordinateID:  coordinateID,
		MapMarkerID:   data.MapMarkerID,
		CreatedAt:     data.CreatedAt,
	}
}
