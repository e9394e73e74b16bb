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

// mapMarkerRepository implements repository.MapMarkerRepository using GORM.
type mapMarkerRepository struct {
	db *gorm.DB
}

// NewMapMarkerRepository is the constructor for mapMarkerRepository.
func NewMapMarkerRepository(db *gorm.DB) repository.MapMarkerRepository {
	return &mapMarkerRepository{db: db}
}

// Create inserts the marker row only; the coordinate must already exist.
func (repo *mapMarkerRepository) Create(ctx context.Context, marker *entity.MapMarker) error {
	markerM := fromMapMarkerDomain(marker)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(markerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCoordinateNotFound.WrapMessage("marker references a missing coordinate")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create map marker")
	}

	marker.ID = markerM.ID
	marker.CreatedAt = markerM.CreatedAt
	marker.UpdatedAt = markerM.UpdatedAt

	return nil
}

func (repo *mapMarkerRepository) FindByID(ctx context.Context, id int64) (*entity.MapMarker, error) {
	var markerM model.MapMarkerModel
	if err := repo.db.WithContext(ctx).Preload("Coordinate").First(&markerM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMapMarkerNotFound
		}

		return nil, errors.Wrap(err, "failed to find map marker by id")
	}

	return toMapMarkerDomain(&markerM), nil
}

func (repo *mapMarkerRepository) FindPage(ctx context.Context, filter entity.IntensityFilter, pageable entity.Pageable) (*entity.Page[*entity.MapMarker], error) {
	markerMs, total, err := findFilteredPage[model.MapMarkerModel](ctx, repo.db, filter, pageable, "Coordinate")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list map markers")
	}

	markers := make([]*entity.MapMarker, 0, len(markerMs))
	for _, markerM := range markerMs {
		markers = append(markers, toMapMarkerDomain(markerM))
	}

	return entity.NewPage(markers, pageable, total), nil
}

// Update rewrites the descriptive fields. The coordinate link never changes.
func (repo *mapMarkerRepository) Update(ctx context.Context, marker *entity.MapMarker) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MapMarkerModel{ID: marker.ID}).
		Select("title", "description", "intensity", "radius").
		Updates(&model.MapMarkerModel{
			Title:       marker.Title,
			Description: marker.Description,
			Intensity:   marker.Intensity,
			Radius:      marker.Radius,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update map marker")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMapMarkerNotFound
	}

	return nil
}

func (repo *mapMarkerRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.MapMarkerModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete map marker")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMapMarkerNotFound
	}

	return nil
}

func toMapMarkerDomain(data *model.MapMarkerModel) *entity.MapMarker {
	return &entity.MapMarker{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Intensity:    data.Intensity,
		Radius:       data.Radius,
		CoordinateID: data.CoordinateID,
		Coordinate:   toCoordinateDomain(data.Coordinate),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromMapMarkerDomain(data *entity.MapMarker) *model.MapMarkerModel {
	coordinateID := data.CoordinateID
	if coordinateID == 0 && data.Coordinate != nil {
		coordinateID = data.Coordinate.ID
	}

	return &model.MapMarkerModel{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Intensity:    data.Intensity,
		Radius:       data.Radius,
		CoordinateID: coordinateID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
