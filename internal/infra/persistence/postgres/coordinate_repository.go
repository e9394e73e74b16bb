// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"ayra/internal/domain/entity"
	domainerrors "ayra/internal/domain/errors"
	"ayra/internal/domain/repository"
	"ayra/internal/errors"
	"ayra/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

// coordinateRepository implements repository.CoordinateRepository using GORM.
type coordinateRepository struct {
	db *gorm.DB
}

// NewCoordinateRepository is the constructor for coordinateRepository.
func NewCoordinateRepository(db *gorm.DB) repository.CoordinateRepository {
	return &coordinateRepository{db: db}
}

func (repo *coordinateRepository) FindByID(ctx context.Context, id int64) (*entity.Coordinate, error) {
	var coordinateM model.CoordinateModel
	if err := repo.db.WithContext(ctx).First(&coordinateM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCoordinateNotFound
		}

		return nil, errors.Wrap(err, "failed to find coordinate by id")
	}

	return toCoordinateDomain(&coordinateM), nil
}

// FindWithinBound uses BETWEEN on both axes, which includes the box edges.
func (repo *coordinateRepository) FindWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Coordinate, error) {
	var coordinateMs []*model.CoordinateModel
	err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Order("id ASC").
		Find(&coordinateMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search coordinates within bound")
	}

	coordinates := make([]*entity.Coordinate, 0, len(coordinateMs))
	for _, coordinateM := range coordinateMs {
		coordinates = append(coordinates, toCoordinateDomain(coordinateM))
	}

	return coordinates, nil
}

func (repo *coordinateRepository) Create(ctx context.Context, coordinate *entity.Coordinate) error {
	coordinateM := fromCoordinateDomain(coordinate)
	if err := repo.db.WithContext(ctx).Create(coordinateM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create coordinate")
	}

	coordinate.ID = coordinateM.ID

	return nil
}

func toCoordinateDomain(data *model.CoordinateModel) *entity.Coordinate {
	if data == nil {
		return nil
	}

	return &entity.Coordinate{
		ID:        data.ID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Date:      data.Date,
	}
}

func fromCoordinateDomain(data *entity.Coordinate) *model.CoordinateModel {
	return &model.CoordinateModel{
		ID:        data.ID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Date:      data.Date,
	}
}
