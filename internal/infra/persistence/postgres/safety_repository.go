package postgres

import (
	"context"

	"ayra/internal/domain/entity"
	domainerrors "ayra/internal/domain/errors"
	"ayra/internal/domain/repository"
	"ayra/internal/errors"
	"ayra/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// safetyRepository implements repository.SafetyRepository using GORM.
type safetyRepository struct {
	db *gorm.DB
}

// NewSafetyRepository is the constructor for safetyRepository.
func NewSafetyRepository(db *gorm.DB) repository.SafetyRepository {
	return &safetyRepository{db: db}
}

func (repo *safetyRepository) CreateRoute(ctx context.Context, route *entity.SafeRoute) error {
	routeM := &model.SafeRouteModel{AlertID: route.AlertID, Route: route.Route}
	if err := repo.create(ctx, routeM, "safe route"); err != nil {
		return err
	}
	route.ID = routeM.ID

	return nil
}

func (repo *safetyRepository) CreateLocation(ctx context.Context, location *entity.SafeLocation) error {
	locationM := &model.SafeLocationModel{AlertID: location.AlertID, Location: location.Location}
	if err := repo.create(ctx, locationM, "safe location"); err != nil {
		return err
	}
	location.ID = locationM.ID

	return nil
}

func (repo *safetyRepository) CreateTip(ctx context.Context, tip *entity.SafeTip) error {
	tipM := &model.SafeTipModel{AlertID: tip.AlertID, Tip: tip.Tip}
	if err := repo.create(ctx, tipM, "safe tip"); err != nil {
		return err
	}
	tip.ID = tipM.ID

	return nil
}

func (repo *safetyRepository) create(ctx context.Context, value any, kind string) error {
	if err := repo.db.WithContext(ctx).Create(value).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAlertNotFound.WrapMessage(kind + " references a missing alert")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create "+kind)
	}

	return nil
}

func (repo *safetyRepository) FindRoutesByAlert(ctx context.Context, alertID int64) ([]*entity.SafeRoute, error) {
	var routeMs []*model.SafeRouteModel
	if err := repo.findByAlert(ctx, alertID, &routeMs); err != nil {
		return nil, errors.Wrap(err, "failed to list safe routes")
	}

	routes := make([]*entity.SafeRoute, 0, len(routeMs))
	for _, routeM := range routeMs {
		routes = append(routes, toSafeRouteDomain(routeM))
	}

	return routes, nil
}

func (repo *safetyRepository) FindLocationsByAlert(ctx context.Context, alertID int64) ([]*entity.SafeLocation, error) {
	var locationMs []*model.SafeLocationModel
	if err := repo.findByAlert(ctx, alertID, &locationMs); err != nil {
		return nil, errors.Wrap(err, "failed to list safe locations")
	}

	locations := make([]*entity.SafeLocation, 0, len(locationMs))
	for _, locationM := range locationMs {
		locations = append(locations, toSafeLocationDomain(locationM))
	}

	return locations, nil
}

func (repo *safetyRepository) FindTipsByAlert(ctx context.Context, alertID int64) ([]*entity.SafeTip, error) {
	var tipMs []*model.SafeTipModel
	if err := repo.findByAlert(ctx, alertID, &tipMs); err != nil {
		return nil, errors.Wrap(err, "failed to list safe tips")
	}

	tips := make([]*entity.SafeTip, 0, len(tipMs))
	for _, tipM := range tipMs {
		tips = append(tips, toSafeTipDomain(tipM))
	}

	return tips, nil
}

func (repo *safetyRepository) findByAlert(ctx context.Context, alertID int64, dest any) error {
	return repo.db.WithContext(ctx).Where("alert_id = ?", alertID).Order("id ASC").Find(dest).Error
}

func toSafeRouteDomain(data *model.SafeRouteModel) *entity.SafeRoute {
	return &entity.SafeRoute{ID: data.ID, AlertID: data.AlertID, Route: data.Route}
}

func toSafeLocationDomain(data *model.SafeLocationModel) *entity.SafeLocation {
	return &entity.SafeLocation{ID: data.ID, AlertID: data.AlertID, Location: data.Location}
}

func toSafeTipDomain(data *model.SafeTipModel) *entity.SafeTip {
	return &entity.SafeTip{ID: data.ID, AlertID: data.AlertID, Tip: data.Tip}
}
