package impl

import (
	"context"
	"log/slog"

	deliverycontext "ayra/internal/delivery/context"
	"ayra/internal/domain/entity"
	"ayra/internal/domain/repository"
	"ayra/internal/errors"
	"ayra/internal/usecase"

	"go.uber.org/fx"
)

// safetyService implements the SafetyUsecase interface.
type safetyService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// SafetyServiceParams holds dependencies for SafetyService, injected by Fx.
type SafetyServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewSafetyService is the constructor for safetyService.
func NewSafetyService(params SafetyServiceParams) usecase.SafetyUsecase {
	return &safetyService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *safetyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

func (srv *safetyService) AddSafeRoute(ctx context.Context, alertID int64, route string) (*entity.SafeRoute, error) {
	safeRoute := &entity.SafeRoute{AlertID: alertID, Route: route}
	err := srv.withAlert(ctx, alertID, func(safetyRepo repository.SafetyRepository) error {
		return safetyRepo.CreateRoute(ctx, safeRoute)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add safe route")
	}
	srv.log(ctx).Info("Safe route added", slog.Int64("alert_id", alertID), slog.Int64("safe_route_id", safeRoute.ID))

	return safeRoute, nil
}

func (srv *safetyService) ListSafeRoutes(ctx context.Context, alertID int64) ([]*entity.SafeRoute, error) {
	var routes []*entity.SafeRoute
	err := srv.withAlert(ctx, alertID, func(safetyRepo repository.SafetyRepository) error {
		found, err := safetyRepo.FindRoutesByAlert(ctx, alertID)
		routes = found

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list safe routes")
	}

	return routes, nil
}

func (srv *safetyService) AddSafeLocation(ctx context.Context, alertID int64, location string) (*entity.SafeLocation, error) {
	safeLocation := &entity.SafeLocation{AlertID: alertID, Location: location}
	err := srv.withAlert(ctx, alertID, func(safetyRepo repository.SafetyRepository) error {
		return safetyRepo.CreateLocation(ctx, safeLocation)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add safe location")
	}
	srv.log(ctx).Info("Safe location added", slog.Int64("alert_id", alertID), slog.Int64("safe_location_id", safeLocation.ID))

	return safeLocation, nil
}

func (srv *safetyService) ListSafeLocations(ctx context.Context, alertID int64) ([]*entity.SafeLocation, error) {
	var locations []*entity.SafeLocation
	err := srv.withAlert(ctx, alertID, func(safetyRepo repository.SafetyRepository) error {
		found, err := safetyRepo.FindLocationsByAlert(ctx, alertID)
		locations = found

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list safe locations")
	}

	return locations, nil
}

func (srv *safetyService) AddSafeTip(ctx context.Context, alertID int64, tip string) (*entity.SafeTip, error) {
	safeTip := &entity.SafeTip{AlertID: alertID, Tip: tip}
	err := srv.withAlert(ctx, alertID, func(safetyRepo repository.SafetyRepository) error {
		return safetyRepo.CreateTip(ctx, safeTip)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add safe tip")
	}
	srv.log(ctx).Info("Safe tip added", slog.Int64("alert_id", alertID), slog.Int64("safe_tip_id", safeTip.ID))

	return safeTip, nil
}

func (srv *safetyService) ListSafeTips(ctx context.Context, alertID int64) ([]*entity.SafeTip, error) {
	var tips []*entity.SafeTip
	err := srv.withAlert(ctx, alertID, func(safetyRepo repository.SafetyRepository) error {
		found, err := safetyRepo.FindTipsByAlert(ctx, alertID)
		tips = found

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list safe tips")
	}

	return tips, nil
}

// withAlert runs fn in a transaction after checking that the alert exists.
func (srv *safetyService) withAlert(ctx context.Context, alertID int64, fn func(repository.SafetyRepository) error) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findAlert(ctx, repoFactory.AlertRepo(), alertID); err != nil {
			return err
		}

		return fn(repoFactory.SafetyRepo())
	})
}
