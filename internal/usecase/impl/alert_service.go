package impl

import (
	"context"
	"log/slog"

	"ayra/config"
	deliverycontext "ayra/internal/delivery/context"
	"ayra/internal/domain/entity"
	domainerrors "ayra/internal/domain/errors"
	"ayra/internal/domain/repository"
	"ayra/internal/domain/service"
	"ayra/internal/errors"
	"ayra/internal/usecase"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

// alertService implements the AlertUsecase interface.
type alertService struct {
	txManager repository.TransactionManager
	resolver  usecase.CoordinateResolver
	publisher service.EventPublisher
	clock     clockwork.Clock
	limits    *config.PaginationConfig
	logger    *slog.Logger
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Resolver  usecase.CoordinateResolver
	Publisher service.EventPublisher
	Clock     clockwork.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAlertService is the constructor for alertService.
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	clock := params.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &alertService{
		txManager: params.TxManager,
		resolver:  params.Resolver,
		publisher: params.Publisher,
		clock:     clock,
		limits:    params.Config.PaginationOrDefault(),
		logger:    params.Logger,
	}
}

func (srv *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// CreateAlert checks the optional marker, resolves the coordinate and inserts
// the alert in one transaction, then publishes the alert-raised event.
// Publishing is best-effort: a failure is logged and the alert is kept.
func (srv *alertService) CreateAlert(ctx context.Context, input *usecase.AlertInput) (*entity.Alert, error) {
	if input.Coordinate == nil {
		return nil, errors.WithStack(domainerrors.ErrCoordinateRequired)
	}

	alertDatetime := srv.clock.Now()
	if input.AlertDatetime != nil {
		alertDatetime = *input.AlertDatetime
	}

	alert := &entity.Alert{
		Title:         input.Title,
		Description:   input.Description,
		Intensity:     input.Intensity,
		AlertDatetime: alertDatetime,
		Location:      input.Location,
		Radius:        input.Radius,
		MapMarkerID:   input.MapMarkerID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if input.MapMarkerID != nil {
			if _, err := findMarker(ctx, repoFactory.MapMarkerRepo(), *input.MapMarkerID); err != nil {
				return err
			}
		}

		coordinate, err := srv.resolver.Resolve(ctx, repoFactory.CoordinateRepo(), input.Coordinate)
		if err != nil {
			return errors.Wrap(err, "failed to resolve coordinate")
		}
		alert.CoordinateID = coordinate.ID
		alert.Coordinate = coordinate

		if err := repoFactory.AlertRepo().Create(ctx, alert); err != nil {
			return errors.Wrap(err, "failed to create alert")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create alert", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create alert transaction")
	}

	srv.log(ctx).Info("Alert created", slog.Int64("alert_id", alert.ID), slog.String("intensity", alert.Intensity))
	srv.publishRaised(ctx, alert)

	return alert, nil
}

func (srv *alertService) publishRaised(ctx context.Context, alert *entity.Alert) {
	event := &service.AlertEvent{
		RequestID:     deliverycontext.RequestIDFrom(ctx),
		AlertID:       alert.ID,
		Title:         alert.Title,
		Intensity:     alert.Intensity,
		Location:      alert.Location,
		Latitude:      alert.Coordinate.Latitude,
		Longitude:     alert.Coordinate.Longitude,
		Radius:        alert.Radius,
		AlertDatetime: alert.AlertDatetime,
		MapMarkerID:   alert.MapMarkerID,
	}

	if err := srv.publisher.PublishAlertRaised(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish alert event",
			slog.Int64("alert_id", alert.ID),
			slog.Any("error", err),
		)
	}
}

func (srv *alertService) GetAlert(ctx context.Context, id int64) (*entity.Alert, error) {
	var alert *entity.Alert
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findAlert(ctx, repoFactory.AlertRepo(), id)
		if err != nil {
			return err
		}
		alert = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get alert")
	}

	return alert, nil
}

func (srv *alertService) ListAlerts(ctx context.Context, query usecase.ListQuery) (*entity.Page[*entity.Alert], error) {
	pageable, err := buildPageable(srv.limits, query)
	if err != nil {
		return nil, err
	}

	var page *entity.Page[*entity.Alert]
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AlertRepo().FindPage(ctx, intensityFilter(query), pageable)
		if err != nil {
			return err
		}
		page = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alerts")
	}

	return page, nil
}

func (srv *alertService) DeleteAlert(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AlertRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrAlertNotFound) {
				return errors.WithStack(domainerrors.ErrAlertNotFound)
			}

			return errors.Wrap(err, "failed to delete alert")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete alert transaction")
	}

	srv.log(ctx).Info("Alert deleted", slog.Int64("alert_id", id))

	return nil
}

func findAlert(ctx context.Context, alertRepo repository.AlertRepository, id int64) (*entity.Alert, error) {
	alert, err := alertRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAlertNotFound)
		}

		return nil, errors.Wrap(err, "failed to find alert")
	}

	return alert, nil
}
