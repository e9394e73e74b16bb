package impl

import (
	"context"
	"log/slog"

	deliverycontext "ayra/internal/delivery/context"
	"ayra/internal/domain/entity"
	domainerrors "ayra/internal/domain/errors"
	"ayra/internal/domain/repository"
	"ayra/internal/errors"
	"ayra/internal/usecase"

	"go.uber.org/fx"
)

// coordinateService implements the CoordinateUsecase interface.
type coordinateService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// CoordinateServiceParams holds dependencies for CoordinateService, injected by Fx.
type CoordinateServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewCoordinateService is the constructor for coordinateService.
func NewCoordinateService(params CoordinateServiceParams) usecase.CoordinateUsecase {
	return &coordinateService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *coordinateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

func (srv *coordinateService) GetCoordinate(ctx context.Context, id int64) (*entity.Coordinate, error) {
	var coordinate *entity.Coordinate
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CoordinateRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCoordinateNotFound) {
				return errors.WithStack(domainerrors.ErrCoordinateNotFound)
			}

			return errors.Wrap(err, "failed to find coordinate")
		}
		coordinate = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Debug("Failed to get coordinate", slog.Int64("coordinate_id", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get coordinate")
	}

	return coordinate, nil
}
