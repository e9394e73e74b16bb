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

	"go.uber.org/fx"
)

// mapMarkerService implements the MapMarkerUsecase interface.
type mapMarkerService struct {
	txManager     repository.TransactionManager
	resolver      usecase.CoordinateResolver
	cache         service.MarkerCache
	exporter      service.MarkerExporter
	qrCodeService service.QRCodeService
	limits        *config.PaginationConfig
	exportMaxRows int
	logger        *slog.Logger
}

// MapMarkerServiceParams holds dependencies for MapMarkerService, injected by Fx.
type MapMarkerServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	Resolver      usecase.CoordinateResolver
	Cache         service.MarkerCache
	Exporter      service.MarkerExporter
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewMapMarkerService is the constructor for mapMarkerService.
func NewMapMarkerService(params MapMarkerServiceParams) usecase.MapMarkerUsecase {
	limits := params.Config.PaginationOrDefault()
	exportMaxRows := limits.MaxSize
	if params.Config.Export != nil && params.Config.Export.MaxRows > 0 {
		exportMaxRows = params.Config.Export.MaxRows
	}

	return &mapMarkerService{
		txManager:     params.TxManager,
		resolver:      params.Resolver,
		cache:         params.Cache,
		exporter:      params.Exporter,
		qrCodeService: params.QRCodeService,
		limits:        limits,
		exportMaxRows: exportMaxRows,
		logger:        params.Logger,
	}
}

func (srv *mapMarkerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// CreateMarker resolves the coordinate and inserts the marker in one transaction.
func (srv *mapMarkerService) CreateMarker(ctx context.Context, input *usecase.MarkerInput) (*entity.MapMarker, error) {
	if input.Coordinate == nil {
		return nil, errors.WithStack(domainerrors.ErrCoordinateRequired)
	}

	marker := &entity.MapMarker{
		Title:       input.Title,
		Description: input.Description,
		Intensity:   input.Intensity,
		Radius:      input.Radius,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		coordinate, err := srv.resolver.Resolve(ctx, repoFactory.CoordinateRepo(), input.Coordinate)
		if err != nil {
			return errors.Wrap(err, "failed to resolve coordinate")
		}
		marker.CoordinateID = coordinate.ID
		marker.Coordinate = coordinate

		if err := repoFactory.MapMarkerRepo().Create(ctx, marker); err != nil {
			return errors.Wrap(err, "failed to create map marker")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create map marker", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create marker transaction")
	}

	srv.cache.InvalidatePages(ctx)
	srv.log(ctx).Info("Map marker created",
		slog.Int64("marker_id", marker.ID),
		slog.Int64("coordinate_id", marker.CoordinateID),
	)

	return marker, nil
}

func (srv *mapMarkerService) GetMarker(ctx context.Context, id int64) (*entity.MapMarker, error) {
	if marker, ok := srv.cache.GetMarker(ctx, id); ok {
		return marker, nil
	}

	var marker *entity.MapMarker
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findMarker(ctx, repoFactory.MapMarkerRepo(), id)
		if err != nil {
			return err
		}
		marker = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get map marker")
	}

	srv.cache.SetMarker(ctx, marker)

	return marker, nil
}

func (srv *mapMarkerService) ListMarkers(ctx context.Context, query usecase.ListQuery) (*entity.Page[*entity.MapMarker], error) {
	pageable, err := buildPageable(srv.limits, query)
	if err != nil {
		return nil, err
	}
	filter := intensityFilter(query)

	cacheKey := pageCacheKey(filter, pageable)
	if page, ok := srv.cache.GetPage(ctx, cacheKey); ok {
		return page, nil
	}

	page, err := srv.findPage(ctx, filter, pageable)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list map markers")
	}

	srv.cache.SetPage(ctx, cacheKey, page)

	return page, nil
}

// UpdateMarker replaces the descriptive fields and returns the stored marker.
func (srv *mapMarkerService) UpdateMarker(ctx context.Context, id int64, input *usecase.MarkerUpdateInput) (*entity.MapMarker, error) {
	var marker *entity.MapMarker
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		markerRepo := repoFactory.MapMarkerRepo()

		found, err := findMarker(ctx, markerRepo, id)
		if err != nil {
			return err
		}

		found.Title = input.Title
		found.Description = input.Description
		found.Intensity = input.Intensity
		found.Radius = input.Radius

		if err := markerRepo.Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrMapMarkerNotFound) {
				return errors.WithStack(domainerrors.ErrMapMarkerNotFound)
			}

			return errors.Wrap(err, "failed to update map marker")
		}
		marker = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update marker transaction")
	}

	srv.cache.InvalidateMarker(ctx, id)
	srv.cache.InvalidatePages(ctx)
	srv.log(ctx).Info("Map marker updated", slog.Int64("marker_id", id))

	return marker, nil
}

func (srv *mapMarkerService) DeleteMarker(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.MapMarkerRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrMapMarkerNotFound) {
				return errors.WithStack(domainerrors.ErrMapMarkerNotFound)
			}

			return errors.Wrap(err, "failed to delete map marker")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete marker transaction")
	}

	srv.cache.InvalidateMarker(ctx, id)
	srv.cache.InvalidatePages(ctx)
	srv.log(ctx).Info("Map marker deleted", slog.Int64("marker_id", id))

	return nil
}

func (srv *mapMarkerService) ExportMarkers(ctx context.Context, query usecase.ListQuery) (*usecase.MarkerExport, error) {
	sort, err := parseSort(query.Sort)
	if err != nil {
		return nil, err
	}
	pageable := entity.Pageable{Page: 0, Size: srv.exportMaxRows, Sort: sort}

	page, err := srv.findPage(ctx, intensityFilter(query), pageable)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load markers for export")
	}
	if page.TotalElements > int64(len(page.Content)) {
		srv.log(ctx).Warn("Marker export truncated",
			slog.Int("rows", len(page.Content)),
			slog.Int64("total", page.TotalElements),
		)
	}

	content, err := srv.exporter.ExportMarkers(page.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode marker export")
	}

	return &usecase.MarkerExport{
		Content:     content,
		ContentType: srv.exporter.ContentType(),
		Rows:        len(page.Content),
	}, nil
}

func (srv *mapMarkerService) MarkerQRCode(ctx context.Context, id int64) ([]byte, error) {
	marker, err := srv.GetMarker(ctx, id)
	if err != nil {
		return nil, err
	}
	if marker.Coordinate == nil {
		return nil, errors.WithStack(domainerrors.ErrCoordinateNotFound)
	}

	png, err := srv.qrCodeService.GenerateLocationQR(marker.Coordinate.Latitude, marker.Coordinate.Longitude, marker.Title)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate marker qr code")
	}

	return png, nil
}

func (srv *mapMarkerService) findPage(ctx context.Context, filter entity.IntensityFilter, pageable entity.Pageable) (*entity.Page[*entity.MapMarker], error) {
	var page *entity.Page[*entity.MapMarker]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.MapMarkerRepo().FindPage(ctx, filter, pageable)
		if err != nil {
			return err
		}
		page = found

		return nil
	})

	return page, err
}

func findMarker(ctx context.Context, markerRepo repository.MapMarkerRepository, id int64) (*entity.MapMarker, error) {
	marker, err := markerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMapMarkerNotFound) {
			return nil, errors.WithStack(domainerrors.ErrMapMarkerNotFound)
		}

		return nil, errors.Wrap(err, "failed to find map marker")
	}

	return marker, nil
}
