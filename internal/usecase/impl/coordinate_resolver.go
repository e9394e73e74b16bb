package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

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

// coordinateResolver implements usecase.CoordinateResolver.
type coordinateResolver struct {
	clock   clockwork.Clock
	metrics service.CoordinateMetrics
	logger  *slog.Logger
}

// CoordinateResolverParams holds dependencies for the resolver, injected by Fx.
type CoordinateResolverParams struct {
	fx.In

	Clock   clockwork.Clock
	Logger  *slog.Logger
	Metrics service.CoordinateMetrics `optional:"true"`
}

// NewCoordinateResolver is the constructor for coordinateResolver.
func NewCoordinateResolver(params CoordinateResolverParams) usecase.CoordinateResolver {
	clock := params.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &coordinateResolver{
		clock:   clock,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

func (r *coordinateResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, r.logger)
}

// Resolve returns the row identified by input.ID, else the lowest-id row within
// the proximity tolerance, else a newly inserted row.
func (r *coordinateResolver) Resolve(ctx context.Context, repo repository.CoordinateRepository, input *usecase.CoordinateInput) (*entity.Coordinate, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrCoordinateRequired)
	}

	if input.ID != nil {
		coordinate, err := repo.FindByID(ctx, *input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrCoordinateNotFound) {
				return nil, domainerrors.ErrCoordinateNotFound.WithDetails(fmt.Sprintf("id %d", *input.ID))
			}

			return nil, errors.Wrap(err, "failed to find coordinate by id")
		}
		r.observe(service.ResolutionReusedByID)

		return coordinate, nil
	}

	if err := validateLatLon(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	candidate := &entity.Coordinate{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Date:      r.dateOrToday(input.Date),
	}

	matches, err := repo.FindWithinBound(ctx, candidate.SearchBound(entity.ProximityTolerance))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search nearby coordinates")
	}
	if len(matches) > 0 {
		r.log(ctx).Debug("Reusing nearby coordinate",
			slog.Int64("coordinate_id", matches[0].ID),
			slog.Int("matches", len(matches)),
		)
		r.observe(service.ResolutionReusedByProximity)

		return matches[0], nil
	}

	if err := repo.Create(ctx, candidate); err != nil {
		return nil, errors.Wrap(err, "failed to create coordinate")
	}
	r.log(ctx).Debug("Inserted new coordinate", slog.Int64("coordinate_id", candidate.ID))
	r.observe(service.ResolutionInserted)

	return candidate, nil
}

func (r *coordinateResolver) observe(outcome service.ResolutionOutcome) {
	if r.metrics != nil {
		r.metrics.CoordinateResolved(outcome)
	}
}

func (r *coordinateResolver) dateOrToday(date *time.Time) time.Time {
	if date != nil {
		return calendarDate(*date)
	}

	return calendarDate(r.clock.Now())
}

// calendarDate drops the time of day, keeping the date as seen in t's location.
func calendarDate(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func validateLatLon(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return domainerrors.ErrValidationFailed.WithDetails("latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return domainerrors.ErrValidationFailed.WithDetails("longitude must be between -180 and 180")
	}

	return nil
}
