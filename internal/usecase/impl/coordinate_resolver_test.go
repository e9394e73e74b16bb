package impl

import (
	"context"
	"testing"
	"time"

	"ayra/internal/domain/entity"
	domainerrors "ayra/internal/domain/errors"
	"ayra/internal/domain/repository"
	"ayra/internal/domain/service"
	mockRepo "ayra/internal/mocks/repository"
	mockSvc "ayra/internal/mocks/service"
	"ayra/internal/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var resolverNow = time.Date(2025, 5, 20, 15, 30, 0, 0, time.UTC)

func newTestResolver(t *testing.T) (usecase.CoordinateResolver, *mockSvc.MockCoordinateMetrics) {
	metrics := mockSvc.NewMockCoordinateMetrics(t)
	resolver := NewCoordinateResolver(CoordinateResolverParams{
		Clock:   clockwork.NewFakeClockAt(resolverNow),
		Logger:  discardLogger(),
		Metrics: metrics,
	})

	return resolver, metrics
}

func boundContaining(lon, lat float64) any {
	return mock.MatchedBy(func(b orb.Bound) bool {
		return b.Contains(orb.Point{lon, lat})
	})
}

func boundExcluding(lon, lat float64) any {
	return mock.MatchedBy(func(b orb.Bound) bool {
		return !b.Contains(orb.Point{lon, lat})
	})
}

func TestCoordinateResolver_ExistingIDSkipsProximitySearch(t *testing.T) {
	resolver, metrics := newTestResolver(t)
	repo := mockRepo.NewMockCoordinateRepository(t)
	ctx := context.Background()
	stored := &entity.Coordinate{ID: 7, Latitude: -23.5505, Longitude: -46.6333}

	repo.EXPECT().FindByID(ctx, int64(7)).Return(stored, nil)
	metrics.EXPECT().CoordinateResolved(service.ResolutionReusedByID).Return()

	// Latitude and longitude are ignored when the id is known.
	got, err := resolver.Resolve(ctx, repo, &usecase.CoordinateInput{ID: ptr(int64(7)), Latitude: 10, Longitude: 10})

	require.NoError(t, err)
	assert.Same(t, stored, got)
	repo.AssertNotCalled(t, "FindWithinBound", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCoordinateResolver_UnknownIDFailsWithoutInsert(t *testing.T) {
	resolver, _ := newTestResolver(t)
	repo := mockRepo.NewMockCoordinateRepository(t)
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrCoordinateNotFound)

	got, err := resolver.Resolve(ctx, repo, &usecase.CoordinateInput{ID: ptr(int64(404)), Latitude: -23.5505, Longitude: -46.6333})

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrCoordinateNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
	repo.AssertNotCalled(t, "FindWithinBound", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCoordinateResolver_ReusesNearbyCoordinate(t *testing.T) {
	resolver, metrics := newTestResolver(t)
	repo := mockRepo.NewMockCoordinateRepository(t)
	ctx := context.Background()
	seed := &entity.Coordinate{ID: 1, Latitude: -23.5505, Longitude: -46.6333}
	later := &entity.Coordinate{ID: 3, Latitude: -23.55055, Longitude: -46.63335}

	repo.EXPECT().
		FindWithinBound(ctx, boundContaining(seed.Longitude, seed.Latitude)).
		Return([]*entity.Coordinate{seed, later}, nil)
	metrics.EXPECT().CoordinateResolved(service.ResolutionReusedByProximity).Return()

	got, err := resolver.Resolve(ctx, repo, &usecase.CoordinateInput{Latitude: -23.5505, Longitude: -46.6334})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCoordinateResolver_InsertsWhenNothingNearby(t *testing.T) {
	resolver, metrics := newTestResolver(t)
	repo := mockRepo.NewMockCoordinateRepository(t)
	ctx := context.Background()

	repo.EXPECT().
		FindWithinBound(ctx, boundExcluding(-46.6333, -23.5505)).
		Return(nil, nil)
	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Coordinate")).
		RunAndReturn(func(_ context.Context, c *entity.Coordinate) error {
			c.ID = 42

			return nil
		}).
		Once()
	metrics.EXPECT().CoordinateResolved(service.ResolutionInserted).Return()

	got, err := resolver.Resolve(ctx, repo, &usecase.CoordinateInput{Latitude: -23.9999, Longitude: -46.9999})

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, -23.9999, got.Latitude)
	assert.Equal(t, -46.9999, got.Longitude)
	assert.Equal(t, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), got.Date)
}

func TestCoordinateResolver_KeepsSuppliedDate(t *testing.T) {
	resolver, metrics := newTestResolver(t)
	repo := mockRepo.NewMockCoordinateRepository(t)
	ctx := context.Background()
	date := time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)

	repo.EXPECT().FindWithinBound(ctx, mock.Anything).Return([]*entity.Coordinate{}, nil)
	repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Coordinate")).Return(nil)
	metrics.EXPECT().CoordinateResolved(service.ResolutionInserted).Return()

	got, err := resolver.Resolve(ctx, repo, &usecase.CoordinateInput{Latitude: 1, Longitude: 2, Date: &date})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), got.Date)
}

func TestCoordinateResolver_RejectsInvalidInput(t *testing.T) {
	resolver, _ := newTestResolver(t)
	repo := mockRepo.NewMockCoordinateRepository(t)
	ctx := context.Background()

	_, err := resolver.Resolve(ctx, repo, nil)
	assert.ErrorIs(t, err, domainerrors.ErrCoordinateRequired)

	_, err = resolver.Resolve(ctx, repo, &usecase.CoordinateInput{Latitude: 91, Longitude: 0})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = resolver.Resolve(ctx, repo, &usecase.CoordinateInput{Latitude: 0, Longitude: -180.5})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCoordinateResolver_WorksWithoutMetrics(t *testing.T) {
	resolver := NewCoordinateResolver(CoordinateResolverParams{Logger: discardLogger()})
	repo := mockRepo.NewMockCoordinateRepository(t)
	ctx := context.Background()
	stored := &entity.Coordinate{ID: 1}

	repo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)

	got, err := resolver.Resolve(ctx, repo, &usecase.CoordinateInput{ID: ptr(int64(1))})

	require.NoError(t, err)
	assert.Same(t, stored, got)
}
