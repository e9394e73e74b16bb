package impl

import (
	"context"
	"testing"
	"time"

	"ayra/config"
	deliverycontext "ayra/internal/delivery/context"
	"ayra/internal/domain/entity"
	domainerrors "ayra/internal/domain/errors"
	"ayra/internal/domain/repository"
	"ayra/internal/domain/service"
	mockSvc "ayra/internal/mocks/service"
	mockUC "ayra/internal/mocks/usecase"
	"ayra/internal/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type alertServiceFixtures struct {
	*txFixture
	service   usecase.AlertUsecase
	resolver  *mockUC.MockCoordinateResolver
	publisher *mockSvc.MockEventPublisher
	clock     *clockwork.FakeClock
}

func createTestAlertService(t *testing.T) alertServiceFixtures {
	tx := newTxFixture(t)
	resolver := mockUC.NewMockCoordinateResolver(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	clock := clockwork.NewFakeClockAt(time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC))

	service := NewAlertService(AlertServiceParams{
		TxManager: tx.txManager,
		Resolver:  resolver,
		Publisher: publisher,
		Clock:     clock,
		Config:    &config.Config{},
		Logger:    discardLogger(),
	})

	return alertServiceFixtures{txFixture: tx, service: service, resolver: resolver, publisher: publisher, clock: clock}
}

func sampleAlertInput() *usecase.AlertInput {
	return &usecase.AlertInput{
		Title:       "Inundação Severa no Centro",
		Intensity:   entity.IntensityHigh,
		Location:    "Centro de São Paulo",
		Radius:      99.99,
		MapMarkerID: ptr(int64(5)),
		Coordinate:  &usecase.CoordinateInput{Latitude: -23.5505, Longitude: -46.6333},
	}
}

func expectAlertInsert(ctx context.Context, f alertServiceFixtures, input *usecase.AlertInput) {
	f.markerRepo.EXPECT().FindByID(ctx, int64(5)).Return(sampleMarker(), nil)
	f.resolver.EXPECT().
		Resolve(ctx, f.coordinateRepo, input.Coordinate).
		Return(&entity.Coordinate{ID: 1, Latitude: -23.5505, Longitude: -46.6333}, nil)
	f.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		RunAndReturn(func(_ context.Context, a *entity.Alert) error {
			a.ID = 11

			return nil
		})
}

func TestAlertService_CreateAlert_PublishesEvent(t *testing.T) {
	f := createTestAlertService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	input := sampleAlertInput()

	expectAlertInsert(ctx, f, input)
	f.publisher.EXPECT().
		PublishAlertRaised(ctx, mock.MatchedBy(func(e *service.AlertEvent) bool {
			return e.AlertID == 11 &&
				e.RequestID == "req-1" &&
				e.Latitude == -23.5505 &&
				*e.MapMarkerID == 5 &&
				e.AlertDatetime.Equal(f.clock.Now())
		})).
		Return(nil)

	alert, err := f.service.CreateAlert(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(11), alert.ID)
	assert.Equal(t, int64(1), alert.CoordinateID)
	assert.True(t, alert.AlertDatetime.Equal(f.clock.Now()))
}

func TestAlertService_CreateAlert_PublishFailureKeepsAlert(t *testing.T) {
	f := createTestAlertService(t)
	ctx := context.Background()
	input := sampleAlertInput()

	expectAlertInsert(ctx, f, input)
	f.publisher.EXPECT().PublishAlertRaised(ctx, mock.Anything).Return(assert.AnError)

	alert, err := f.service.CreateAlert(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(11), alert.ID)
}

func TestAlertService_CreateAlert_UnknownMarker(t *testing.T) {
	f := createTestAlertService(t)
	ctx := context.Background()
	input := sampleAlertInput()

	f.markerRepo.EXPECT().FindByID(ctx, int64(5)).Return(nil, repository.ErrMapMarkerNotFound)

	_, err := f.service.CreateAlert(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrMapMarkerNotFound)
	f.resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
	f.alertRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishAlertRaised", mock.Anything, mock.Anything)
}

func TestAlertService_CreateAlert_CoordinateRequired(t *testing.T) {
	f := createTestAlertService(t)
	input := sampleAlertInput()
	input.Coordinate = nil

	_, err := f.service.CreateAlert(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrCoordinateRequired)
	f.assertNoTransaction(t)
}

func TestAlertService_GetAlert_NotFound(t *testing.T) {
	f := createTestAlertService(t)
	ctx := context.Background()

	f.alertRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, repository.ErrAlertNotFound)

	_, err := f.service.GetAlert(ctx, 3)

	assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
}

func TestAlertService_ListAlerts(t *testing.T) {
	f := createTestAlertService(t)
	ctx := context.Background()
	pageable := entity.Pageable{Page: 1, Size: 5, Sort: entity.Sort{Field: "intensity", Descending: true}}
	page := entity.NewPage([]*entity.Alert{{ID: 1}}, pageable, 6)

	f.alertRepo.EXPECT().FindPage(ctx, entity.IntensityFilter{}, pageable).Return(page, nil)

	got, err := f.service.ListAlerts(ctx, usecase.ListQuery{Page: 1, Size: 5, Sort: "intensity,desc"})

	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalPages)
}

func TestAlertService_DeleteAlert_NotFound(t *testing.T) {
	f := createTestAlertService(t)
	ctx := context.Background()

	f.alertRepo.EXPECT().Delete(ctx, int64(3)).Return(repository.ErrAlertNotFound)

	err := f.service.DeleteAlert(ctx, 3)

	assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
}
