package impl

import (
	"context"
	"testing"

	"ayra/internal/domain/entity"
	domainerrors "ayra/internal/domain/errors"
	"ayra/internal/domain/repository"
	"ayra/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSafetyService(t *testing.T) (*txFixture, usecase.SafetyUsecase) {
	tx := newTxFixture(t)

	return tx, NewSafetyService(SafetyServiceParams{TxManager: tx.txManager, Logger: discardLogger()})
}

func TestSafetyService_AddSafeRoute(t *testing.T) {
	f, service := createTestSafetyService(t)
	ctx := context.Background()

	f.alertRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Alert{ID: 1}, nil)
	f.safetyRepo.EXPECT().
		CreateRoute(ctx, &entity.SafeRoute{AlertID: 1, Route: "Rua Direita -> Praça da Sé"}).
		RunAndReturn(func(_ context.Context, r *entity.SafeRoute) error {
			r.ID = 4

			return nil
		})

	route, err := service.AddSafeRoute(ctx, 1, "Rua Direita -> Praça da Sé")

	require.NoError(t, err)
	assert.Equal(t, int64(4), route.ID)
	assert.Equal(t, int64(1), route.AlertID)
}

func TestSafetyService_AddSafeTip_UnknownAlert(t *testing.T) {
	f, service := createTestSafetyService(t)
	ctx := context.Background()

	f.alertRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrAlertNotFound)

	_, err := service.AddSafeTip(ctx, 9, "tip")

	assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
	f.safetyRepo.AssertNotCalled(t, "CreateTip", mock.Anything, mock.Anything)
}

func TestSafetyService_Lists(t *testing.T) {
	f, service := createTestSafetyService(t)
	ctx := context.Background()

	f.alertRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Alert{ID: 1}, nil)
	f.safetyRepo.EXPECT().FindRoutesByAlert(ctx, int64(1)).Return([]*entity.SafeRoute{{ID: 1}}, nil)
	f.safetyRepo.EXPECT().FindLocationsByAlert(ctx, int64(1)).Return([]*entity.SafeLocation{{ID: 2}, {ID: 3}}, nil)
	f.safetyRepo.EXPECT().FindTipsByAlert(ctx, int64(1)).Return([]*entity.SafeTip{}, nil)

	routes, err := service.ListSafeRoutes(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, routes, 1)

	locations, err := service.ListSafeLocations(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, locations, 2)

	tips, err := service.ListSafeTips(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, tips)
}

func TestSafetyService_AddSafeLocation(t *testing.T) {
	f, service := createTestSafetyService(t)
	ctx := context.Background()

	f.alertRepo.EXPECT().FindByID(ctx, int64(2)).Return(&entity.Alert{ID: 2}, nil)
	f.safetyRepo.EXPECT().CreateLocation(ctx, mock.AnythingOfType("*entity.SafeLocation")).Return(nil)

	location, err := service.AddSafeLocation(ctx, 2, "Parque Ibirapuera")

	require.NoError(t, err)
	assert.Equal(t, "Parque Ibirapuera", location.Location)
}
