package impl

import (
	"context"
	"testing"

	"ayra/internal/domain/entity"
	domainerrors "ayra/internal/domain/errors"
	"ayra/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateService_GetCoordinate(t *testing.T) {
	f := newTxFixture(t)
	service := NewCoordinateService(CoordinateServiceParams{TxManager: f.txManager, Logger: discardLogger()})
	ctx := context.Background()
	stored := &entity.Coordinate{ID: 1, Latitude: -23.5505, Longitude: -46.6333}

	f.coordinateRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)
	f.coordinateRepo.EXPECT().FindByID(ctx, int64(2)).Return(nil, repository.ErrCoordinateNotFound)

	got, err := service.GetCoordinate(ctx, 1)
	require.NoError(t, err)
	assert.Same(t, stored, got)

	_, err = service.GetCoordinate(ctx, 2)
	assert.ErrorIs(t, err, domainerrors.ErrCoordinateNotFound)
}
