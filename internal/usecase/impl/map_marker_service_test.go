package impl

import (
	"context"
	"testing"

	"ayra/config"
	"ayra/internal/domain/entity"
	domainerrors "ayra/internal/domain/errors"
	"ayra/internal/domain/repository"
	mockSvc "ayra/internal/mocks/service"
	mockUC "ayra/internal/mocks/usecase"
	"ayra/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type markerServiceFixtures struct {
	*txFixture
	service  usecase.MapMarkerUsecase
	resolver *mockUC.MockCoordinateResolver
	cache    *mockSvc.MockMarkerCache
	exporter *mockSvc.MockMarkerExporter
	qrCode   *mockSvc.MockQRCodeService
}

func createTestMarkerService(t *testing.T) markerServiceFixtures {
	tx := newTxFixture(t)
	resolver := mockUC.NewMockCoordinateResolver(t)
	cache := mockSvc.NewMockMarkerCache(t)
	exporter := mockSvc.NewMockMarkerExporter(t)
	qrCode := mockSvc.NewMockQRCodeService(t)

	service := NewMapMarkerService(MapMarkerServiceParams{
		TxManager:     tx.txManager,
		Resolver:      resolver,
		Cache:         cache,
		Exporter:      exporter,
		QRCodeService: qrCode,
		Config:        &config.Config{Export: &config.ExportConfig{MaxRows: 500}},
		Logger:        discardLogger(),
	})

	return markerServiceFixtures{
		txFixture: tx,
		service:   service,
		resolver:  resolver,
		cache:     cache,
		exporter:  exporter,
		qrCode:    qrCode,
	}
}

func sampleMarker() *entity.MapMarker {
	return &entity.MapMarker{
		ID:           5,
		Title:        "Inundação no Centro",
		Intensity:    entity.IntensityHigh,
		Radius:       99.99,
		CoordinateID: 1,
		Coordinate:   &entity.Coordinate{ID: 1, Latitude: -23.5505, Longitude: -46.6333},
	}
}

func TestMapMarkerService_CreateMarker_Success(t *testing.T) {
	f := createTestMarkerService(t)
	ctx := context.Background()
	coordinate := &entity.Coordinate{ID: 1, Latitude: -23.5505, Longitude: -46.6333}
	input := &usecase.MarkerInput{
		Title:      "Alagamento",
		Intensity:  entity.IntensityMedium,
		Radius:     80,
		Coordinate: &usecase.CoordinateInput{Latitude: -23.5505, Longitude: -46.6334},
	}

	f.resolver.EXPECT().Resolve(ctx, f.coordinateRepo, input.Coordinate).Return(coordinate, nil)
	f.markerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.MapMarker")).
		RunAndReturn(func(_ context.Context, m *entity.MapMarker) error {
			m.ID = 9

			return nil
		})
	f.cache.EXPECT().InvalidatePages(ctx).Return()

	marker, err := f.service.CreateMarker(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(9), marker.ID)
	assert.Equal(t, int64(1), marker.CoordinateID)
	assert.Same(t, coordinate, marker.Coordinate)
	assert.Equal(t, "Alagamento", marker.Title)
}

func TestMapMarkerService_CreateMarker_CoordinateRequired(t *testing.T) {
	f := createTestMarkerService(t)

	marker, err := f.service.CreateMarker(context.Background(), &usecase.MarkerInput{Title: "x"})

	assert.Nil(t, marker)
	assert.ErrorIs(t, err, domainerrors.ErrCoordinateRequired)
	f.assertNoTransaction(t)
}

func TestMapMarkerService_CreateMarker_UnknownCoordinateID(t *testing.T) {
	f := createTestMarkerService(t)
	ctx := context.Background()
	input := &usecase.MarkerInput{Title: "x", Coordinate: &usecase.CoordinateInput{ID: ptr(int64(99))}}

	f.resolver.EXPECT().
		Resolve(ctx, f.coordinateRepo, input.Coordinate).
		Return(nil, domainerrors.ErrCoordinateNotFound)

	marker, err := f.service.CreateMarker(ctx, input)

	assert.Nil(t, marker)
	assert.ErrorIs(t, err, domainerrors.ErrCoordinateNotFound)
	f.markerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.cache.AssertNotCalled(t, "InvalidatePages", mock.Anything)
}

func TestMapMarkerService_GetMarker_CacheHit(t *testing.T) {
	f := createTestMarkerService(t)
	ctx := context.Background()
	cached := sampleMarker()

	f.cache.EXPECT().GetMarker(ctx, int64(5)).Return(cached, true)

	marker, err := f.service.GetMarker(ctx, 5)

	require.NoError(t, err)
	assert.Same(t, cached, marker)
	f.assertNoTransaction(t)
}

func TestMapMarkerService_GetMarker_CacheMissLoadsAndStores(t *testing.T) {
	f := createTestMarkerService(t)
	ctx := context.Background()
	stored := sampleMarker()

	f.cache.EXPECT().GetMarker(ctx, int64(5)).Return(nil, false)
	f.markerRepo.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil)
	f.cache.EXPECT().SetMarker(ctx, stored).Return()

	marker, err := f.service.GetMarker(ctx, 5)

	require.NoError(t, err)
	assert.Same(t, stored, marker)
}

func TestMapMarkerService_GetMarker_NotFound(t *testing.T) {
	f := createTestMarkerService(t)
	ctx := context.Background()

	f.cache.EXPECT().GetMarker(ctx, int64(8)).Return(nil, false)
	f.markerRepo.EXPECT().FindByID(ctx, int64(8)).Return(nil, repository.ErrMapMarkerNotFound)

	marker, err := f.service.GetMarker(ctx, 8)

	assert.Nil(t, marker)
	assert.ErrorIs(t, err, domainerrors.ErrMapMarkerNotFound)
	f.cache.AssertNotCalled(t, "SetMarker", mock.Anything, mock.Anything)
}

func TestMapMarkerService_ListMarkers_FiltersByIntensity(t *testing.T) {
	f := createTestMarkerService(t)
	ctx := context.Background()
	filter := entity.IntensityFilter{Intensity: entity.IntensityHigh}
	pageable := entity.Pageable{Page: 0, Size: 10, Sort: entity.Sort{Field: "id", Descending: true}}
	page := entity.NewPage([]*entity.MapMarker{sampleMarker()}, pageable, 1)
	key := pageCacheKey(filter, pageable)

	f.cache.EXPECT().GetPage(ctx, key).Return(nil, false)
	f.markerRepo.EXPECT().FindPage(ctx, filter, pageable).Return(page, nil)
	f.cache.EXPECT().SetPage(ctx, key, page).Return()

	got, err := f.service.ListMarkers(ctx, usecase.ListQuery{Intensity: "high"})

	require.NoError(t, err)
	assert.Same(t, page, got)
}

func TestMapMarkerService_ListMarkers_CachedPage(t *testing.T) {
	f := createTestMarkerService(t)
	ctx := context.Background()
	page := &entity.Page[*entity.MapMarker]{Size: 20}

	f.cache.EXPECT().GetPage(ctx, mock.AnythingOfType("string")).Return(page, true)

	got, err := f.service.ListMarkers(ctx, usecase.ListQuery{Size: 20})

	require.NoError(t, err)
	assert.Same(t, page, got)
	f.assertNoTransaction(t)
}

func TestMapMarkerService_ListMarkers_InvalidSort(t *testing.T) {
	f := createTestMarkerService(t)

	_, err := f.service.ListMarkers(context.Background(), usecase.ListQuery{Sort: "created_at"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	f.assertNoTransaction(t)
}

func TestMapMarkerService_UpdateMarker_Success(t *testing.T) {
	f := createTestMarkerService(t)
	ctx := context.Background()
	stored := sampleMarker()

	f.markerRepo.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil)
	f.markerRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(m *entity.MapMarker) bool {
			return m.ID == 5 && m.Title == "Atualizado" && m.Radius == 10
		})).
		Return(nil)
	f.cache.EXPECT().InvalidateMarker(ctx, int64(5)).Return()
	f.cache.EXPECT().InvalidatePages(ctx).Return()

	marker, err := f.service.UpdateMarker(ctx, 5, &usecase.MarkerUpdateInput{
		Title:     "Atualizado",
		Intensity: entity.IntensityLow,
		Radius:    10,
	})

	require.NoError(t, err)
	assert.Equal(t, "Atualizado", marker.Title)
	assert.Equal(t, int64(1), marker.CoordinateID)
}

func TestMapMarkerService_DeleteMarker(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := createTestMarkerService(t)
		ctx := context.Background()

		f.markerRepo.EXPECT().Delete(ctx, int64(5)).Return(nil)
		f.cache.EXPECT().InvalidateMarker(ctx, int64(5)).Return()
		f.cache.EXPECT().InvalidatePages(ctx).Return()

		require.NoError(t, f.service.DeleteMarker(ctx, 5))
	})

	t.Run("not found", func(t *testing.T) {
		f := createTestMarkerService(t)
		ctx := context.Background()

		f.markerRepo.EXPECT().Delete(ctx, int64(6)).Return(repository.ErrMapMarkerNotFound)

		err := f.service.DeleteMarker(ctx, 6)

		assert.ErrorIs(t, err, domainerrors.ErrMapMarkerNotFound)
		f.cache.AssertNotCalled(t, "InvalidateMarker", mock.Anything, mock.Anything)
	})
}

func TestMapMarkerService_ExportMarkers(t *testing.T) {
	f := createTestMarkerService(t)
	ctx := context.Background()
	markers := []*entity.MapMarker{sampleMarker()}
	pageable := entity.Pageable{Page: 0, Size: 500, Sort: entity.Sort{Field: "title"}}

	f.markerRepo.EXPECT().
		FindPage(ctx, entity.IntensityFilter{Intensity: "low"}, pageable).
		Return(entity.NewPage(markers, pageable, 1), nil)
	f.exporter.EXPECT().ExportMarkers(markers).Return([]byte("xlsx"), nil)
	f.exporter.EXPECT().ContentType().Return("application/test")

	export, err := f.service.ExportMarkers(ctx, usecase.ListQuery{Intensity: "low", Sort: "title", Page: 3, Size: 2})

	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), export.Content)
	assert.Equal(t, "application/test", export.ContentType)
	assert.Equal(t, 1, export.Rows)
}

func TestMapMarkerService_MarkerQRCode(t *testing.T) {
	f := createTestMarkerService(t)
	ctx := context.Background()
	marker := sampleMarker()

	f.cache.EXPECT().GetMarker(ctx, int64(5)).Return(marker, true)
	f.qrCode.EXPECT().GenerateLocationQR(-23.5505, -46.6333, marker.Title).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := f.service.MarkerQRCode(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
