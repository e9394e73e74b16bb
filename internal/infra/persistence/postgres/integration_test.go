//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ayra/internal/domain/entity"
	"ayra/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "ayra",
				"POSTGRES_PASSWORD": "ayra",
				"POSTGRES_DB":       "ayra",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("Skipping test: cannot start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=ayra password=ayra dbname=ayra sslmode=disable", host, port.Port())
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(ctx, db))

	return db
}

func TestIntegration_CoordinateProximity(t *testing.T) {
	db := startPostgres(t)
	repo := NewCoordinateRepository(db)
	ctx := context.Background()

	seed := &entity.Coordinate{Latitude: -23.5505, Longitude: -46.6333, Date: time.Now()}
	require.NoError(t, repo.Create(ctx, seed))

	near := &entity.Coordinate{Latitude: -23.5505, Longitude: -46.6334}
	found, err := repo.FindWithinBound(ctx, near.SearchBound(entity.ProximityTolerance))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, seed.ID, found[0].ID)

	far := &entity.Coordinate{Latitude: -23.9999, Longitude: -46.9999}
	found, err = repo.FindWithinBound(ctx, far.SearchBound(entity.ProximityTolerance))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestIntegration_AlertDeleteCascades(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)

	var alertID int64
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		coordinate := &entity.Coordinate{Latitude: -22.9068, Longitude: -43.1729, Date: time.Now()}
		if err := factory.CoordinateRepo().Create(ctx, coordinate); err != nil {
			return err
		}

		alert := &entity.Alert{
			Title:         "Enchente",
			Intensity:     entity.IntensityHigh,
			AlertDatetime: time.Now(),
			Radius:        300,
			CoordinateID:  coordinate.ID,
		}
		if err := factory.AlertRepo().Create(ctx, alert); err != nil {
			return err
		}
		alertID = alert.ID

		return factory.SafetyRepo().CreateTip(ctx, &entity.SafeTip{AlertID: alert.ID, Tip: "Procure áreas altas"})
	})
	require.NoError(t, err)

	safety := NewSafetyRepository(db)
	tips, err := safety.FindTipsByAlert(ctx, alertID)
	require.NoError(t, err)
	require.Len(t, tips, 1)

	require.NoError(t, NewAlertRepository(db).Delete(ctx, alertID))

	tips, err = safety.FindTipsByAlert(ctx, alertID)
	require.NoError(t, err)
	assert.Empty(t, tips)
}

func TestIntegration_MarkerFilterPage(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	coordinates := NewCoordinateRepository(db)
	markers := NewMapMarkerRepository(db)

	coordinate := &entity.Coordinate{Latitude: -23.5, Longitude: -46.6, Date: time.Now()}
	require.NoError(t, coordinates.Create(ctx, coordinate))
	for i, intensity := range []string{"high", "low", "high", "medium", "high"} {
		require.NoError(t, markers.Create(ctx, &entity.MapMarker{
			Title:        fmt.Sprintf("marker-%d", i),
			Intensity:    intensity,
			Radius:       float64(100 * (i + 1)),
			CoordinateID: coordinate.ID,
		}))
	}

	page, err := markers.FindPage(ctx, entity.IntensityFilter{Intensity: "high"},
		entity.Pageable{Page: 0, Size: 2, Sort: entity.Sort{Field: entity.SortFieldID, Descending: true}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Content, 2)
	for _, marker := range page.Content {
		assert.Equal(t, "high", marker.Intensity)
		require.NotNil(t, marker.Coordinate)
	}
	assert.Greater(t, page.Content[0].ID, page.Content[1].ID)
}
