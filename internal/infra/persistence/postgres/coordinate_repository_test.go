package postgres

import (
	"context"
	"testing"
	"time"

	"ayra/internal/domain/entity"
	"ayra/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var coordinateColumns = []string{"id", "latitude", "longitude", "date"}

func TestCoordinateRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCoordinateRepository(db)
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "coordinates" WHERE "coordinates"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(coordinateColumns).AddRow(1, -23.5505, -46.6333, date))

	got, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &entity.Coordinate{ID: 1, Latitude: -23.5505, Longitude: -46.6333, Date: date}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCoordinateRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCoordinateRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "coordinates"`).
		WillReturnRows(sqlmock.NewRows(coordinateColumns))

	_, err := repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrCoordinateNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCoordinateRepository_FindWithinBound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCoordinateRepository(db)

	candidate := &entity.Coordinate{Latitude: -23.5505, Longitude: -46.6334}
	bound := candidate.SearchBound(entity.ProximityTolerance)

	mock.ExpectQuery(`SELECT \* FROM "coordinates" WHERE .*latitude BETWEEN \$1 AND \$2.* AND .*longitude BETWEEN \$3 AND \$4.* ORDER BY id ASC`).
		WithArgs(bound.Min.Lat(), bound.Max.Lat(), bound.Min.Lon(), bound.Max.Lon()).
		WillReturnRows(sqlmock.NewRows(coordinateColumns).
			AddRow(3, -23.5505, -46.6333, time.Now()).
			AddRow(8, -23.5505, -46.6334, time.Now()))

	got, err := repo.FindWithinBound(context.Background(), bound)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(8), got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCoordinateRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCoordinateRepository(db)

	mock.ExpectQuery(`INSERT INTO "coordinates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	coordinate := &entity.Coordinate{Latitude: -23.9999, Longitude: -46.9999, Date: time.Now()}
	require.NoError(t, repo.Create(context.Background(), coordinate))
	assert.Equal(t, int64(7), coordinate.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
