package postgres

import (
	"context"
	"testing"
	"time"

	"ayra/internal/domain/entity"
	"ayra/internal/domain/repository"
	"ayra/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "coordinates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "map_markers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		coordinate := &entity.Coordinate{Latitude: 1, Longitude: 2, Date: time.Now()}
		if err := factory.CoordinateRepo().Create(context.Background(), coordinate); err != nil {
			return err
		}

		return factory.MapMarkerRepo().Create(context.Background(), &entity.MapMarker{
			Title: "Ponto", Intensity: entity.IntensityLow, Radius: 10, CoordinateID: coordinate.ID,
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)
	boom := errors.New("marker insert failed")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "coordinates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectRollback()

	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		if err := factory.CoordinateRepo().Create(context.Background(), &entity.Coordinate{Date: time.Now()}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
