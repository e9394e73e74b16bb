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

var alertColumns = []string{"id", "title", "description", "intensity", "alert_datetime", "location", "radius", "coordinate_id", "map_marker_id", "created_at"}

func TestAlertRepository_FindByID_LoadsSafetyRecords(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	repo := NewAlertRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "alerts" WHERE "alerts"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(alertColumns).
			AddRow(1, "Enchente", "Rio transbordou", "high", now, "Centro", 800.0, 3, 2, now))
	mock.ExpectQuery(`SELECT \* FROM "coordinates"`).
		WillReturnRows(sqlmock.NewRows(coordinateColumns).AddRow(3, -23.5505, -46.6333, now))
	mock.ExpectQuery(`SELECT \* FROM "safe_routes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "alert_id", "route"}).
			AddRow(1, 1, "Av. Paulista").
			AddRow(2, 1, "Rua Augusta"))
	mock.ExpectQuery(`SELECT \* FROM "safe_locations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "alert_id", "location"}).AddRow(1, 1, "Escola Estadual"))
	mock.ExpectQuery(`SELECT \* FROM "safe_tips"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "alert_id", "tip"}))

	alert, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Enchente", alert.Title)
	require.NotNil(t, alert.MapMarkerID)
	assert.Equal(t, int64(2), *alert.MapMarkerID)
	require.NotNil(t, alert.Coordinate)
	assert.Equal(t, -23.5505, alert.Coordinate.Latitude)
	require.Len(t, alert.SafeRoutes, 2)
	assert.Equal(t, "Rua Augusta", alert.SafeRoutes[1].Route)
	require.Len(t, alert.SafeLocations, 1)
	assert.Empty(t, alert.SafeTips)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAlertRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "alerts"`).
		WillReturnRows(sqlmock.NewRows(alertColumns))

	_, err := repo.FindByID(context.Background(), 1)
	assert.ErrorIs(t, err, repository.ErrAlertNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAlertRepository(db)

	mock.ExpectExec(`DELETE FROM "alerts"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSafetyRepository_CreateAndList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSafetyRepository(db)

	mock.ExpectQuery(`INSERT INTO "safe_tips"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectQuery(`SELECT \* FROM "safe_tips" WHERE alert_id = \$1 ORDER BY id ASC`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "alert_id", "tip"}).AddRow(4, 1, "Evite áreas alagadas"))

	tip := &entity.SafeTip{AlertID: 1, Tip: "Evite áreas alagadas"}
	require.NoError(t, repo.CreateTip(context.Background(), tip))
	assert.Equal(t, int64(4), tip.ID)

	tips, err := repo.FindTipsByAlert(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, tips, 1)
	assert.Equal(t, "Evite áreas alagadas", tips[0].Tip)
	assert.NoError(t, mock.ExpectationsWereMet())
}
