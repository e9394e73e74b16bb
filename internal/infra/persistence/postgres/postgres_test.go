package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPool struct {
	samples []sql.DBStats
}

func (r *recordingPool) ObservePool(stats sql.DBStats) {
	r.samples = append(r.samples, stats)
}

func TestPoolMonitor_SampleReportsToObserver(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	observer := &recordingPool{}
	monitor := &poolMonitor{
		db:       sqlDB,
		logger:   slog.New(slog.DiscardHandler),
		observer: observer,
	}

	monitor.sample(context.Background())
	monitor.sample(context.Background())

	require.Len(t, observer.samples, 2)
	assert.Equal(t, sqlDB.Stats().OpenConnections, observer.samples[1].OpenConnections)
	assert.Equal(t, observer.samples[1], monitor.prev)
}

func TestPoolMonitor_SampleWithoutObserver(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	monitor := &poolMonitor{db: sqlDB, logger: slog.New(slog.DiscardHandler)}

	assert.NotPanics(t, func() { monitor.sample(context.Background()) })
}
