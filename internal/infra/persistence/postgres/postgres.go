package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"ayra/config"
	"ayra/internal/domain/lifecycle"
	"ayra/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval   = 5 * time.Second
	poolWaitWarnDuration = 50 * time.Millisecond
)

// PoolObserver receives connection pool samples.
type PoolObserver interface {
	ObservePool(stats sql.DBStats)
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Pool   PoolObserver `optional:"true"`
}

// New opens the connection pool, pings it on start and closes it on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres")
	}
	// Unique and foreign key violations come back as gorm.ErrDuplicatedKey
	// and gorm.ErrForeignKeyViolated.
	db.Config.TranslateError = true
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to access postgres pool")
	}

	monitor := &poolMonitor{
		db:       sqlDB,
		logger:   params.Logger.With(slog.String("component", "postgres_pool")),
		observer: params.Pool,
	}
	ctx, stopMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			pingCtx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "failed to ping postgres")
			}
			go monitor.run(ctx, poolSampleInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			stopMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolMonitor samples sql.DBStats, logging connection waits and handing
// every sample to the observer.
type poolMonitor struct {
	db       *sql.DB
	logger   *slog.Logger
	observer PoolObserver
	prev     sql.DBStats
}

func (m *poolMonitor) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.prev = m.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sample(ctx)
		}
	}
}

func (m *poolMonitor) sample(ctx context.Context) {
	cur := m.db.Stats()
	defer func() { m.prev = cur }()

	if m.observer != nil {
		m.observer.ObservePool(cur)
	}

	waits := cur.WaitCount - m.prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - m.prev.WaitDuration

	level := slog.LevelDebug
	if waited >= poolWaitWarnDuration {
		level = slog.LevelWarn
	}
	m.logger.LogAttrs(ctx, level, "requests waited for a postgres connection",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
