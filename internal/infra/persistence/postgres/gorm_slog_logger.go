package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ayra/config"
	"ayra/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQuery = 200 * time.Millisecond

// gormSlogLogger routes GORM output through slog. Statement traces go to
// debug, slow statements to warn and failed statements to error. Not found
// lookups and statements aborted by a cancelled request are expected outcomes
// and stay out of the error log.
type gormSlogLogger struct {
	logger    *slog.Logger
	level     logger.LogLevel
	slowQuery time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{
		logger:    base.With(slog.String("component", "gorm")),
		level:     logger.Warn,
		slowQuery: defaultSlowQuery,
	}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Env.Log.SlowQuery > 0 {
		l.slowQuery = cfg.Env.Log.SlowQuery
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}
	l.logger.LogAttrs(ctx, level, fmt.Sprintf(msg, args...))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !isExpectedQueryError(err):
		l.logger.LogAttrs(ctx, slog.LevelError, "sql statement failed",
			append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))...)
	case l.slowQuery > 0 && elapsed > l.slowQuery && l.level >= logger.Warn:
		l.logger.LogAttrs(ctx, slog.LevelWarn, "slow sql statement",
			append(queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("threshold", l.slowQuery))...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "sql statement", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func isExpectedQueryError(err error) bool {
	return errors.IsAny(err, gorm.ErrRecordNotFound, context.Canceled)
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
}
