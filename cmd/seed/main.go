// Package main migrates the schema and loads the demo data set. Running it
// again is a no-op once the data is present.
package main

import (
	"context"
	"log/slog"
	"os"

	"ayra/config"
	"ayra/internal/infra/auth"
	logs "ayra/internal/infra/log"
	"ayra/internal/infra/persistence/postgres"
	"ayra/internal/usecase"
	"ayra/internal/usecase/impl"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type seedParams struct {
	fx.In

	DB     *gorm.DB
	Seeder usecase.Seeder
	Logger *slog.Logger
}

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			clockwork.NewRealClock,
			postgres.New,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			impl.NewSeeder,
		),
		fx.Invoke(run),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("Seed failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to shutdown gracefully", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(lc fx.Lifecycle, params seedParams) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.AutoMigrate(ctx, params.DB); err != nil {
				return err
			}

			seeded, err := params.Seeder.Seed(ctx)
			if err != nil {
				return err
			}

			params.Logger.Info("Seed finished", slog.Bool("inserted", seeded))

			return nil
		},
	})
}
