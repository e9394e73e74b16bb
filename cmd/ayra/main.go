// Package main runs the Ayra HTTP API.
//
//	@title						Ayra API
//	@version					1.0
//	@description				Flood alert mapping: map markers, alerts and their safety guidance.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"log/slog"
	"os"

	"ayra/config"
	_ "ayra/docs" // Registers the OpenAPI document served under /swagger.
	"ayra/internal/delivery"
	"ayra/internal/delivery/api"
	"ayra/internal/delivery/api/middleware"
	"ayra/internal/delivery/api/router/handler"
	"ayra/internal/infra/auth"
	"ayra/internal/infra/cache"
	"ayra/internal/infra/events"
	"ayra/internal/infra/export"
	logs "ayra/internal/infra/log"
	"ayra/internal/infra/metrics"
	"ayra/internal/infra/persistence/postgres"
	"ayra/internal/infra/qrcode"
	"ayra/internal/usecase/impl"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			clockwork.NewRealClock,
			postgres.New,
			func(m *metrics.Metrics) postgres.PoolObserver { return m },
		),
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			cache.NewMarkerCache,
			qrcode.NewQRCodeService,
			export.NewXLSXExporter,
		),
		events.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCoordinateResolver,
			impl.NewCoordinateService,
			impl.NewMapMarkerService,
			impl.NewUserService,
			impl.NewSessionService,
			impl.NewAlertService,
			impl.NewSafetyService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewMapMarkerHandler,
			handler.NewCoordinateHandler,
			handler.NewAlertHandler,
			handler.NewSafetyHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
