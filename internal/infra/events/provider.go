package events

import (
	"context"
	"log/slog"

	"ayra/config"
	"ayra/internal/domain/service"
	"ayra/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher is used when Kafka is not configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAlertRaised(ctx context.Context, event *service.AlertEvent) error {
	p.logger.DebugContext(ctx, "[NoopEvents] Event publishing disabled, skipping",
		slog.Int64("alert_id", event.AlertID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.Kafka
	logger := params.Logger

	if cfg == nil || len(cfg.Brokers) == 0 {
		logger.Info("Kafka not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}
	if cfg.AlertTopic == "" {
		return nil, errors.New("kafka alert topic is required when brokers are set")
	}

	logger.Info("Using Kafka publisher for alert events",
		slog.Any("brokers", cfg.Brokers),
		slog.String("topic", cfg.AlertTopic),
	)

	publisher := &kafkaPublisher{
		writer:  newKafkaWriter(cfg.Brokers, cfg.AlertTopic),
		logger:  logger,
		timeout: cfg.PublishTimeout,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the events FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
