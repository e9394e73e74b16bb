// Package events publishes domain events to Kafka.
package events

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"ayra/internal/domain/service"
	"ayra/internal/errors"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

const eventTypeAlertRaised = "alert.raised"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// kafkaPublisher produces alert events to one topic, keyed by alert ID so
// events about the same alert keep their order. A non-zero timeout caps each
// publish so an unreachable broker cannot hold the request.
type kafkaPublisher struct {
	writer  messageWriter
	logger  *slog.Logger
	timeout time.Duration
}

func newKafkaWriter(brokers []string, topic string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}
}

func (p *kafkaPublisher) PublishAlertRaised(ctx context.Context, event *service.AlertEvent) error {
	msg, err := serializeToMessage(event, time.Now())
	if err != nil {
		return err
	}

	writeCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		writeCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.writer.WriteMessages(writeCtx, msg); err != nil {
		return errors.Wrapf(err, "publish alert %d", event.AlertID)
	}

	p.logger.DebugContext(ctx, "Alert event published",
		slog.Int64("alert_id", event.AlertID),
		slog.String("request_id", event.RequestID),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals an AlertEvent into a Kafka message.
func serializeToMessage(event *service.AlertEvent, publishedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, errors.Wrap(err, "serialize alert event")
	}

	headers := []kafkago.Header{
		{Key: "event_type", Value: []byte(eventTypeAlertRaised)},
		{Key: "event_id", Value: []byte(uuid.NewString())},
		{Key: "published_at", Value: []byte(publishedAt.UTC().Format(time.RFC3339))},
	}
	if event.RequestID != "" {
		headers = append(headers, kafkago.Header{Key: "request_id", Value: []byte(event.RequestID)})
	}

	return kafkago.Message{
		Key:     []byte(strconv.FormatInt(event.AlertID, 10)),
		Value:   data,
		Headers: headers,
	}, nil
}
