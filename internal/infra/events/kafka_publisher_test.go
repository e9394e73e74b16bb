package events

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"ayra/config"
	"ayra/internal/domain/service"
	"ayra/internal/errors"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type fakeWriter struct {
	messages []kafkago.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

func testEvent() *service.AlertEvent {
	markerID := int64(2)

	return &service.AlertEvent{
		RequestID:     "req-1",
		AlertID:       17,
		Title:         "Enchente no Centro",
		Intensity:     "high",
		Location:      "São Paulo",
		Latitude:      -23.5505,
		Longitude:     -46.6333,
		Radius:        500,
		AlertDatetime: time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC),
		MapMarkerID:   &markerID,
	}
}

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2024, 4, 26, 15, 11, 0, 0, time.UTC)

	msg, err := serializeToMessage(testEvent(), now)
	require.NoError(t, err)

	assert.Equal(t, []byte("17"), msg.Key)
	assert.Contains(t, string(msg.Value), `"alert_id":17`)
	assert.Contains(t, string(msg.Value), `"map_marker_id":2`)
	assert.Contains(t, string(msg.Value), `"alert_datetime":"2024-04-26T15:10:00Z"`)
	require.Len(t, msg.Headers, 4)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, []byte(eventTypeAlertRaised), msg.Headers[0].Value)
	assert.Equal(t, "event_id", msg.Headers[1].Key)
	assert.NotEmpty(t, msg.Headers[1].Value)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[2].Value)
	assert.Equal(t, "request_id", msg.Headers[3].Key)
}

func TestSerializeToMessage_WithoutRequestID(t *testing.T) {
	event := testEvent()
	event.RequestID = ""
	event.MapMarkerID = nil

	msg, err := serializeToMessage(event, time.Now())
	require.NoError(t, err)
	assert.Len(t, msg.Headers, 3)
	assert.NotContains(t, string(msg.Value), "map_marker_id")
}

func TestKafkaPublisher_PublishAlertRaised(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &kafkaPublisher{writer: writer, logger: slog.New(slog.DiscardHandler)}

	require.NoError(t, publisher.PublishAlertRaised(context.Background(), testEvent()))
	require.Len(t, writer.messages, 1)
	assert.Equal(t, []byte("17"), writer.messages[0].Key)

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker down")}
	publisher := &kafkaPublisher{writer: writer, logger: slog.New(slog.DiscardHandler)}

	err := publisher.PublishAlertRaised(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish alert 17")
}

// blockingWriter never acknowledges, like a writer retrying against a dead broker.
type blockingWriter struct{}

func (blockingWriter) WriteMessages(ctx context.Context, _ ...kafkago.Message) error {
	<-ctx.Done()

	return ctx.Err()
}

func (blockingWriter) Close() error { return nil }

func TestKafkaPublisher_TimeoutBoundsUnreachableBroker(t *testing.T) {
	publisher := &kafkaPublisher{writer: blockingWriter{}, logger: slog.New(slog.DiscardHandler), timeout: 20 * time.Millisecond}

	start := time.Now()
	err := publisher.PublishAlertRaised(context.Background(), testEvent())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNewEventPublisher(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("noop when unconfigured", func(t *testing.T) {
		publisher, err := NewEventPublisher(PublisherParams{Lc: fxtest.NewLifecycle(t), Config: &config.Config{}, Logger: logger})
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishAlertRaised(context.Background(), testEvent()))
	})

	t.Run("topic required", func(t *testing.T) {
		cfg := &config.Config{Kafka: &config.KafkaConfig{Brokers: []string{"localhost:9092"}}}
		_, err := NewEventPublisher(PublisherParams{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})
		assert.Error(t, err)
	})

	t.Run("kafka when brokers set", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{Kafka: &config.KafkaConfig{Brokers: []string{"localhost:9092"}, AlertTopic: "ayra.alerts", PublishTimeout: time.Second}}
		publisher, err := NewEventPublisher(PublisherParams{Lc: lc, Config: cfg, Logger: logger})
		require.NoError(t, err)
		require.IsType(t, &kafkaPublisher{}, publisher)
		assert.Equal(t, time.Second, publisher.(*kafkaPublisher).timeout)
		lc.RequireStart().RequireStop()
	})
}
