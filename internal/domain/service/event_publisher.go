package service

import (
	"context"
	"time"
)

// AlertEvent is published when a new alert is raised.
type AlertEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	AlertID       int64     `json:"alert_id"`
	Title         string    `json:"title"`
	Intensity     string    `json:"intensity"`
	Location      string    `json:"location"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Radius        float64   `json:"radius"`
	AlertDatetime time.Time `json:"alert_datetime"`
	MapMarkerID   *int64    `json:"map_marker_id,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertRaised publishes an alert event for downstream consumers
	PublishAlertRaised(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
