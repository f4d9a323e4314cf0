package service

import (
	"context"
	"time"
)

// PestReportEvent is published every time a pest analysis completes, feeding
// the admin analytics pipeline.
type PestReportEvent struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Disease    string    `json:"disease"`
	Confidence float64   `json:"confidence"`
	ImageRef   string    `json:"imageRef,omitempty"`
	ReportedAt time.Time `json:"reportedAt"`
}

// EventPublisher publishes domain events to the configured backend (local
// HTTP endpoint in development, Google Pub/Sub in production).
type EventPublisher interface {
	PublishPestReport(ctx context.Context, event *PestReportEvent) error

	// Close releases the underlying client.
	Close() error
}
