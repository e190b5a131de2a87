// Package eventlog publishes domain events to the structured log. It is the
// default EventPublisher wiring; swapping in a message broker adapter only
// requires another implementation of the same port.
package eventlog

import (
	"context"
	"log/slog"

	"parcelchain/internal/core/ports"
)

// SlogPublisher writes each domain event as one structured log record.
type SlogPublisher struct {
	logger *slog.Logger
}

// NewSlogPublisher creates a publisher writing to the given logger. A nil
// logger falls back to slog.Default().
func NewSlogPublisher(logger *slog.Logger) *SlogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogPublisher{logger: logger}
}

// Publish logs the event. Best effort: publishing never fails the business
// operation that raised the event.
func (p *SlogPublisher) Publish(ctx context.Context, event ports.DomainEvent) {
	if event == nil {
		return
	}
	p.logger.InfoContext(ctx, "domain event",
		slog.String("event", event.EventName()),
		slog.Any("payload", event),
	)
}
