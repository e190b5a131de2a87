package ports

import (
	"context"
)

// DomainEvent is implemented by events raised by the domain layer.
type DomainEvent interface {
	// EventName returns the stable event identifier, e.g.
	// "platform.initialized".
	EventName() string
}

// EventPublisher publishes domain events to interested consumers. Publishing
// is best effort and happens after the owning transaction commits.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent)
}
