package platform

import (
	"parcelchain/internal/core/domain/model/kernel"
)

// InitializedEvent is emitted once, when the platform record is created.
type InitializedEvent struct {
	Authority kernel.UUID
	FeeRate   uint16
}

// NewInitializedEvent builds the initialization event from the freshly
// created platform record.
func NewInitializedEvent(p *Platform) InitializedEvent {
	return InitializedEvent{
		Authority: p.Authority(),
		FeeRate:   p.FeeRate(),
	}
}

// EventName returns the stable name used when publishing the event.
func (InitializedEvent) EventName() string {
	return "platform.initialized"
}
