package ports

import (
	"context"

	"parcelchain/internal/core/domain/model/carrier"
	"parcelchain/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier aggregates.
// Carriers are addressed by their authority identity, one record per
// authority.
type CarrierRepository interface {
	// Add persists a new carrier aggregate to storage. Returns
	// carrier.ErrAlreadyRegistered if a record already exists for the
	// carrier's authority.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier aggregate.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier aggregate by its authority identity.
	Get(ctx context.Context, authority kernel.UUID) (*carrier.Carrier, error)
}
