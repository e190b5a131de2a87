package ports

import (
	"context"

	"parcelchain/internal/core/domain/model/escrow"
	"parcelchain/internal/core/domain/model/kernel"
)

// EscrowRepository defines the persistence contract for escrow aggregates.
// Escrows are addressed by the parcel they secure, which enforces at most
// one escrow per parcel.
type EscrowRepository interface {
	// Add persists a new escrow aggregate to storage. Returns
	// escrow.ErrAlreadyExists if an escrow already secures the parcel.
	Add(ctx context.Context, aggregate *escrow.Escrow) error

	// Update persists changes to an existing escrow aggregate.
	Update(ctx context.Context, aggregate *escrow.Escrow) error

	// GetByParcelID retrieves the escrow securing the given parcel.
	GetByParcelID(ctx context.Context, parcelID kernel.UUID) (*escrow.Escrow, error)
}
