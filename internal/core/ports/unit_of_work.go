package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and hands out repositories and the custody ledger
// bound to the current transaction. Client code must explicitly manage the
// transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// PlatformRepository returns a PlatformRepository bound to the current
	// transaction.
	PlatformRepository() PlatformRepository

	// CarrierRepository returns a CarrierRepository bound to the current
	// transaction.
	CarrierRepository() CarrierRepository

	// ParcelRepository returns a ParcelRepository bound to the current
	// transaction.
	ParcelRepository() ParcelRepository

	// EscrowRepository returns an EscrowRepository bound to the current
	// transaction.
	EscrowRepository() EscrowRepository

	// AssetTransfers returns the custody ledger bound to the current
	// transaction.
	AssetTransfers() AssetTransferAdapter
}
