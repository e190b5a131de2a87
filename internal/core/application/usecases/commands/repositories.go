// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"
	"errors"

	"parcelchain/internal/core/ports"
)

// ErrUnauthorized is returned when the signing identity is not allowed to
// run the command: a signer accepting for another carrier, funding another
// sender's escrow, or changing platform policy without being the authority.
var ErrUnauthorized = errors.New("unauthorized")

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PlatformRepoFactory provides access to the platform repository within a transaction.
	PlatformRepoFactory interface {
		PlatformRepository() ports.PlatformRepository
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// EscrowRepoFactory provides access to the escrow repository within a transaction.
	EscrowRepoFactory interface {
		EscrowRepository() ports.EscrowRepository
	}

	// AssetLedgerFactory provides access to the custody ledger within a transaction.
	AssetLedgerFactory interface {
		AssetTransfers() ports.AssetTransferAdapter
	}

	// PlatformUoW manages transactions for platform-only operations.
	PlatformUoW interface {
		TxManager
		PlatformRepoFactory
	}

	// PlatformUoWFactory creates new platform unit of work instances.
	PlatformUoWFactory interface {
		Create() PlatformUoW
	}

	// CarrierUoW manages transactions for carrier-only operations.
	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
	}

	// CarrierUoWFactory creates new carrier unit of work instances.
	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	// ParcelUoW manages transactions for parcel registration, which also
	// bumps the platform's parcel counter.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		PlatformRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// EscrowUoW manages transactions for escrow creation, which reads the
	// parcel the vault secures.
	EscrowUoW interface {
		TxManager
		EscrowRepoFactory
		ParcelRepoFactory
	}

	// EscrowUoWFactory creates new escrow unit of work instances.
	EscrowUoWFactory interface {
		Create() EscrowUoW
	}

	// FundingUoW manages transactions for escrow funding: the escrow state
	// change and the custody ledger movement must commit together.
	FundingUoW interface {
		TxManager
		EscrowRepoFactory
		PlatformRepoFactory
		AssetLedgerFactory
	}

	// FundingUoWFactory creates new funding unit of work instances.
	FundingUoWFactory interface {
		Create() FundingUoW
	}

	// UoW manages transactions across all aggregates and the custody
	// ledger. Used for delivery acceptance and settlement, which touch
	// several aggregate types at once.
	UoW interface {
		TxManager
		PlatformRepoFactory
		CarrierRepoFactory
		ParcelRepoFactory
		EscrowRepoFactory
		AssetLedgerFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
