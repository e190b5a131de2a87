package ports

import (
	"context"
	"errors"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/platform"
)

// ErrInsufficientBalance is returned by Debit when the custody account does
// not hold the requested amount.
var ErrInsufficientBalance = errors.New("insufficient balance")

// AssetTransferAdapter moves asset amounts between custody accounts. It is
// the port to the custody ledger; the domain decides who gets paid and how
// much, the adapter executes the movement.
//
// Implementations must be transactional: a Debit/Credit sequence issued
// inside one unit of work either fully applies or fully rolls back.
type AssetTransferAdapter interface {
	// Debit removes the amount from the account. Returns
	// ErrInsufficientBalance if the account holds less than the amount.
	Debit(ctx context.Context, account kernel.CustodyAccount, asset platform.AssetType, amount uint64) error

	// Credit adds the amount to the account, creating the balance record if
	// it does not exist yet.
	Credit(ctx context.Context, account kernel.CustodyAccount, asset platform.AssetType, amount uint64) error

	// Balance returns the amount the account holds in the given asset. A
	// missing balance record reads as zero.
	Balance(ctx context.Context, account kernel.CustodyAccount, asset platform.AssetType) (uint64, error)
}
