// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the persistence model directly with raw SQL and return
// plain response structs, bypassing the aggregate constructors.
package queries

import (
	"errors"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves one parcel with its delivery state.
type GetParcelQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query for the given parcel.
func NewGetParcelQuery(parcelID kernel.UUID) (GetParcelQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelQuery{}, err
	}

	return GetParcelQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ParcelID returns the parcel identifier from the query.
func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// GetParcelQueryResponse represents one parcel's delivery state.
type GetParcelQueryResponse struct {
	ID          kernel.UUID
	Sender      kernel.UUID
	Recipient   kernel.UUID
	CarrierID   *kernel.UUID
	Description string
	Weight      uint32
	Price       uint64
	Status      string
}
