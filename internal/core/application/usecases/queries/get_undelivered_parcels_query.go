package queries

import (
	"errors"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/pkg/guard"
)

var ErrGetUndeliveredParcelsQueryIsNotConstructed = errors.New(
	"GetUndeliveredParcelsQuery must be created via NewGetUndeliveredParcelsQuery constructor",
)

// GetUndeliveredParcelsQuery retrieves all parcels still on their way:
// registered but not yet accepted, or in transit.
type GetUndeliveredParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUndeliveredParcelsQuery creates a query to retrieve undelivered
// parcels. This is a parameterless query.
func NewGetUndeliveredParcelsQuery() GetUndeliveredParcelsQuery {
	return GetUndeliveredParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUndeliveredParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetUndeliveredParcelsQueryIsNotConstructed)
}

// GetUndeliveredParcelsQueryResponse represents one undelivered parcel.
type GetUndeliveredParcelsQueryResponse struct {
	ID        kernel.UUID
	Sender    kernel.UUID
	CarrierID *kernel.UUID
	Price     uint64
	Status    string
}
