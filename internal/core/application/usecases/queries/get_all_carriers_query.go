package queries

import (
	"errors"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/pkg/guard"
)

var ErrGetAllCarriersQueryIsNotConstructed = errors.New(
	"GetAllCarriersQuery must be created via NewGetAllCarriersQuery constructor",
)

// GetAllCarriersQuery retrieves every registered carrier with its
// reputation and delivery record.
type GetAllCarriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCarriersQuery creates a query to retrieve all carriers.
func NewGetAllCarriersQuery() GetAllCarriersQuery {
	return GetAllCarriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCarriersQueryIsNotConstructed)
}

// GetAllCarriersQueryResponse represents one registered carrier.
type GetAllCarriersQueryResponse struct {
	Authority           kernel.UUID
	Reputation          uint8
	CompletedDeliveries uint32
}
