package queries

import (
	"context"

	"parcelchain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCarriersQueryHandler retrieves all registered carriers from the
// database.
type GetAllCarriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCarriersQueryHandler creates a handler for carrier listing
// queries.
func NewGetAllCarriersQueryHandler(db *gorm.DB) GetAllCarriersQueryHandler {
	return GetAllCarriersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by authority for consistent
// output.
func (h GetAllCarriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCarriersQuery,
) ([]GetAllCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	carriers := make([]GetAllCarriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			authority,
			reputation,
			completed_deliveries
		FROM carriers
		ORDER BY authority
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp      GetAllCarriersQueryResponse
			authority uuid.UUID
		)

		if err = rows.Scan(&authority, &resp.Reputation, &resp.CompletedDeliveries); err != nil {
			return nil, err
		}

		if resp.Authority, err = kernel.UUIDFromBytes(authority[:]); err != nil {
			return nil, err
		}

		carriers = append(carriers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return carriers, nil
}
