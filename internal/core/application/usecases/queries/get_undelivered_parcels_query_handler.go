package queries

import (
	"context"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUndeliveredParcelsQueryHandler retrieves parcels pending delivery from
// the database. Filters out delivered parcels to provide the active
// workload.
type GetUndeliveredParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetUndeliveredParcelsQueryHandler creates a handler for undelivered
// parcel queries.
func NewGetUndeliveredParcelsQueryHandler(db *gorm.DB) GetUndeliveredParcelsQueryHandler {
	return GetUndeliveredParcelsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by parcel ID for consistent
// output.
func (h GetUndeliveredParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetUndeliveredParcelsQuery,
) ([]GetUndeliveredParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetUndeliveredParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sender,
			carrier_id,
			price,
			status
		FROM parcels
		WHERE status != ?
		ORDER BY id
	`, int(parcel.Delivered)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp      GetUndeliveredParcelsQueryResponse
			id        uuid.UUID
			sender    uuid.UUID
			carrierID uuid.NullUUID
			status    int
		)

		if err = rows.Scan(&id, &sender, &carrierID, &resp.Price, &status); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.Sender, err = kernel.UUIDFromBytes(sender[:]); err != nil {
			return nil, err
		}
		if carrierID.Valid {
			cID, cErr := kernel.UUIDFromBytes(carrierID.UUID[:])
			if cErr != nil {
				return nil, cErr
			}
			resp.CarrierID = &cID
		}
		resp.Status = parcel.Status(status).String()

		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
