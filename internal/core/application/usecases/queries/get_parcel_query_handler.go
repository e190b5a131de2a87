package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/parcel"
	"parcelchain/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelQueryHandler retrieves one parcel from the database.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for single-parcel queries.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no
// parcel exists under the given identifier.
func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sender,
			recipient,
			carrier_id,
			description,
			weight,
			price,
			status
		FROM parcels
		WHERE id = ?
	`, query.ParcelID().Bytes()).Row()

	var (
		resp      GetParcelQueryResponse
		id        uuid.UUID
		sender    uuid.UUID
		recipient uuid.UUID
		carrierID uuid.NullUUID
		status    int
	)

	err := row.Scan(
		&id,
		&sender,
		&recipient,
		&carrierID,
		&resp.Description,
		&resp.Weight,
		&resp.Price,
		&status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetParcelQueryResponse{}, errs.NewObjectNotFoundError("parcel", query.ParcelID().String())
	}
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetParcelQueryResponse{}, err
	}
	if resp.Sender, err = kernel.UUIDFromBytes(sender[:]); err != nil {
		return GetParcelQueryResponse{}, err
	}
	if resp.Recipient, err = kernel.UUIDFromBytes(recipient[:]); err != nil {
		return GetParcelQueryResponse{}, err
	}
	if carrierID.Valid {
		cID, cErr := kernel.UUIDFromBytes(carrierID.UUID[:])
		if cErr != nil {
			return GetParcelQueryResponse{}, cErr
		}
		resp.CarrierID = &cID
	}
	resp.Status = parcel.Status(status).String()

	return resp, nil
}
