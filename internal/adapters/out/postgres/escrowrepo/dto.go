// Package escrowrepo provides data transfer objects and mapping functions
// for escrow persistence. Escrows are keyed by the parcel they secure, so
// the primary key structurally enforces one vault per parcel.
package escrowrepo

import (
	"time"

	"parcelchain/internal/core/domain/model/escrow"
	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/parcel"
	"parcelchain/internal/core/domain/model/platform"

	"github.com/google/uuid"
)

// EscrowDTO represents the database structure for persisting escrow
// aggregates.
type EscrowDTO struct {
	ParcelID   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Sender     uuid.UUID  `gorm:"type:uuid;index"`
	CarrierID  *uuid.UUID `gorm:"type:uuid"`
	Amount     uint64
	AssetType  string
	Status     int `gorm:"index"`
	CreatedAt  time.Time
	ReleasedAt *time.Time
}

// TableName specifies the database table name for escrow entities.
func (EscrowDTO) TableName() string {
	return "escrows"
}

// fromDomain converts an escrow domain aggregate to its database
// representation. An unfunded vault persists an empty asset type.
func fromDomain(aggregate *escrow.Escrow) EscrowDTO {
	var carrierID *uuid.UUID
	if id, ok := aggregate.Carrier().CarrierID(); ok {
		raw := id.Bytes()
		carrierID = &raw
	}

	var releasedAt *time.Time
	if t := aggregate.ReleasedAt(); !t.IsZero() {
		releasedAt = &t
	}

	return EscrowDTO{
		ParcelID:   aggregate.ParcelID().Bytes(),
		Sender:     aggregate.Sender().Bytes(),
		CarrierID:  carrierID,
		Amount:     aggregate.Amount(),
		AssetType:  aggregate.Asset().String(),
		Status:     int(aggregate.Status()),
		CreatedAt:  aggregate.CreatedAt(),
		ReleasedAt: releasedAt,
	}
}

// toDomain converts a database DTO to an escrow domain aggregate using
// RestoreEscrow.
func toDomain(dto EscrowDTO) (*escrow.Escrow, error) {
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	sender, err := kernel.UUIDFromBytes(dto.Sender[:])
	if err != nil {
		return nil, err
	}

	assignment := parcel.UnassignedCarrier()
	if dto.CarrierID != nil {
		carrierID, carrierErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}

		if assignment, err = parcel.AssignedCarrier(carrierID); err != nil {
			return nil, err
		}
	}

	var asset platform.AssetType
	if dto.AssetType != "" {
		if asset, err = platform.NewAssetType(dto.AssetType); err != nil {
			return nil, err
		}
	}

	var releasedAt time.Time
	if dto.ReleasedAt != nil {
		releasedAt = *dto.ReleasedAt
	}

	return escrow.RestoreEscrow(
		parcelID,
		sender,
		assignment,
		dto.Amount,
		asset,
		escrow.Status(dto.Status),
		dto.CreatedAt,
		releasedAt,
	)
}
