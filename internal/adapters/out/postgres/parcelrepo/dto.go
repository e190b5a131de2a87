// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. This package implements the repository pattern
// for the parcel aggregate, handling the conversion between domain entities
// and database representations.
package parcelrepo

import (
	"time"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates, indexed for querying by status and carrier assignment.
type ParcelDTO struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Sender       uuid.UUID     `gorm:"type:uuid;index"`
	Recipient    uuid.UUID     `gorm:"type:uuid"`
	CarrierID    *uuid.UUID    `gorm:"type:uuid;index"`
	Description  string        `gorm:"size:300"`
	Dimensions   DimensionsDTO `gorm:"embedded;embeddedPrefix:dimension_"`
	Weight       uint32
	Price        uint64
	Status       int `gorm:"index"`
	RegisteredAt time.Time
	AcceptedAt   *time.Time
	DeliveredAt  *time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// DimensionsDTO represents the embedded parcel dimensions in centimeters.
type DimensionsDTO struct {
	Length uint32
	Width  uint32
	Height uint32
}

// fromDomain converts a parcel domain aggregate to its database
// representation. Unset timestamps persist as NULL.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var carrierID *uuid.UUID
	if id, ok := aggregate.Carrier().CarrierID(); ok {
		raw := id.Bytes()
		carrierID = &raw
	}

	return ParcelDTO{
		ID:        aggregate.ID().Bytes(),
		Sender:    aggregate.Sender().Bytes(),
		Recipient: aggregate.Recipient().Bytes(),
		CarrierID: carrierID,
		Dimensions: DimensionsDTO{
			Length: aggregate.Dimensions().Length(),
			Width:  aggregate.Dimensions().Width(),
			Height: aggregate.Dimensions().Height(),
		},
		Description:  aggregate.Description(),
		Weight:       aggregate.Weight(),
		Price:        aggregate.Price(),
		Status:       int(aggregate.Status()),
		RegisteredAt: aggregate.RegisteredAt(),
		AcceptedAt:   optionalTime(aggregate.AcceptedAt()),
		DeliveredAt:  optionalTime(aggregate.DeliveredAt()),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using
// RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sender, err := kernel.UUIDFromBytes(dto.Sender[:])
	if err != nil {
		return nil, err
	}

	recipient, err := kernel.UUIDFromBytes(dto.Recipient[:])
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

	dimensions, err := parcel.NewDimensions(dto.Dimensions.Length, dto.Dimensions.Width, dto.Dimensions.Height)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		sender,
		recipient,
		assignment,
		dto.Description,
		dimensions,
		dto.Weight,
		dto.Price,
		parcel.Status(dto.Status),
		dto.RegisteredAt,
		timeOrZero(dto.AcceptedAt),
		timeOrZero(dto.DeliveredAt),
	)
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
