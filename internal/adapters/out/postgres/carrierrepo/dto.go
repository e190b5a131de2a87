// Package carrierrepo provides data transfer objects and mapping functions
// for carrier persistence. Carriers are keyed by their authority identity,
// so the primary key doubles as the uniqueness guard for registration.
package carrierrepo

import (
	"parcelchain/internal/core/domain/model/carrier"
	"parcelchain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierDTO represents the database structure for persisting carrier
// aggregates.
type CarrierDTO struct {
	Authority           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reputation          uint8     `gorm:"type:smallint"`
	CompletedDeliveries uint32
}

// TableName specifies the database table name for carrier entities.
func (CarrierDTO) TableName() string {
	return "carriers"
}

// fromDomain converts a carrier domain aggregate to its database
// representation.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		Authority:           aggregate.Authority().Bytes(),
		Reputation:          aggregate.Reputation(),
		CompletedDeliveries: aggregate.CompletedDeliveries(),
	}
}

// toDomain converts a database DTO to a carrier domain aggregate.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	authority, err := kernel.UUIDFromBytes(dto.Authority[:])
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(authority, dto.Reputation, dto.CompletedDeliveries)
}
