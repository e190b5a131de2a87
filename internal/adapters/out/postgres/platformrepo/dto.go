// Package platformrepo provides data transfer objects and mapping functions
// for platform persistence. The platform is a singleton: the table holds at
// most one row under a fixed primary key.
package platformrepo

import (
	"strings"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/platform"

	"github.com/google/uuid"
)

// recordID is the fixed primary key of the singleton platform row. A second
// insert collides on it, which is how initialization uniqueness is enforced.
const recordID = 1

// PlatformDTO represents the database structure for persisting the platform
// configuration.
type PlatformDTO struct {
	ID                  uint      `gorm:"primaryKey"`
	Authority           uuid.UUID `gorm:"type:uuid"`
	FeeRate             uint16
	ReputationIncrement uint8
	ClampReputation     bool
	TotalParcels        uint64
	DefaultAssetType    string
	AllowedAssetTypes   string
}

// TableName specifies the database table name for the platform record.
func (PlatformDTO) TableName() string {
	return "platforms"
}

// fromDomain converts the platform aggregate to its database representation.
// The allow-list is stored as a comma-joined string; asset type identifiers
// cannot contain commas.
func fromDomain(aggregate *platform.Platform) PlatformDTO {
	allowed := make([]string, 0, len(aggregate.AllowedAssetTypes()))
	for _, asset := range aggregate.AllowedAssetTypes() {
		allowed = append(allowed, asset.String())
	}

	return PlatformDTO{
		ID:                  recordID,
		Authority:           aggregate.Authority().Bytes(),
		FeeRate:             aggregate.FeeRate(),
		ReputationIncrement: aggregate.ReputationIncrement(),
		ClampReputation:     aggregate.ClampReputation(),
		TotalParcels:        aggregate.TotalParcels(),
		DefaultAssetType:    aggregate.DefaultAssetType().String(),
		AllowedAssetTypes:   strings.Join(allowed, ","),
	}
}

// toDomain converts a database DTO to the platform aggregate.
func toDomain(dto PlatformDTO) (*platform.Platform, error) {
	authority, err := kernel.UUIDFromBytes(dto.Authority[:])
	if err != nil {
		return nil, err
	}

	defaultAsset, err := platform.NewAssetType(dto.DefaultAssetType)
	if err != nil {
		return nil, err
	}

	var allowed []platform.AssetType
	if dto.AllowedAssetTypes != "" {
		for _, id := range strings.Split(dto.AllowedAssetTypes, ",") {
			asset, assetErr := platform.NewAssetType(id)
			if assetErr != nil {
				return nil, assetErr
			}
			allowed = append(allowed, asset)
		}
	}

	return platform.RestorePlatform(
		authority,
		dto.FeeRate,
		dto.ReputationIncrement,
		dto.ClampReputation,
		dto.TotalParcels,
		defaultAsset,
		allowed,
	)
}
