package platform

import (
	"parcelchain/internal/pkg/errs"
)

// ErrAssetTypeIsRequired is returned when constructing an AssetType from an
// empty identifier.
var ErrAssetTypeIsRequired = errs.NewValueIsRequiredError("asset type")

// AssetType identifies a fungible asset accepted by the platform, e.g. a
// token mint or a currency code. It is a value object; the empty value is
// invalid.
type AssetType struct {
	id string
}

// NewAssetType creates an AssetType from its identifier.
func NewAssetType(id string) (AssetType, error) {
	if id == "" {
		return AssetType{}, ErrAssetTypeIsRequired
	}
	return AssetType{id: id}, nil
}

// String returns the asset identifier.
func (a AssetType) String() string {
	return a.id
}

// IsEqual compares two asset types.
func (a AssetType) IsEqual(other AssetType) bool {
	return a.id == other.id
}

// Validate returns an error for the zero value.
func (a AssetType) Validate() error {
	if a.id == "" {
		return ErrAssetTypeIsRequired
	}
	return nil
}
