package platform

import (
	"errors"
	"fmt"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/pkg/errs"
	"parcelchain/internal/pkg/guard"
)

const (
	// DefaultFeeRateBP is the fee rate applied at initialization: 200 basis
	// points, i.e. 2% of every released escrow.
	DefaultFeeRateBP uint16 = 200

	// DefaultReputationIncrement is added to a carrier's reputation for each
	// completed delivery.
	DefaultReputationIncrement uint8 = 10

	// MaxFeeRateBP caps the fee rate at 100%.
	MaxFeeRateBP uint16 = 10000
)

// Domain errors for platform operations.
var (
	// ErrAlreadyInitialized is returned when a second platform record is
	// created for the same deployment scope.
	ErrAlreadyInitialized = errors.New("platform already initialized")
	// ErrInvalidFeeRate is returned for fee rates above MaxFeeRateBP.
	ErrInvalidFeeRate = errors.New("invalid fee rate")
	// ErrAssetNotAllowed is returned when funding an escrow with an asset
	// type the platform does not accept.
	ErrAssetNotAllowed = errors.New("asset type not allowed")
	// ErrPlatformIsNotConstructed is returned when using a Platform that was
	// not created via NewPlatform or RestorePlatform.
	ErrPlatformIsNotConstructed = errors.New("Platform must be created via NewPlatform constructor")
)

// Platform is the singleton configuration aggregate. It owns the fee rate
// (basis points of every released escrow), the reputation policy applied on
// completed deliveries, the set of accepted asset types, and the monotonic
// parcel counter.
//
// Invariants:
//   - authority never changes after creation
//   - feeRate <= MaxFeeRateBP
//   - totalParcels only grows, with overflow-checked arithmetic
type Platform struct {
	// authority is the identity allowed to run admin operations.
	authority kernel.UUID
	// feeRate is the platform's cut in basis points.
	feeRate uint16
	// reputationIncrement is added to carrier reputation per delivery.
	reputationIncrement uint8
	// clampReputation caps reputation at 100 when incrementing.
	clampReputation bool
	// totalParcels counts every registered parcel.
	totalParcels uint64
	// defaultAssetType is always accepted for escrow funding.
	defaultAssetType AssetType
	// allowedAssetTypes are additionally accepted asset types.
	allowedAssetTypes []AssetType

	guard guard.ConstructorGuard
}

// NewPlatform creates the platform record with default policy: 2% fee,
// reputation increment of 10, no extra allowed asset types, zero parcels.
// Uniqueness of the record is enforced by the repository, not here.
func NewPlatform(authority kernel.UUID, defaultAssetType AssetType) (*Platform, error) {
	p := &Platform{
		feeRate:             DefaultFeeRateBP,
		reputationIncrement: DefaultReputationIncrement,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setAuthority(authority),
		p.setDefaultAssetType(defaultAssetType),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePlatform reconstructs a Platform aggregate from persistence.
func RestorePlatform(
	authority kernel.UUID,
	feeRate uint16,
	reputationIncrement uint8,
	clampReputation bool,
	totalParcels uint64,
	defaultAssetType AssetType,
	allowedAssetTypes []AssetType,
) (*Platform, error) {
	p := &Platform{
		reputationIncrement: reputationIncrement,
		clampReputation:     clampReputation,
		totalParcels:        totalParcels,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setAuthority(authority),
		p.setDefaultAssetType(defaultAssetType),
		p.setFeeRate(feeRate),
	); err != nil {
		return nil, err
	}

	for _, asset := range allowedAssetTypes {
		if err := p.AllowAssetType(asset); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Validate ensures the Platform was created through a constructor.
func (p *Platform) Validate() error {
	if p == nil {
		return ErrPlatformIsNotConstructed
	}
	return p.guard.Validate(ErrPlatformIsNotConstructed)
}

// Authority returns the owning identity.
func (p *Platform) Authority() kernel.UUID {
	return p.authority
}

// FeeRate returns the fee rate in basis points.
func (p *Platform) FeeRate() uint16 {
	return p.feeRate
}

// ReputationIncrement returns the per-delivery reputation increase.
func (p *Platform) ReputationIncrement() uint8 {
	return p.reputationIncrement
}

// ClampReputation reports whether reputation is capped at 100 when
// incremented.
func (p *Platform) ClampReputation() bool {
	return p.clampReputation
}

// TotalParcels returns the number of parcels registered so far.
func (p *Platform) TotalParcels() uint64 {
	return p.totalParcels
}

// DefaultAssetType returns the asset type configured at initialization.
func (p *Platform) DefaultAssetType() AssetType {
	return p.defaultAssetType
}

// AllowedAssetTypes returns the additionally accepted asset types.
func (p *Platform) AllowedAssetTypes() []AssetType {
	out := make([]AssetType, len(p.allowedAssetTypes))
	copy(out, p.allowedAssetTypes)
	return out
}

// RecordParcelRegistration increments the parcel counter. The counter fails
// with kernel.ErrArithmeticOverflow at its maximum instead of wrapping.
func (p *Platform) RecordParcelRegistration() error {
	total, err := kernel.CheckedAddU64(p.totalParcels, 1)
	if err != nil {
		return err
	}

	p.totalParcels = total
	return nil
}

// ChangeFeeRate updates the fee rate. Admin operation; authorization is
// checked by the caller against Authority().
func (p *Platform) ChangeFeeRate(feeRate uint16) error {
	return p.setFeeRate(feeRate)
}

// ChangeReputationPolicy updates the per-delivery reputation increment and
// whether reputation is clamped at 100.
func (p *Platform) ChangeReputationPolicy(increment uint8, clamp bool) {
	p.reputationIncrement = increment
	p.clampReputation = clamp
}

// AllowAssetType adds an asset type to the accepted set. Adding an already
// accepted type is a no-op.
func (p *Platform) AllowAssetType(asset AssetType) error {
	if err := asset.Validate(); err != nil {
		return err
	}

	if p.AssetAllowed(asset) {
		return nil
	}

	p.allowedAssetTypes = append(p.allowedAssetTypes, asset)
	return nil
}

// AssetAllowed reports whether the given asset type may fund escrows: the
// default asset type is always accepted, the rest must be allow-listed.
func (p *Platform) AssetAllowed(asset AssetType) bool {
	if p.defaultAssetType.IsEqual(asset) {
		return true
	}
	for _, allowed := range p.allowedAssetTypes {
		if allowed.IsEqual(asset) {
			return true
		}
	}
	return false
}

func (p *Platform) setAuthority(authority kernel.UUID) error {
	if err := authority.Validate(); err != nil {
		return err
	}
	p.authority = authority
	return nil
}

func (p *Platform) setDefaultAssetType(asset AssetType) error {
	if err := asset.Validate(); err != nil {
		return err
	}
	p.defaultAssetType = asset
	return nil
}

func (p *Platform) setFeeRate(feeRate uint16) error {
	if feeRate > MaxFeeRateBP {
		return fmt.Errorf("%w: %s", ErrInvalidFeeRate,
			errs.NewValueIsOutOfRangeError("fee rate", feeRate, 0, MaxFeeRateBP))
	}
	p.feeRate = feeRate
	return nil
}
