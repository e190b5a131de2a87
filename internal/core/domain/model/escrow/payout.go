package escrow

import (
	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/pkg/guard"
)

// basisPointDivisor converts a basis-point fee rate into a fraction.
const basisPointDivisor uint64 = 10000

// ErrPayoutIsNotConstructed indicates a zero-value Payout.
var ErrPayoutIsNotConstructed = guard.ErrDefaultConstructorGuard

// Payout is the deterministic split of a released escrow. The platform fee
// is floor(amount * feeRate / 10000); the rounding remainder accrues to the
// carrier, so CarrierAmount + PlatformFee always equals the escrowed amount
// exactly.
type Payout struct {
	carrierAmount uint64
	platformFee   uint64

	guard guard.ConstructorGuard
}

// ComputePayout splits the escrowed amount according to the fee rate, using
// overflow-checked arithmetic. A fee rate above 100% fails with
// kernel.ErrArithmeticOverflow rather than minting value.
func ComputePayout(amount uint64, feeRateBP uint16) (Payout, error) {
	fee, err := kernel.CheckedMulDiv(amount, uint64(feeRateBP), basisPointDivisor)
	if err != nil {
		return Payout{}, err
	}
	if fee > amount {
		return Payout{}, kernel.ErrArithmeticOverflow
	}

	return Payout{
		carrierAmount: amount - fee,
		platformFee:   fee,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// CarrierAmount returns the portion paid to the carrier.
func (p Payout) CarrierAmount() uint64 {
	return p.carrierAmount
}

// PlatformFee returns the portion paid to the platform fee account.
func (p Payout) PlatformFee() uint64 {
	return p.platformFee
}

// Total returns the full amount leaving the vault.
func (p Payout) Total() uint64 {
	return p.carrierAmount + p.platformFee
}

// Validate returns an error for a zero-value Payout.
func (p Payout) Validate() error {
	return p.guard.Validate(ErrPayoutIsNotConstructed)
}
