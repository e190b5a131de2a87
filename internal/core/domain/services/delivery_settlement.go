package services

import (
	"fmt"
	"time"

	"parcelchain/internal/core/domain/model/carrier"
	"parcelchain/internal/core/domain/model/escrow"
	"parcelchain/internal/core/domain/model/parcel"
	"parcelchain/internal/core/domain/model/platform"
)

// DeliverySettlement is a domain service that settles a completed delivery.
// Settlement spans four aggregates and must observe them together:
//
//   - the escrow pays out exactly once, split by the platform's fee rate
//   - the parcel moves to Delivered
//   - the carrier's reputation and delivery count increase per platform policy
//
// The service mutates the aggregates in memory only. Persisting them and
// executing the custody transfers atomically is the caller's job; on error
// the caller must discard the aggregates instead of persisting them.
type DeliverySettlement struct{}

// NewDeliverySettlement creates a new DeliverySettlement instance.
func NewDeliverySettlement() DeliverySettlement {
	return DeliverySettlement{}
}

// Settle releases the escrow for the given parcel and applies the delivery
// effects to the parcel and carrier.
//
// Preconditions checked here:
//   - all aggregates are properly constructed
//   - the escrow secures this parcel
//   - the escrow is bound to this carrier
//
// The escrow rejects release unless it is Funded, and the parcel rejects
// delivery unless it is InTransit, so an out-of-order call fails before any
// state changes. Settling the same delivery again finds the vault Released
// and fails with escrow.ErrInvalidEscrowAccount.
func (s DeliverySettlement) Settle(
	pl *platform.Platform,
	p *parcel.Parcel,
	e *escrow.Escrow,
	c *carrier.Carrier,
	now time.Time,
) (escrow.Payout, error) {
	if err := pl.Validate(); err != nil {
		return escrow.Payout{}, err
	}
	if err := p.Validate(); err != nil {
		return escrow.Payout{}, err
	}
	if err := e.Validate(); err != nil {
		return escrow.Payout{}, err
	}
	if err := c.Validate(); err != nil {
		return escrow.Payout{}, err
	}

	if !e.ParcelID().IsEqual(p.ID()) {
		return escrow.Payout{}, fmt.Errorf("%w: escrow secures parcel %s, not %s",
			escrow.ErrInvalidEscrowAccount, e.ParcelID(), p.ID())
	}

	boundCarrier, ok := e.Carrier().CarrierID()
	if !ok {
		return escrow.Payout{}, fmt.Errorf("%w: no carrier bound", escrow.ErrInvalidEscrowAccount)
	}
	if !boundCarrier.IsEqual(c.Authority()) {
		return escrow.Payout{}, fmt.Errorf("%w: escrow is bound to a different carrier",
			escrow.ErrInvalidEscrowAccount)
	}

	// a replay on a settled delivery reports the vault state, so the escrow
	// check comes first; a fundable-but-undeliverable combination still
	// fails on the parcel before the escrow pays out
	if _, err := e.Status().Release(); err != nil {
		return escrow.Payout{}, err
	}

	if _, err := p.Status().Deliver(); err != nil {
		return escrow.Payout{}, err
	}

	payout, err := e.Release(pl.FeeRate(), now)
	if err != nil {
		return escrow.Payout{}, err
	}

	if err := p.MarkDelivered(now); err != nil {
		return escrow.Payout{}, err
	}

	if err := c.RecordDelivery(pl.ReputationIncrement(), pl.ClampReputation()); err != nil {
		return escrow.Payout{}, err
	}

	return payout, nil
}
