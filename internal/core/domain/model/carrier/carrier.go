package carrier

import (
	"errors"
	"fmt"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/pkg/errs"
	"parcelchain/internal/pkg/guard"
)

const (
	// MaxInitialReputation bounds the reputation a carrier may start with.
	MaxInitialReputation uint8 = 100

	// AcceptanceThreshold is the minimum reputation required to accept a
	// delivery.
	AcceptanceThreshold uint8 = 50

	// ReputationCeiling is the cap applied when the platform's clamp policy
	// is enabled. Without the policy, reputation may grow past it.
	ReputationCeiling uint8 = 100
)

// Domain errors for carrier operations.
var (
	// ErrInvalidReputation is returned when creating a carrier with an
	// initial reputation above MaxInitialReputation.
	ErrInvalidReputation = errors.New("invalid reputation")
	// ErrInsufficientReputation is returned when a carrier below the
	// acceptance threshold tries to accept a delivery.
	ErrInsufficientReputation = errors.New("insufficient reputation")
	// ErrAlreadyRegistered is returned when a carrier record already exists
	// for the given authority.
	ErrAlreadyRegistered = errors.New("carrier already registered")
	// ErrCarrierIsNotConstructed is returned when using an improperly
	// initialized Carrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")
)

// Carrier represents a registered delivery agent. The record is addressed
// deterministically by the carrier's authority, so each authority owns at
// most one carrier record.
//
// Invariants:
//   - authority never changes after creation
//   - completedDeliveries only grows, overflow-checked
//   - reputation changes only through RecordDelivery
type Carrier struct {
	// authority is the identity that owns and signs for this carrier.
	authority kernel.UUID
	// reputation is the carrier's trust score.
	reputation uint8
	// completedDeliveries counts successfully settled deliveries.
	completedDeliveries uint32

	guard guard.ConstructorGuard
}

// NewCarrier registers a carrier bound to the given authority. The initial
// reputation must not exceed MaxInitialReputation.
func NewCarrier(authority kernel.UUID, initialReputation uint8) (*Carrier, error) {
	c := &Carrier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setAuthority(authority),
		c.setInitialReputation(initialReputation),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCarrier reconstructs a Carrier aggregate from persistence. Unlike
// NewCarrier it accepts any reputation value, since deliveries may have
// pushed it past the creation bound.
func RestoreCarrier(authority kernel.UUID, reputation uint8, completedDeliveries uint32) (*Carrier, error) {
	c := &Carrier{
		reputation:          reputation,
		completedDeliveries: completedDeliveries,
		guard:               guard.NewConstructorGuard(),
	}

	if err := c.setAuthority(authority); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Carrier was created through a constructor.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// Authority returns the identity that owns this carrier record.
func (c *Carrier) Authority() kernel.UUID {
	return c.authority
}

// Reputation returns the carrier's current trust score.
func (c *Carrier) Reputation() uint8 {
	return c.reputation
}

// CompletedDeliveries returns the number of settled deliveries.
func (c *Carrier) CompletedDeliveries() uint32 {
	return c.completedDeliveries
}

// CanAccept checks whether the carrier's reputation meets the acceptance
// threshold. Returns ErrInsufficientReputation when it does not.
func (c *Carrier) CanAccept() error {
	if c.reputation < AcceptanceThreshold {
		return fmt.Errorf("%w: %d is below threshold %d",
			ErrInsufficientReputation, c.reputation, AcceptanceThreshold)
	}
	return nil
}

// RecordDelivery applies the effects of a settled delivery: the delivery
// counter and the reputation both increase. With clamp enabled, reputation
// saturates at ReputationCeiling; without it, an increment that would
// overflow the byte fails with kernel.ErrArithmeticOverflow and nothing is
// recorded.
func (c *Carrier) RecordDelivery(reputationIncrement uint8, clamp bool) error {
	deliveries, err := kernel.CheckedAddU32(c.completedDeliveries, 1)
	if err != nil {
		return err
	}

	reputation := c.reputation
	if clamp {
		if int(reputation)+int(reputationIncrement) >= int(ReputationCeiling) {
			reputation = ReputationCeiling
		} else {
			reputation += reputationIncrement
		}
	} else {
		reputation, err = kernel.CheckedAddU8(reputation, reputationIncrement)
		if err != nil {
			return err
		}
	}

	c.completedDeliveries = deliveries
	c.reputation = reputation
	return nil
}

func (c *Carrier) setAuthority(authority kernel.UUID) error {
	if err := authority.Validate(); err != nil {
		return err
	}
	c.authority = authority
	return nil
}

func (c *Carrier) setInitialReputation(reputation uint8) error {
	if reputation > MaxInitialReputation {
		return fmt.Errorf("%w: %s", ErrInvalidReputation,
			errs.NewValueIsOutOfRangeError("initial reputation", reputation, 0, MaxInitialReputation))
	}
	c.reputation = reputation
	return nil
}
