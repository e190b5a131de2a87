package escrow

import (
	"errors"
	"fmt"
	"time"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/parcel"
	"parcelchain/internal/core/domain/model/platform"
	"parcelchain/internal/pkg/guard"
)

// Domain errors for escrow operations.
var (
	// ErrInvalidEscrowAccount is returned when an operation is attempted
	// against a vault whose status or carrier binding does not permit it.
	ErrInvalidEscrowAccount = errors.New("invalid escrow account")
	// ErrInvalidAmount is returned when funding with a zero amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientEscrowBalance is returned when releasing a vault that
	// holds no funds. A Funded vault always holds a positive amount, so
	// hitting this means the record was corrupted.
	ErrInsufficientEscrowBalance = errors.New("insufficient escrow balance")
	// ErrAlreadyExists is returned when a vault already secures the parcel.
	ErrAlreadyExists = errors.New("escrow already exists for parcel")
	// ErrEscrowIsNotConstructed is returned when using an improperly
	// initialized Escrow.
	ErrEscrowIsNotConstructed = errors.New("Escrow must be created via NewEscrow constructor")
)

// Escrow is the custody record securing payment for one parcel. It is
// addressed by the parcel it secures, which structurally guarantees at most
// one vault per parcel.
//
// Invariants:
//   - amount is zero until funding and immutable afterwards
//   - status only moves forward: Created -> Funded -> Released
//   - release pays out the entire amount, exactly once
type Escrow struct {
	// parcelID is the parcel this vault secures; also the vault's address.
	parcelID kernel.UUID
	// sender is the identity that funds the vault.
	sender kernel.UUID
	// carrier is snapshotted from the parcel at creation; it may still be
	// Unassigned if the vault is created before a carrier accepts.
	carrier parcel.CarrierAssignment
	// amount custodied, set once at funding.
	amount uint64
	// asset is the asset type the vault was funded with.
	asset platform.AssetType
	// status is the custody lifecycle state.
	status Status

	createdAt  time.Time
	releasedAt time.Time

	guard guard.ConstructorGuard
}

// NewEscrow creates an empty vault for the given parcel. The carrier
// binding is copied from the parcel and may still be Unassigned; it is
// bound later via BindCarrier when a carrier accepts the delivery.
func NewEscrow(
	parcelID kernel.UUID,
	sender kernel.UUID,
	carrier parcel.CarrierAssignment,
	now time.Time,
) (*Escrow, error) {
	e := &Escrow{
		carrier:   carrier,
		status:    Created,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setParcelID(parcelID),
		e.setSender(sender),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEscrow reconstructs an Escrow aggregate from persistence.
func RestoreEscrow(
	parcelID kernel.UUID,
	sender kernel.UUID,
	carrier parcel.CarrierAssignment,
	amount uint64,
	asset platform.AssetType,
	status Status,
	createdAt time.Time,
	releasedAt time.Time,
) (*Escrow, error) {
	e := &Escrow{
		carrier:    carrier,
		amount:     amount,
		asset:      asset,
		createdAt:  createdAt,
		releasedAt: releasedAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setParcelID(parcelID),
		e.setSender(sender),
		e.setStatus(status),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the Escrow was created through a constructor.
func (e *Escrow) Validate() error {
	if e == nil {
		return ErrEscrowIsNotConstructed
	}
	return e.guard.Validate(ErrEscrowIsNotConstructed)
}

// ParcelID returns the parcel this vault secures.
func (e *Escrow) ParcelID() kernel.UUID {
	return e.parcelID
}

// Sender returns the identity that funds the vault.
func (e *Escrow) Sender() kernel.UUID {
	return e.sender
}

// Carrier returns the carrier binding.
func (e *Escrow) Carrier() parcel.CarrierAssignment {
	return e.carrier
}

// Amount returns the custodied amount; zero until funded.
func (e *Escrow) Amount() uint64 {
	return e.amount
}

// Asset returns the asset type the vault was funded with; the zero value
// until funded.
func (e *Escrow) Asset() platform.AssetType {
	return e.asset
}

// Status returns the custody lifecycle state.
func (e *Escrow) Status() Status {
	return e.status
}

// CreatedAt returns when the vault was created.
func (e *Escrow) CreatedAt() time.Time {
	return e.createdAt
}

// ReleasedAt returns when the vault paid out; zero until released.
func (e *Escrow) ReleasedAt() time.Time {
	return e.releasedAt
}

// VaultAccount returns the vault's own custody account, derived from the
// parcel identifier. This reference is the vault's authority to move funds
// out: it is only ever built here, inside the core.
func (e *Escrow) VaultAccount() (kernel.CustodyAccount, error) {
	return kernel.VaultAccount(e.parcelID)
}

// BindCarrier binds the carrier on a vault that was created before the
// delivery was accepted. Only permitted while the vault is Created or
// Funded but not yet bound.
func (e *Escrow) BindCarrier(carrierID kernel.UUID) error {
	if e.status == Released {
		return fmt.Errorf("%w: %s cannot change carrier", ErrInvalidEscrowAccount, e.status)
	}
	if e.carrier.IsAssigned() {
		return fmt.Errorf("%w: carrier already bound", ErrInvalidEscrowAccount)
	}

	assignment, err := parcel.AssignedCarrier(carrierID)
	if err != nil {
		return err
	}

	e.carrier = assignment
	return nil
}

// Fund records the custodied amount and asset type after the sender's
// payment reached vault custody. Fails with ErrInvalidEscrowAccount unless
// the vault is Created, and with ErrInvalidAmount for a zero amount. The
// amount is immutable afterwards.
func (e *Escrow) Fund(amount uint64, asset platform.AssetType) error {
	if amount == 0 {
		return fmt.Errorf("%w: amount must be greater than 0", ErrInvalidAmount)
	}
	if err := asset.Validate(); err != nil {
		return err
	}

	newStatus, err := e.status.Fund()
	if err != nil {
		return err
	}

	e.status = newStatus
	e.amount = amount
	e.asset = asset
	return nil
}

// Release moves the vault to its terminal Released state and returns the
// payout split for the given fee rate. The caller is responsible for
// executing the transfers and for persisting all affected records
// atomically; on any error no state changes.
func (e *Escrow) Release(feeRateBP uint16, now time.Time) (Payout, error) {
	newStatus, err := e.status.Release()
	if err != nil {
		return Payout{}, err
	}

	if e.amount == 0 {
		return Payout{}, ErrInsufficientEscrowBalance
	}

	payout, err := ComputePayout(e.amount, feeRateBP)
	if err != nil {
		return Payout{}, err
	}

	e.status = newStatus
	e.releasedAt = now
	return payout, nil
}

func (e *Escrow) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	e.parcelID = parcelID
	return nil
}

func (e *Escrow) setSender(sender kernel.UUID) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	e.sender = sender
	return nil
}

func (e *Escrow) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}
