package parcel

import (
	"errors"
	"fmt"
	"time"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/pkg/errs"
	"parcelchain/internal/pkg/guard"
)

// maxDescriptionLength bounds the free-text description.
const maxDescriptionLength = 300

// Domain errors for parcel operations.
var (
	// ErrInvalidPrice is returned for a zero delivery price.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrDescriptionIsRequired is returned for an empty description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	// ErrDescriptionIsTooLong is returned when the description exceeds the
	// persisted column size.
	ErrDescriptionIsTooLong = errors.New("description is too long")
	// ErrParcelIsNotConstructed is returned when using an improperly
	// initialized Parcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Parcel is the aggregate root for one shipment. It tracks the sender and
// recipient, the assigned carrier, the physical attributes and price, and
// the delivery lifecycle with its timestamps.
//
// Invariants:
//   - status only moves forward: Registered -> InTransit -> Delivered
//   - registeredAt, acceptedAt, deliveredAt are each set exactly once
//   - a carrier is bound if and only if the parcel left Registered
type Parcel struct {
	// id is the caller-supplied parcel identifier.
	id kernel.UUID
	// sender posted the parcel and funds its escrow.
	sender kernel.UUID
	// recipient receives the parcel.
	recipient kernel.UUID
	// carrier is Unassigned until a carrier accepts the delivery.
	carrier CarrierAssignment
	// description of the contents.
	description string
	// dimensions in centimeters.
	dimensions Dimensions
	// weight in grams.
	weight uint32
	// price of the delivery in the platform's asset units.
	price uint64
	// status is the lifecycle state.
	status Status

	registeredAt time.Time
	acceptedAt   time.Time
	deliveredAt  time.Time

	guard guard.ConstructorGuard
}

// NewParcel registers a parcel with status Registered at the given time.
// Price and dimensions must be positive; the carrier starts Unassigned.
func NewParcel(
	id kernel.UUID,
	sender kernel.UUID,
	recipient kernel.UUID,
	description string,
	dimensions Dimensions,
	weight uint32,
	price uint64,
	now time.Time,
) (*Parcel, error) {
	p := &Parcel{
		carrier:      UnassignedCarrier(),
		weight:       weight,
		status:       Registered,
		registeredAt: now,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setSender(sender),
		p.setRecipient(recipient),
		p.setDescription(description),
		p.setDimensions(dimensions),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel aggregate from persistence.
func RestoreParcel(
	id kernel.UUID,
	sender kernel.UUID,
	recipient kernel.UUID,
	carrier CarrierAssignment,
	description string,
	dimensions Dimensions,
	weight uint32,
	price uint64,
	status Status,
	registeredAt time.Time,
	acceptedAt time.Time,
	deliveredAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		carrier:      carrier,
		weight:       weight,
		registeredAt: registeredAt,
		acceptedAt:   acceptedAt,
		deliveredAt:  deliveredAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setSender(sender),
		p.setRecipient(recipient),
		p.setDescription(description),
		p.setDimensions(dimensions),
		p.setPrice(price),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by identifier.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Sender returns the identity that posted the parcel.
func (p *Parcel) Sender() kernel.UUID {
	return p.sender
}

// Recipient returns the identity that receives the parcel.
func (p *Parcel) Recipient() kernel.UUID {
	return p.recipient
}

// Carrier returns the carrier assignment variant.
func (p *Parcel) Carrier() CarrierAssignment {
	return p.carrier
}

// Description returns the contents description.
func (p *Parcel) Description() string {
	return p.description
}

// Dimensions returns the parcel dimensions.
func (p *Parcel) Dimensions() Dimensions {
	return p.dimensions
}

// Weight returns the weight in grams.
func (p *Parcel) Weight() uint32 {
	return p.weight
}

// Price returns the delivery price.
func (p *Parcel) Price() uint64 {
	return p.price
}

// Status returns the lifecycle state.
func (p *Parcel) Status() Status {
	return p.status
}

// RegisteredAt returns when the parcel was registered.
func (p *Parcel) RegisteredAt() time.Time {
	return p.registeredAt
}

// AcceptedAt returns when a carrier accepted the delivery; zero until then.
func (p *Parcel) AcceptedAt() time.Time {
	return p.acceptedAt
}

// DeliveredAt returns when the delivery settled; zero until then.
func (p *Parcel) DeliveredAt() time.Time {
	return p.deliveredAt
}

// Accept binds the carrier and moves the parcel to InTransit. Fails with
// ErrInvalidStatus unless the parcel is Registered.
func (p *Parcel) Accept(carrierID kernel.UUID, now time.Time) error {
	assignment, err := AssignedCarrier(carrierID)
	if err != nil {
		return err
	}

	newStatus, err := p.status.Accept()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.carrier = assignment
	p.acceptedAt = now
	return nil
}

// MarkDelivered moves the parcel to its terminal Delivered state. Fails
// with ErrInvalidStatus unless the parcel is InTransit.
func (p *Parcel) MarkDelivered(now time.Time) error {
	newStatus, err := p.status.Deliver()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.deliveredAt = now
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setSender(sender kernel.UUID) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	p.sender = sender
	return nil
}

func (p *Parcel) setRecipient(recipient kernel.UUID) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	p.recipient = recipient
	return nil
}

func (p *Parcel) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("%w: %d characters, max is %d",
			ErrDescriptionIsTooLong, len(description), maxDescriptionLength)
	}
	p.description = description
	return nil
}

func (p *Parcel) setDimensions(dimensions Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	p.dimensions = dimensions
	return nil
}

func (p *Parcel) setPrice(price uint64) error {
	if price == 0 {
		return fmt.Errorf("%w: price must be greater than 0", ErrInvalidPrice)
	}
	p.price = price
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
