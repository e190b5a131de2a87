package commands

import (
	"errors"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/parcel"
	"parcelchain/internal/pkg/guard"
)

var ErrRegisterParcelCommandIsNotConstructed = errors.New(
	"RegisterParcelCommand must be created via NewRegisterParcelCommand constructor",
)

// RegisterParcelCommand represents a request to register a new parcel for
// delivery. The parcel identifier is caller-supplied so senders can derive
// it deterministically and retry safely.
//
// Example:
//
//	dims, _ := parcel.NewDimensions(30, 20, 10)
//	cmd, err := NewRegisterParcelCommand(
//	    parcelID, sender, recipient, "ceramic vase", dims, 1500, 1000)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewRegisterParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register parcel: %w", err)
//	}
type RegisterParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	sender      kernel.UUID
	recipient   kernel.UUID
	description string
	dimensions  parcel.Dimensions
	weight      uint32
	price       uint64

	guard guard.ConstructorGuard
}

// NewRegisterParcelCommand creates a command to register a parcel.
// Description, dimensions and price bounds are enforced by the parcel
// aggregate; this constructor validates the identifiers and the value
// objects it is handed.
func NewRegisterParcelCommand(
	parcelID kernel.UUID,
	sender kernel.UUID,
	recipient kernel.UUID,
	description string,
	dimensions parcel.Dimensions,
	weight uint32,
	price uint64,
) (RegisterParcelCommand, error) {
	command := RegisterParcelCommand{
		description: description,
		weight:      weight,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setSender(sender),
		command.setRecipient(recipient),
		command.setDimensions(dimensions),
	); err != nil {
		return RegisterParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterParcelCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParcelCommandIsNotConstructed)
}

// ParcelID returns the caller-supplied parcel identifier from the command.
func (c RegisterParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Sender returns the sender identity from the command.
func (c RegisterParcelCommand) Sender() kernel.UUID {
	return c.sender
}

// Recipient returns the recipient identity from the command.
func (c RegisterParcelCommand) Recipient() kernel.UUID {
	return c.recipient
}

// Description returns the parcel description from the command.
func (c RegisterParcelCommand) Description() string {
	return c.description
}

// Dimensions returns the parcel dimensions from the command.
func (c RegisterParcelCommand) Dimensions() parcel.Dimensions {
	return c.dimensions
}

// Weight returns the parcel weight in grams from the command.
func (c RegisterParcelCommand) Weight() uint32 {
	return c.weight
}

// Price returns the delivery price from the command.
func (c RegisterParcelCommand) Price() uint64 {
	return c.price
}

func (c *RegisterParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}

func (c *RegisterParcelCommand) setSender(sender kernel.UUID) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *RegisterParcelCommand) setRecipient(recipient kernel.UUID) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	c.recipient = recipient
	return nil
}

func (c *RegisterParcelCommand) setDimensions(dimensions parcel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}

	c.dimensions = dimensions
	return nil
}
