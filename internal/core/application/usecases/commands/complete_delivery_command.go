package commands

import (
	"errors"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a carrier's request to settle a
// delivered parcel: release the escrow, record the delivery, and pay out.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	parcelID         kernel.UUID
	carrierAuthority kernel.UUID
	signer           kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to settle a delivery.
func NewCompleteDeliveryCommand(parcelID, carrierAuthority, signer kernel.UUID) (CompleteDeliveryCommand, error) {
	command := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setCarrierAuthority(carrierAuthority),
		command.setSigner(signer),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// ParcelID returns the parcel identifier from the command.
func (c CompleteDeliveryCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CarrierAuthority returns the settling carrier's authority from the command.
func (c CompleteDeliveryCommand) CarrierAuthority() kernel.UUID {
	return c.carrierAuthority
}

// Signer returns the identity that signed the request.
func (c CompleteDeliveryCommand) Signer() kernel.UUID {
	return c.signer
}

func (c *CompleteDeliveryCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}

func (c *CompleteDeliveryCommand) setCarrierAuthority(authority kernel.UUID) error {
	if err := authority.Validate(); err != nil {
		return err
	}

	c.carrierAuthority = authority
	return nil
}

func (c *CompleteDeliveryCommand) setSigner(signer kernel.UUID) error {
	if err := signer.Validate(); err != nil {
		return err
	}

	c.signer = signer
	return nil
}
