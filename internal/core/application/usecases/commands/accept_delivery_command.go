package commands

import (
	"errors"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand represents a carrier's request to take custody of a
// registered parcel. The signer must be the carrier's own authority.
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	parcelID         kernel.UUID
	carrierAuthority kernel.UUID
	signer           kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a command for a carrier to accept a
// delivery.
func NewAcceptDeliveryCommand(parcelID, carrierAuthority, signer kernel.UUID) (AcceptDeliveryCommand, error) {
	command := AcceptDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setCarrierAuthority(carrierAuthority),
		command.setSigner(signer),
	); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// ParcelID returns the parcel identifier from the command.
func (c AcceptDeliveryCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CarrierAuthority returns the accepting carrier's authority from the command.
func (c AcceptDeliveryCommand) CarrierAuthority() kernel.UUID {
	return c.carrierAuthority
}

// Signer returns the identity that signed the request.
func (c AcceptDeliveryCommand) Signer() kernel.UUID {
	return c.signer
}

func (c *AcceptDeliveryCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}

func (c *AcceptDeliveryCommand) setCarrierAuthority(authority kernel.UUID) error {
	if err := authority.Validate(); err != nil {
		return err
	}

	c.carrierAuthority = authority
	return nil
}

func (c *AcceptDeliveryCommand) setSigner(signer kernel.UUID) error {
	if err := signer.Validate(); err != nil {
		return err
	}

	c.signer = signer
	return nil
}
