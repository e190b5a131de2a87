package commands

import (
	"errors"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/pkg/guard"
)

var ErrCreateEscrowCommandIsNotConstructed = errors.New(
	"CreateEscrowCommand must be created via NewCreateEscrowCommand constructor",
)

// CreateEscrowCommand represents a sender's request to open an escrow vault
// for a registered parcel. The vault starts empty; funding is a separate
// command.
type CreateEscrowCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	signer   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateEscrowCommand creates a command to open an escrow vault.
func NewCreateEscrowCommand(parcelID, signer kernel.UUID) (CreateEscrowCommand, error) {
	command := CreateEscrowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setSigner(signer),
	); err != nil {
		return CreateEscrowCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEscrowCommand) Validate() error {
	return c.guard.Validate(ErrCreateEscrowCommandIsNotConstructed)
}

// ParcelID returns the parcel identifier from the command.
func (c CreateEscrowCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Signer returns the identity that signed the request.
func (c CreateEscrowCommand) Signer() kernel.UUID {
	return c.signer
}

func (c *CreateEscrowCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}

func (c *CreateEscrowCommand) setSigner(signer kernel.UUID) error {
	if err := signer.Validate(); err != nil {
		return err
	}

	c.signer = signer
	return nil
}
