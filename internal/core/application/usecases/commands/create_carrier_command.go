package commands

import (
	"errors"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/pkg/guard"
)

var ErrCreateCarrierCommandIsNotConstructed = errors.New(
	"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
)

// CreateCarrierCommand represents a request to register a new carrier bound
// to the signing authority. The carrier record is keyed by the authority,
// so each identity owns at most one.
type CreateCarrierCommand struct { //nolint:recvcheck //using for validation
	authority         kernel.UUID
	initialReputation uint8

	guard guard.ConstructorGuard
}

// NewCreateCarrierCommand creates a command to register a carrier. The
// initial reputation bound is enforced by the carrier aggregate.
func NewCreateCarrierCommand(authority kernel.UUID, initialReputation uint8) (CreateCarrierCommand, error) {
	command := CreateCarrierCommand{
		initialReputation: initialReputation,
		guard:             guard.NewConstructorGuard(),
	}

	if err := command.setAuthority(authority); err != nil {
		return CreateCarrierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

// Authority returns the carrier's owning identity from the command.
func (c CreateCarrierCommand) Authority() kernel.UUID {
	return c.authority
}

// InitialReputation returns the starting reputation from the command.
func (c CreateCarrierCommand) InitialReputation() uint8 {
	return c.initialReputation
}

func (c *CreateCarrierCommand) setAuthority(authority kernel.UUID) error {
	if err := authority.Validate(); err != nil {
		return err
	}

	c.authority = authority
	return nil
}
