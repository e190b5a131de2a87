package commands

import (
	"errors"
	"fmt"

	"parcelchain/internal/core/domain/model/escrow"
	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/platform"
	"parcelchain/internal/pkg/guard"
)

var ErrFundEscrowCommandIsNotConstructed = errors.New(
	"FundEscrowCommand must be created via NewFundEscrowCommand constructor",
)

// FundEscrowCommand represents a sender's request to move the delivery
// payment into vault custody.
//
// Example:
//
//	cmd, err := NewFundEscrowCommand(parcelID, sender, 1000, "USDC")
//	if err != nil {
//	    return fmt.Errorf("invalid funding data: %w", err)
//	}
//
//	handler := NewFundEscrowCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to fund escrow: %w", err)
//	}
type FundEscrowCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	signer    kernel.UUID
	amount    uint64
	assetType platform.AssetType

	guard guard.ConstructorGuard
}

// NewFundEscrowCommand creates a command to fund an escrow vault. The
// amount must be positive and the asset type non-empty; whether the
// platform accepts the asset type is checked by the handler.
func NewFundEscrowCommand(parcelID, signer kernel.UUID, amount uint64, assetType string) (FundEscrowCommand, error) {
	command := FundEscrowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setSigner(signer),
		command.setAmount(amount),
		command.setAssetType(assetType),
	); err != nil {
		return FundEscrowCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c FundEscrowCommand) Validate() error {
	return c.guard.Validate(ErrFundEscrowCommandIsNotConstructed)
}

// ParcelID returns the parcel identifier from the command.
func (c FundEscrowCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Signer returns the identity that signed the request.
func (c FundEscrowCommand) Signer() kernel.UUID {
	return c.signer
}

// Amount returns the funding amount from the command.
func (c FundEscrowCommand) Amount() uint64 {
	return c.amount
}

// AssetType returns the funding asset type from the command.
func (c FundEscrowCommand) AssetType() platform.AssetType {
	return c.assetType
}

func (c *FundEscrowCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}

func (c *FundEscrowCommand) setSigner(signer kernel.UUID) error {
	if err := signer.Validate(); err != nil {
		return err
	}

	c.signer = signer
	return nil
}

func (c *FundEscrowCommand) setAmount(amount uint64) error {
	if amount == 0 {
		return fmt.Errorf("%w: amount must be greater than 0", escrow.ErrInvalidAmount)
	}

	c.amount = amount
	return nil
}

func (c *FundEscrowCommand) setAssetType(assetType string) error {
	asset, err := platform.NewAssetType(assetType)
	if err != nil {
		return err
	}

	c.assetType = asset
	return nil
}
