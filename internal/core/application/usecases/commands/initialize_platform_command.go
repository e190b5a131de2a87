package commands

import (
	"errors"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/platform"
	"parcelchain/internal/pkg/guard"
)

var ErrInitializePlatformCommandIsNotConstructed = errors.New(
	"InitializePlatformCommand must be created via NewInitializePlatformCommand constructor",
)

// InitializePlatformCommand represents a request to create the singleton
// platform configuration record with its owning authority and the asset
// type accepted for escrow funding by default.
//
// Example:
//
//	cmd, err := NewInitializePlatformCommand(authority, "USDC")
//	if err != nil {
//	    return fmt.Errorf("invalid platform data: %w", err)
//	}
//
//	handler := NewInitializePlatformCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to initialize platform: %w", err)
//	}
type InitializePlatformCommand struct { //nolint:recvcheck //using for validation
	authority        kernel.UUID
	defaultAssetType platform.AssetType

	guard guard.ConstructorGuard
}

// NewInitializePlatformCommand creates a command to initialize the platform.
// Validates that the authority is a proper UUID and the asset type is not
// empty.
func NewInitializePlatformCommand(authority kernel.UUID, defaultAssetType string) (InitializePlatformCommand, error) {
	command := InitializePlatformCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAuthority(authority),
		command.setDefaultAssetType(defaultAssetType),
	); err != nil {
		return InitializePlatformCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c InitializePlatformCommand) Validate() error {
	return c.guard.Validate(ErrInitializePlatformCommandIsNotConstructed)
}

// Authority returns the owning identity from the command.
func (c InitializePlatformCommand) Authority() kernel.UUID {
	return c.authority
}

// DefaultAssetType returns the default escrow asset type from the command.
func (c InitializePlatformCommand) DefaultAssetType() platform.AssetType {
	return c.defaultAssetType
}

func (c *InitializePlatformCommand) setAuthority(authority kernel.UUID) error {
	if err := authority.Validate(); err != nil {
		return err
	}

	c.authority = authority
	return nil
}

func (c *InitializePlatformCommand) setDefaultAssetType(assetType string) error {
	asset, err := platform.NewAssetType(assetType)
	if err != nil {
		return err
	}

	c.defaultAssetType = asset
	return nil
}
