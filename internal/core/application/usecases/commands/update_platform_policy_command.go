package commands

import (
	"errors"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/platform"
	"parcelchain/internal/pkg/guard"
)

var ErrUpdatePlatformPolicyCommandIsNotConstructed = errors.New(
	"UpdatePlatformPolicyCommand must be created via NewUpdatePlatformPolicyCommand constructor",
)

// UpdatePlatformPolicyCommand represents the authority's request to change
// platform policy: the fee rate, the reputation policy applied on settled
// deliveries, and optionally an extra asset type to accept for escrow
// funding.
type UpdatePlatformPolicyCommand struct { //nolint:recvcheck //using for validation
	signer              kernel.UUID
	feeRate             uint16
	reputationIncrement uint8
	clampReputation     bool
	allowAssetType      platform.AssetType
	hasAllowAssetType   bool

	guard guard.ConstructorGuard
}

// NewUpdatePlatformPolicyCommand creates a command to change platform
// policy. An empty allowAssetType means no change to the allow-list; the
// fee rate bound is enforced by the platform aggregate.
func NewUpdatePlatformPolicyCommand(
	signer kernel.UUID,
	feeRate uint16,
	reputationIncrement uint8,
	clampReputation bool,
	allowAssetType string,
) (UpdatePlatformPolicyCommand, error) {
	command := UpdatePlatformPolicyCommand{
		feeRate:             feeRate,
		reputationIncrement: reputationIncrement,
		clampReputation:     clampReputation,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSigner(signer),
		command.setAllowAssetType(allowAssetType),
	); err != nil {
		return UpdatePlatformPolicyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePlatformPolicyCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePlatformPolicyCommandIsNotConstructed)
}

// Signer returns the identity that signed the request.
func (c UpdatePlatformPolicyCommand) Signer() kernel.UUID {
	return c.signer
}

// FeeRate returns the requested fee rate in basis points.
func (c UpdatePlatformPolicyCommand) FeeRate() uint16 {
	return c.feeRate
}

// ReputationIncrement returns the requested per-delivery reputation
// increase.
func (c UpdatePlatformPolicyCommand) ReputationIncrement() uint8 {
	return c.reputationIncrement
}

// ClampReputation reports whether reputation should be capped at its
// ceiling.
func (c UpdatePlatformPolicyCommand) ClampReputation() bool {
	return c.clampReputation
}

// AllowAssetType returns the asset type to add to the allow-list and
// whether one was requested.
func (c UpdatePlatformPolicyCommand) AllowAssetType() (platform.AssetType, bool) {
	return c.allowAssetType, c.hasAllowAssetType
}

func (c *UpdatePlatformPolicyCommand) setSigner(signer kernel.UUID) error {
	if err := signer.Validate(); err != nil {
		return err
	}

	c.signer = signer
	return nil
}

func (c *UpdatePlatformPolicyCommand) setAllowAssetType(assetType string) error {
	if assetType == "" {
		return nil
	}

	asset, err := platform.NewAssetType(assetType)
	if err != nil {
		return err
	}

	c.allowAssetType = asset
	c.hasAllowAssetType = true
	return nil
}
