package commands

import (
	"context"
)

// UpdatePlatformPolicyCommandHandler handles the business logic for
// platform policy changes. Only the platform's authority may run it.
type UpdatePlatformPolicyCommandHandler struct {
	uowFactory PlatformUoWFactory
}

// NewUpdatePlatformPolicyCommandHandler creates a handler for platform
// policy changes.
func NewUpdatePlatformPolicyCommandHandler(uowFactory PlatformUoWFactory) UpdatePlatformPolicyCommandHandler {
	return UpdatePlatformPolicyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the policy change command.
func (h *UpdatePlatformPolicyCommandHandler) Handle(ctx context.Context, cmd UpdatePlatformPolicyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.PlatformRepository().Get(ctx)
	if err != nil {
		return err
	}

	if !cmd.Signer().IsEqual(aggregate.Authority()) {
		return ErrUnauthorized
	}

	if err = aggregate.ChangeFeeRate(cmd.FeeRate()); err != nil {
		return err
	}

	aggregate.ChangeReputationPolicy(cmd.ReputationIncrement(), cmd.ClampReputation())

	if asset, ok := cmd.AllowAssetType(); ok {
		if err = aggregate.AllowAssetType(asset); err != nil {
			return err
		}
	}

	if err = uow.PlatformRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
