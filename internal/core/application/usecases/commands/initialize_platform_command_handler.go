package commands

import (
	"context"

	"parcelchain/internal/core/domain/model/platform"
	"parcelchain/internal/core/ports"
)

// InitializePlatformCommandHandler handles the business logic for platform
// initialization. Creates the singleton platform record with the default
// policy and announces it via the event publisher once the record commits.
type InitializePlatformCommandHandler struct {
	uowFactory PlatformUoWFactory
	publisher  ports.EventPublisher
}

// NewInitializePlatformCommandHandler creates a handler for platform
// initialization.
func NewInitializePlatformCommandHandler(
	uowFactory PlatformUoWFactory,
	publisher ports.EventPublisher,
) InitializePlatformCommandHandler {
	return InitializePlatformCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the platform initialization command. The repository
// enforces uniqueness: a second initialization fails with
// platform.ErrAlreadyInitialized.
func (h *InitializePlatformCommandHandler) Handle(ctx context.Context, cmd InitializePlatformCommand) error {
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

	aggregate, err := platform.NewPlatform(cmd.Authority(), cmd.DefaultAssetType())
	if err != nil {
		return err
	}

	if err = uow.PlatformRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, platform.InitializedEvent{
		Authority: aggregate.Authority(),
		FeeRate:   aggregate.FeeRate(),
	})

	return nil
}
