package commands

import (
	"context"

	"parcelchain/internal/core/domain/model/carrier"
)

// CreateCarrierCommandHandler handles the business logic for carrier
// registration. Creates and persists the carrier record keyed by its
// authority; the repository rejects a duplicate registration with
// carrier.ErrAlreadyRegistered.
type CreateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewCreateCarrierCommandHandler creates a handler for carrier registration.
func NewCreateCarrierCommandHandler(uowFactory CarrierUoWFactory) CreateCarrierCommandHandler {
	return CreateCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carrier registration command.
func (h *CreateCarrierCommandHandler) Handle(ctx context.Context, cmd CreateCarrierCommand) error {
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

	aggregate, err := carrier.NewCarrier(cmd.Authority(), cmd.InitialReputation())
	if err != nil {
		return err
	}

	if err = uow.CarrierRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
