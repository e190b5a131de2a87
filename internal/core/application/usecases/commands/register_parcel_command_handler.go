package commands

import (
	"context"
	"time"

	"parcelchain/internal/core/domain/model/parcel"
)

// RegisterParcelCommandHandler handles the business logic for parcel
// registration. Persisting the parcel and bumping the platform's parcel
// counter happen in one transaction, so the counter never drifts from the
// number of stored parcels.
type RegisterParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewRegisterParcelCommandHandler creates a handler for parcel registration.
func NewRegisterParcelCommandHandler(uowFactory ParcelUoWFactory) RegisterParcelCommandHandler {
	return RegisterParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel registration command.
func (h *RegisterParcelCommandHandler) Handle(ctx context.Context, cmd RegisterParcelCommand) error {
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

	platformAggregate, err := uow.PlatformRepository().Get(ctx)
	if err != nil {
		return err
	}

	if err = platformAggregate.RecordParcelRegistration(); err != nil {
		return err
	}

	parcelAggregate, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.Sender(),
		cmd.Recipient(),
		cmd.Description(),
		cmd.Dimensions(),
		cmd.Weight(),
		cmd.Price(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ParcelRepository().Add(ctx, parcelAggregate); err != nil {
		return err
	}

	if err = uow.PlatformRepository().Update(ctx, platformAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
