package commands

import (
	"context"
	"time"

	"parcelchain/internal/core/domain/model/escrow"
)

// CreateEscrowCommandHandler handles the business logic for opening an
// escrow vault. The vault is keyed by the parcel it secures, so a second
// creation for the same parcel fails with escrow.ErrAlreadyExists in the
// repository.
type CreateEscrowCommandHandler struct {
	uowFactory EscrowUoWFactory
}

// NewCreateEscrowCommandHandler creates a handler for escrow creation.
func NewCreateEscrowCommandHandler(uowFactory EscrowUoWFactory) CreateEscrowCommandHandler {
	return CreateEscrowCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the escrow creation command. Only the parcel's sender
// may open the vault; the carrier binding is snapshotted from the parcel
// and may still be unassigned.
func (h *CreateEscrowCommandHandler) Handle(ctx context.Context, cmd CreateEscrowCommand) error {
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

	parcelAggregate, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if !cmd.Signer().IsEqual(parcelAggregate.Sender()) {
		return ErrUnauthorized
	}

	escrowAggregate, err := escrow.NewEscrow(
		parcelAggregate.ID(),
		parcelAggregate.Sender(),
		parcelAggregate.Carrier(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.EscrowRepository().Add(ctx, escrowAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
