package commands

import (
	"context"
	"errors"
	"time"

	"parcelchain/internal/pkg/errs"
)

// AcceptDeliveryCommandHandler handles the business logic for a carrier
// accepting a parcel. The carrier's reputation gate, the parcel's state
// transition, and the carrier binding on an already created escrow all
// commit together.
type AcceptDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery acceptance.
func NewAcceptDeliveryCommandHandler(uowFactory UoWFactory) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery acceptance command. Returns ErrUnauthorized
// when the signer is not the accepting carrier's authority.
func (h *AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Signer().IsEqual(cmd.CarrierAuthority()) {
		return ErrUnauthorized
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carrierAggregate, err := uow.CarrierRepository().Get(ctx, cmd.CarrierAuthority())
	if err != nil {
		return err
	}

	if err = carrierAggregate.CanAccept(); err != nil {
		return err
	}

	parcelAggregate, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = parcelAggregate.Accept(carrierAggregate.Authority(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, parcelAggregate); err != nil {
		return err
	}

	// an escrow created before acceptance has no carrier yet; bind it now
	escrowAggregate, err := uow.EscrowRepository().GetByParcelID(ctx, cmd.ParcelID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// no escrow yet, the sender will create it with the carrier set
	case err != nil:
		return err
	default:
		if err = escrowAggregate.BindCarrier(carrierAggregate.Authority()); err != nil {
			return err
		}
		if err = uow.EscrowRepository().Update(ctx, escrowAggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
