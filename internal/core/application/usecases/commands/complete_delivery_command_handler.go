package commands

import (
	"context"
	"time"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/services"
)

// CompleteDeliveryCommandHandler handles the business logic for delivery
// settlement. The settlement service applies the joint state transition
// across the escrow, parcel and carrier aggregates; this handler executes
// the resulting custody movements and persists everything in one
// transaction. A failure at any point rolls the whole settlement back, so
// the escrow can never pay out twice or pay out without the parcel being
// delivered.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	settlement services.DeliverySettlement
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery
// settlement.
func NewCompleteDeliveryCommandHandler(
	uowFactory UoWFactory,
	settlement services.DeliverySettlement,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		settlement: settlement,
	}
}

// Handle processes the delivery settlement command. Settlement may be
// triggered by the settling carrier's authority or by the platform
// authority; any other signer gets ErrUnauthorized.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	if !cmd.Signer().IsEqual(cmd.CarrierAuthority()) &&
		!cmd.Signer().IsEqual(platformAggregate.Authority()) {
		return ErrUnauthorized
	}

	parcelAggregate, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	escrowAggregate, err := uow.EscrowRepository().GetByParcelID(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	carrierAggregate, err := uow.CarrierRepository().Get(ctx, cmd.CarrierAuthority())
	if err != nil {
		return err
	}

	asset := escrowAggregate.Asset()

	payout, err := h.settlement.Settle(
		platformAggregate, parcelAggregate, escrowAggregate, carrierAggregate, time.Now().UTC())
	if err != nil {
		return err
	}

	vaultAccount, err := escrowAggregate.VaultAccount()
	if err != nil {
		return err
	}

	carrierAccount, err := kernel.UserAccount(carrierAggregate.Authority())
	if err != nil {
		return err
	}

	ledger := uow.AssetTransfers()
	if err = ledger.Debit(ctx, vaultAccount, asset, payout.Total()); err != nil {
		return err
	}
	if err = ledger.Credit(ctx, carrierAccount, asset, payout.CarrierAmount()); err != nil {
		return err
	}

	if payout.PlatformFee() > 0 {
		feeAccount, err := kernel.FeeAccount(platformAggregate.Authority())
		if err != nil {
			return err
		}
		if err = ledger.Credit(ctx, feeAccount, asset, payout.PlatformFee()); err != nil {
			return err
		}
	}

	if err = uow.EscrowRepository().Update(ctx, escrowAggregate); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, parcelAggregate); err != nil {
		return err
	}

	if err = uow.CarrierRepository().Update(ctx, carrierAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
