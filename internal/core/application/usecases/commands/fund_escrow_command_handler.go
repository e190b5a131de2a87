package commands

import (
	"context"
	"fmt"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/platform"
)

// FundEscrowCommandHandler handles the business logic for escrow funding.
// The custody movement from the sender's account to the vault and the
// escrow's state change commit in one transaction, so funds and status
// never disagree.
type FundEscrowCommandHandler struct {
	uowFactory FundingUoWFactory
}

// NewFundEscrowCommandHandler creates a handler for escrow funding.
func NewFundEscrowCommandHandler(uowFactory FundingUoWFactory) FundEscrowCommandHandler {
	return FundEscrowCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the escrow funding command. Only the escrow's sender may
// fund it, and only with an asset type the platform accepts.
func (h *FundEscrowCommandHandler) Handle(ctx context.Context, cmd FundEscrowCommand) error {
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

	escrowAggregate, err := uow.EscrowRepository().GetByParcelID(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if !cmd.Signer().IsEqual(escrowAggregate.Sender()) {
		return ErrUnauthorized
	}

	platformAggregate, err := uow.PlatformRepository().Get(ctx)
	if err != nil {
		return err
	}

	if !platformAggregate.AssetAllowed(cmd.AssetType()) {
		return fmt.Errorf("%w: %s", platform.ErrAssetNotAllowed, cmd.AssetType())
	}

	if err = escrowAggregate.Fund(cmd.Amount(), cmd.AssetType()); err != nil {
		return err
	}

	senderAccount, err := kernel.UserAccount(escrowAggregate.Sender())
	if err != nil {
		return err
	}

	vaultAccount, err := escrowAggregate.VaultAccount()
	if err != nil {
		return err
	}

	ledger := uow.AssetTransfers()
	if err = ledger.Debit(ctx, senderAccount, cmd.AssetType(), cmd.Amount()); err != nil {
		return err
	}
	if err = ledger.Credit(ctx, vaultAccount, cmd.AssetType(), cmd.Amount()); err != nil {
		return err
	}

	if err = uow.EscrowRepository().Update(ctx, escrowAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
