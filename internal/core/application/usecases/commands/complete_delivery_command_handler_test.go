package commands_test

import (
	"testing"

	"parcelchain/internal/core/application/usecases/commands"
	"parcelchain/internal/core/domain/model/escrow"
	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/parcel"
	"parcelchain/internal/core/domain/services"
	"parcelchain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deliveryWorld drives the full command sequence against the in-memory
// unit of work: initialize, register carrier and parcel, accept, create
// and fund the escrow.
type deliveryWorld struct {
	uow *fakeUoW

	platformAuthority kernel.UUID
	carrierAuthority  kernel.UUID
	sender            kernel.UUID
	parcelID          kernel.UUID

	senderAccount  kernel.CustodyAccount
	carrierAccount kernel.CustodyAccount
	vaultAccount   kernel.CustodyAccount
	feeAccount     kernel.CustodyAccount
}

func setupDeliveryWorld(t *testing.T) *deliveryWorld {
	t.Helper()
	ctx := t.Context()

	w := &deliveryWorld{
		uow:               newFakeUoW(),
		platformAuthority: kernel.NewUUID(),
		carrierAuthority:  kernel.NewUUID(),
		sender:            kernel.NewUUID(),
		parcelID:          kernel.NewUUID(),
	}

	var err error
	w.senderAccount, err = kernel.UserAccount(w.sender)
	require.NoError(t, err)
	w.carrierAccount, err = kernel.UserAccount(w.carrierAuthority)
	require.NoError(t, err)
	w.vaultAccount, err = kernel.VaultAccount(w.parcelID)
	require.NoError(t, err)
	w.feeAccount, err = kernel.FeeAccount(w.platformAuthority)
	require.NoError(t, err)

	initCmd, err := commands.NewInitializePlatformCommand(w.platformAuthority, "USDC")
	require.NoError(t, err)
	initHandler := commands.NewInitializePlatformCommandHandler(
		w.uow.platformFactory(), &RecordingPublisher{})
	require.NoError(t, initHandler.Handle(ctx, initCmd))

	carrierCmd, err := commands.NewCreateCarrierCommand(w.carrierAuthority, 80)
	require.NoError(t, err)
	carrierHandler := commands.NewCreateCarrierCommandHandler(w.uow.carrierFactory())
	require.NoError(t, carrierHandler.Handle(ctx, carrierCmd))

	parcelCmd, err := commands.NewRegisterParcelCommand(
		w.parcelID, w.sender, kernel.NewUUID(), "ceramic vase", validDimensions(t), 1500, 1000)
	require.NoError(t, err)
	parcelHandler := commands.NewRegisterParcelCommandHandler(w.uow.parcelFactory())
	require.NoError(t, parcelHandler.Handle(ctx, parcelCmd))

	acceptCmd, err := commands.NewAcceptDeliveryCommand(w.parcelID, w.carrierAuthority, w.carrierAuthority)
	require.NoError(t, err)
	acceptHandler := commands.NewAcceptDeliveryCommandHandler(w.uow.fullFactory())
	require.NoError(t, acceptHandler.Handle(ctx, acceptCmd))

	escrowCmd, err := commands.NewCreateEscrowCommand(w.parcelID, w.sender)
	require.NoError(t, err)
	escrowHandler := commands.NewCreateEscrowCommandHandler(w.uow.escrowFactory())
	require.NoError(t, escrowHandler.Handle(ctx, escrowCmd))

	// seed the sender's custody balance, then move the payment into the vault
	asset := mustAssetType(t, "USDC")
	require.NoError(t, w.uow.AssetTransfers().Credit(ctx, w.senderAccount, asset, 5000))

	fundCmd, err := commands.NewFundEscrowCommand(w.parcelID, w.sender, 1000, "USDC")
	require.NoError(t, err)
	fundHandler := commands.NewFundEscrowCommandHandler(w.uow.fundingFactory())
	require.NoError(t, fundHandler.Handle(ctx, fundCmd))

	return w
}

func (w *deliveryWorld) complete(t *testing.T, signer kernel.UUID) error {
	t.Helper()
	cmd, err := commands.NewCompleteDeliveryCommand(w.parcelID, w.carrierAuthority, signer)
	require.NoError(t, err)

	handler := commands.NewCompleteDeliveryCommandHandler(
		w.uow.fullFactory(), services.NewDeliverySettlement())
	return handler.Handle(t.Context(), cmd)
}

func TestCompleteDeliveryCommandHandler_Handle_FullLifecycle(t *testing.T) {
	// Arrange
	ctx := t.Context()
	w := setupDeliveryWorld(t)
	asset := mustAssetType(t, "USDC")

	balance := func(account kernel.CustodyAccount) uint64 {
		amount, err := w.uow.AssetTransfers().Balance(ctx, account, asset)
		require.NoError(t, err)
		return amount
	}

	require.Equal(t, uint64(4000), balance(w.senderAccount))
	require.Equal(t, uint64(1000), balance(w.vaultAccount))

	// Act
	err := w.complete(t, w.carrierAuthority)

	// Assert
	require.NoError(t, err)

	// payout: 2% fee of 1000 -> 20 to the platform, 980 to the carrier
	assert.Equal(t, uint64(0), balance(w.vaultAccount))
	assert.Equal(t, uint64(980), balance(w.carrierAccount))
	assert.Equal(t, uint64(20), balance(w.feeAccount))
	assert.Equal(t, uint64(4000), balance(w.senderAccount))

	parcelAggregate, err := w.uow.ParcelRepository().Get(ctx, w.parcelID)
	require.NoError(t, err)
	assert.Equal(t, parcel.Delivered, parcelAggregate.Status())

	escrowAggregate, err := w.uow.EscrowRepository().GetByParcelID(ctx, w.parcelID)
	require.NoError(t, err)
	assert.Equal(t, escrow.Released, escrowAggregate.Status())

	carrierAggregate, err := w.uow.CarrierRepository().Get(ctx, w.carrierAuthority)
	require.NoError(t, err)
	assert.Equal(t, uint8(90), carrierAggregate.Reputation())
	assert.Equal(t, uint32(1), carrierAggregate.CompletedDeliveries())

	platformAggregate, err := w.uow.PlatformRepository().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), platformAggregate.TotalParcels())
}

func TestCompleteDeliveryCommandHandler_Handle_NotReentrant(t *testing.T) {
	// Arrange
	ctx := t.Context()
	w := setupDeliveryWorld(t)
	asset := mustAssetType(t, "USDC")

	require.NoError(t, w.complete(t, w.carrierAuthority))

	// Act: a second settlement must not move funds again
	err := w.complete(t, w.carrierAuthority)

	// Assert
	require.ErrorIs(t, err, escrow.ErrInvalidEscrowAccount)

	carrierBalance, err := w.uow.AssetTransfers().Balance(ctx, w.carrierAccount, asset)
	require.NoError(t, err)
	assert.Equal(t, uint64(980), carrierBalance)

	carrierAggregate, err := w.uow.CarrierRepository().Get(ctx, w.carrierAuthority)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), carrierAggregate.CompletedDeliveries())
}

func TestCompleteDeliveryCommandHandler_Handle_UnauthorizedSigner(t *testing.T) {
	// Arrange
	w := setupDeliveryWorld(t)

	// Act
	err := w.complete(t, w.sender)

	// Assert
	require.ErrorIs(t, err, commands.ErrUnauthorized)
}

func TestCompleteDeliveryCommandHandler_Handle_PlatformAuthoritySigner(t *testing.T) {
	// Arrange
	ctx := t.Context()
	w := setupDeliveryWorld(t)
	asset := mustAssetType(t, "USDC")

	// Act: the platform authority may trigger settlement on the carrier's behalf
	err := w.complete(t, w.platformAuthority)

	// Assert
	require.NoError(t, err)

	carrierBalance, err := w.uow.AssetTransfers().Balance(ctx, w.carrierAccount, asset)
	require.NoError(t, err)
	assert.Equal(t, uint64(980), carrierBalance)

	escrowAggregate, err := w.uow.EscrowRepository().GetByParcelID(ctx, w.parcelID)
	require.NoError(t, err)
	assert.Equal(t, escrow.Released, escrowAggregate.Status())
}

func TestCompleteDeliveryCommandHandler_Handle_WrongCarrier(t *testing.T) {
	// Arrange
	ctx := t.Context()
	w := setupDeliveryWorld(t)

	stranger := kernel.NewUUID()
	strangerCmd, err := commands.NewCreateCarrierCommand(stranger, 80)
	require.NoError(t, err)
	carrierHandler := commands.NewCreateCarrierCommandHandler(w.uow.carrierFactory())
	require.NoError(t, carrierHandler.Handle(ctx, strangerCmd))

	cmd, err := commands.NewCompleteDeliveryCommand(w.parcelID, stranger, stranger)
	require.NoError(t, err)
	handler := commands.NewCompleteDeliveryCommandHandler(
		w.uow.fullFactory(), services.NewDeliverySettlement())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, escrow.ErrInvalidEscrowAccount)

	escrowAggregate, err := w.uow.EscrowRepository().GetByParcelID(ctx, w.parcelID)
	require.NoError(t, err)
	assert.Equal(t, escrow.Funded, escrowAggregate.Status())
}

func TestCompleteDeliveryCommandHandler_Handle_UnknownCarrier(t *testing.T) {
	// Arrange
	w := setupDeliveryWorld(t)
	unknown := kernel.NewUUID()

	cmd, err := commands.NewCompleteDeliveryCommand(w.parcelID, unknown, unknown)
	require.NoError(t, err)
	handler := commands.NewCompleteDeliveryCommandHandler(
		w.uow.fullFactory(), services.NewDeliverySettlement())

	// Act
	err = handler.Handle(t.Context(), cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
