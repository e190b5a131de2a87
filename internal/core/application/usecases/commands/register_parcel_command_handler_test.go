package commands_test

import (
	"testing"

	"parcelchain/internal/core/application/usecases/commands"
	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/parcel"
	"parcelchain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterParcelCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	cmd, err := commands.NewRegisterParcelCommand(
		parcelID, kernel.NewUUID(), kernel.NewUUID(), "ceramic vase", validDimensions(t), 1500, 1000)
	require.NoError(t, err)

	platformAggregate := mustPlatform(t, kernel.NewUUID())

	mockPlatformRepo := new(MockPlatformRepository)
	mockParcelRepo := new(MockParcelRepository)
	mockUoW := new(MockUoW)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("PlatformRepository").Return(mockPlatformRepo)
	mockUoW.On("ParcelRepository").Return(mockParcelRepo).Once()
	mockPlatformRepo.On("Get", ctx).Return(platformAggregate, nil).Once()
	mockParcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once()
	mockPlatformRepo.On("Update", ctx, platformAggregate).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewRegisterParcelCommandHandler(
		parcelUoWFactoryFunc(func() commands.ParcelUoW { return mockUoW }))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockUoW.AssertExpectations(t)
	mockPlatformRepo.AssertExpectations(t)
	mockParcelRepo.AssertExpectations(t)

	// the parcel counter and the stored parcel commit together
	assert.Equal(t, uint64(1), platformAggregate.TotalParcels())

	added := mockParcelRepo.Calls[0].Arguments.Get(1).(*parcel.Parcel)
	assert.True(t, added.ID().IsEqual(parcelID))
	assert.Equal(t, parcel.Registered, added.Status())
	assert.False(t, added.Carrier().IsAssigned())
}

func TestRegisterParcelCommandHandler_Handle_InvalidParcel(t *testing.T) {
	// Arrange: a zero price passes the command but fails the aggregate
	ctx := t.Context()
	cmd, err := commands.NewRegisterParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "vase", validDimensions(t), 1500, 0)
	require.NoError(t, err)

	platformAggregate := mustPlatform(t, kernel.NewUUID())

	mockPlatformRepo := new(MockPlatformRepository)
	mockUoW := new(MockUoW)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("PlatformRepository").Return(mockPlatformRepo).Once()
	mockPlatformRepo.On("Get", ctx).Return(platformAggregate, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewRegisterParcelCommandHandler(
		parcelUoWFactoryFunc(func() commands.ParcelUoW { return mockUoW }))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, parcel.ErrInvalidPrice)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestRegisterParcelCommandHandler_Handle_PlatformNotInitialized(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "vase", validDimensions(t), 1500, 1000)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("platform", 1)

	mockPlatformRepo := new(MockPlatformRepository)
	mockUoW := new(MockUoW)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("PlatformRepository").Return(mockPlatformRepo).Once()
	mockPlatformRepo.On("Get", ctx).Return(nil, notFound).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewRegisterParcelCommandHandler(
		parcelUoWFactoryFunc(func() commands.ParcelUoW { return mockUoW }))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, notFound)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}
