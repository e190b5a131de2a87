package commands_test

import (
	"testing"

	"parcelchain/internal/core/application/usecases/commands"
	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDimensions(t *testing.T) parcel.Dimensions {
	t.Helper()
	dims, err := parcel.NewDimensions(30, 20, 10)
	require.NoError(t, err)
	return dims
}

func TestNewRegisterParcelCommand_ValidInput(t *testing.T) {
	// Arrange
	parcelID := kernel.NewUUID()
	sender := kernel.NewUUID()
	recipient := kernel.NewUUID()
	dims := validDimensions(t)

	// Act
	cmd, err := commands.NewRegisterParcelCommand(
		parcelID, sender, recipient, "ceramic vase", dims, 1500, 1000)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.ParcelID().IsEqual(parcelID))
	assert.True(t, cmd.Sender().IsEqual(sender))
	assert.True(t, cmd.Recipient().IsEqual(recipient))
	assert.Equal(t, "ceramic vase", cmd.Description())
	assert.Equal(t, dims, cmd.Dimensions())
	assert.Equal(t, uint32(1500), cmd.Weight())
	assert.Equal(t, uint64(1000), cmd.Price())
}

func TestNewRegisterParcelCommand_InvalidInput(t *testing.T) {
	var zero kernel.UUID

	testCases := []struct {
		name string
		run  func() error
	}{
		{
			name: "zero parcel id",
			run: func() error {
				_, err := commands.NewRegisterParcelCommand(
					zero, kernel.NewUUID(), kernel.NewUUID(), "vase", validDimensions(t), 1500, 1000)
				return err
			},
		},
		{
			name: "zero sender",
			run: func() error {
				_, err := commands.NewRegisterParcelCommand(
					kernel.NewUUID(), zero, kernel.NewUUID(), "vase", validDimensions(t), 1500, 1000)
				return err
			},
		},
		{
			name: "zero recipient",
			run: func() error {
				_, err := commands.NewRegisterParcelCommand(
					kernel.NewUUID(), kernel.NewUUID(), zero, "vase", validDimensions(t), 1500, 1000)
				return err
			},
		},
		{
			name: "zero-value dimensions",
			run: func() error {
				_, err := commands.NewRegisterParcelCommand(
					kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "vase",
					parcel.Dimensions{}, 1500, 1000)
				return err
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.run())
		})
	}
}
