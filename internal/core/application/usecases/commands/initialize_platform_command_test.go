package commands_test

import (
	"testing"

	"parcelchain/internal/core/application/usecases/commands"
	"parcelchain/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitializePlatformCommand_ValidInput(t *testing.T) {
	// Arrange
	authority := kernel.NewUUID()

	// Act
	cmd, err := commands.NewInitializePlatformCommand(authority, "USDC")

	// Assert
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.Authority().IsEqual(authority))
	assert.Equal(t, "USDC", cmd.DefaultAssetType().String())
}

func TestNewInitializePlatformCommand_InvalidInput(t *testing.T) {
	t.Run("zero authority", func(t *testing.T) {
		var zero kernel.UUID

		_, err := commands.NewInitializePlatformCommand(zero, "USDC")

		require.Error(t, err)
	})

	t.Run("empty asset type", func(t *testing.T) {
		_, err := commands.NewInitializePlatformCommand(kernel.NewUUID(), "")

		require.Error(t, err)
	})
}

func TestInitializePlatformCommand_ZeroValueIsInvalid(t *testing.T) {
	var cmd commands.InitializePlatformCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrInitializePlatformCommandIsNotConstructed)
}
