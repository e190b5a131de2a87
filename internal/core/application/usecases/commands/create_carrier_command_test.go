package commands_test

import (
	"testing"

	"parcelchain/internal/core/application/usecases/commands"
	"parcelchain/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCarrierCommand_ValidInput(t *testing.T) {
	// Arrange
	authority := kernel.NewUUID()

	// Act
	cmd, err := commands.NewCreateCarrierCommand(authority, 80)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.Authority().IsEqual(authority))
	assert.Equal(t, uint8(80), cmd.InitialReputation())
}

func TestNewCreateCarrierCommand_ZeroAuthority(t *testing.T) {
	var zero kernel.UUID

	_, err := commands.NewCreateCarrierCommand(zero, 80)

	require.Error(t, err)
}

func TestCreateCarrierCommand_ZeroValueIsInvalid(t *testing.T) {
	var cmd commands.CreateCarrierCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateCarrierCommandIsNotConstructed)
}
