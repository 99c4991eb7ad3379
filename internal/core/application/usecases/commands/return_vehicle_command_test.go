package commands_test

import (
	"testing"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReturnVehicleCommand_ValidInput(t *testing.T) {
	// Arrange
	rentalID := mustID(t, 1)

	// Act
	cmd, err := commands.NewReturnVehicleCommand(rentalID)

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, cmd)
	assert.Equal(t, rentalID, cmd.RentalID())
}

func TestNewReturnVehicleCommand_InvalidRentalID(t *testing.T) {
	// Arrange
	var invalidID kernel.ID

	// Act
	_, err := commands.NewReturnVehicleCommand(invalidID)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ID must be created")
}

func TestReturnVehicleCommand_Validate_Success(t *testing.T) {
	// Arrange
	cmd, err := commands.NewReturnVehicleCommand(mustID(t, 1))
	require.NoError(t, err)

	// Act
	err = cmd.Validate()

	// Assert
	assert.NoError(t, err)
}

func TestReturnVehicleCommand_Validate_ZeroValue(t *testing.T) {
	// Arrange - zero value command (not constructed via constructor)
	var cmd commands.ReturnVehicleCommand

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrReturnVehicleCommandIsNotConstructed)
}
