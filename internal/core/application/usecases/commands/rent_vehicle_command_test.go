package commands_test

import (
	"testing"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func mustPeriod(t *testing.T, start, end time.Time) kernel.Period {
	t.Helper()
	period, err := kernel.NewPeriod(start, end)
	require.NoError(t, err)
	return period
}

func TestNewRentVehicleCommand_ValidInput(t *testing.T) {
	// Arrange
	vehicleID := mustID(t, 1)
	customerID := mustID(t, 2)
	period := mustPeriod(t, date(2025, 3, 10), date(2025, 3, 14))

	// Act
	cmd, err := commands.NewRentVehicleCommand(vehicleID, customerID, period)

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, cmd)
	assert.Equal(t, vehicleID, cmd.VehicleID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, period, cmd.Period())
}

func TestNewRentVehicleCommand_SameDayPeriod(t *testing.T) {
	// A period that starts and ends on the same day is allowed.
	period := mustPeriod(t, date(2025, 3, 10), date(2025, 3, 10))

	cmd, err := commands.NewRentVehicleCommand(mustID(t, 1), mustID(t, 2), period)

	require.NoError(t, err)
	assert.Zero(t, cmd.Period().Days())
}

func TestNewRentVehicleCommand_InvalidVehicleID(t *testing.T) {
	// Arrange
	var invalidID kernel.ID
	period := mustPeriod(t, date(2025, 3, 10), date(2025, 3, 14))

	// Act
	_, err := commands.NewRentVehicleCommand(invalidID, mustID(t, 2), period)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ID must be created")
}

func TestNewRentVehicleCommand_InvalidCustomerID(t *testing.T) {
	// Arrange
	var invalidID kernel.ID
	period := mustPeriod(t, date(2025, 3, 10), date(2025, 3, 14))

	// Act
	_, err := commands.NewRentVehicleCommand(mustID(t, 1), invalidID, period)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ID must be created")
}

func TestNewRentVehicleCommand_InvalidPeriod(t *testing.T) {
	// Arrange
	var invalidPeriod kernel.Period // zero value

	// Act
	_, err := commands.NewRentVehicleCommand(mustID(t, 1), mustID(t, 2), invalidPeriod)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrPeriodIsNotConstructed)
}

func TestNewRentVehicleCommand_ReversedPeriodCannotBeConstructed(t *testing.T) {
	// Periods with end before start are rejected by kernel.NewPeriod,
	// so they can never reach the command.
	_, err := kernel.NewPeriod(date(2025, 3, 14), date(2025, 3, 10))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "end")
}

func TestNewRentVehicleCommand_MultipleCombinedErrors(t *testing.T) {
	// Arrange
	var invalidID kernel.ID
	var invalidPeriod kernel.Period

	// Act
	_, err := commands.NewRentVehicleCommand(invalidID, invalidID, invalidPeriod)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ID must be created")
	assert.Contains(t, err.Error(), "period must be created")
}

func TestRentVehicleCommand_Validate_Success(t *testing.T) {
	// Arrange
	period := mustPeriod(t, date(2025, 3, 10), date(2025, 3, 14))
	cmd, err := commands.NewRentVehicleCommand(mustID(t, 1), mustID(t, 2), period)
	require.NoError(t, err)

	// Act
	err = cmd.Validate()

	// Assert
	assert.NoError(t, err)
}

func TestRentVehicleCommand_Validate_ZeroValue(t *testing.T) {
	// Arrange - zero value command (not constructed via constructor)
	var cmd commands.RentVehicleCommand

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRentVehicleCommandIsNotConstructed)
}
