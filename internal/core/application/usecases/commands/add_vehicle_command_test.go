package commands_test

import (
	"testing"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddVehicleCommand_ValidInput(t *testing.T) {
	// Arrange
	vehicleMake := "Toyota"
	model := "Camry"
	licensePlate := "ABC-123"
	dailyRate := 45.00

	// Act
	cmd, err := commands.NewAddVehicleCommand(vehicleMake, model, licensePlate, dailyRate, vehicle.Car)

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, cmd)
	assert.Equal(t, vehicleMake, cmd.Make())
	assert.Equal(t, model, cmd.Model())
	assert.Equal(t, licensePlate, cmd.LicensePlate())
	assert.InDelta(t, dailyRate, cmd.DailyRate(), 0.0001)
	assert.Equal(t, vehicle.Car, cmd.VehicleType())
}

func TestNewAddVehicleCommand_ValidInputBoundaryValues(t *testing.T) {
	testCases := []struct {
		name         string
		vehicleMake  string
		model        string
		licensePlate string
		dailyRate    float64
		vehicleType  vehicle.Type
	}{
		{
			name:         "zero daily rate",
			vehicleMake:  "Promo",
			model:        "Special",
			licensePlate: "FREE-1",
			dailyRate:    0,
			vehicleType:  vehicle.Car,
		},
		{
			name:         "high daily rate",
			vehicleMake:  "Lamborghini",
			model:        "Huracan",
			licensePlate: "FAST-1",
			dailyRate:    1500.00,
			vehicleType:  vehicle.Car,
		},
		{
			name:         "van type",
			vehicleMake:  "Ford",
			model:        "Transit",
			licensePlate: "VAN-042",
			dailyRate:    65.00,
			vehicleType:  vehicle.Van,
		},
		{
			name:         "single character fields",
			vehicleMake:  "X",
			model:        "Y",
			licensePlate: "Z",
			dailyRate:    1.00,
			vehicleType:  vehicle.Car,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			cmd, err := commands.NewAddVehicleCommand(
				tc.vehicleMake, tc.model, tc.licensePlate, tc.dailyRate, tc.vehicleType)

			// Assert
			require.NoError(t, err)
			assert.NotZero(t, cmd)
			assert.Equal(t, tc.vehicleMake, cmd.Make())
			assert.Equal(t, tc.model, cmd.Model())
			assert.Equal(t, tc.licensePlate, cmd.LicensePlate())
			assert.InDelta(t, tc.dailyRate, cmd.DailyRate(), 0.0001)
			assert.Equal(t, tc.vehicleType, cmd.VehicleType())
		})
	}
}

func TestNewAddVehicleCommand_EmptyMake(t *testing.T) {
	// Act
	_, err := commands.NewAddVehicleCommand("", "Camry", "ABC-123", 45.00, vehicle.Car)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrMakeIsRequired)
}

func TestNewAddVehicleCommand_EmptyModel(t *testing.T) {
	// Act
	_, err := commands.NewAddVehicleCommand("Toyota", "", "ABC-123", 45.00, vehicle.Car)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrModelIsRequired)
}

func TestNewAddVehicleCommand_EmptyLicensePlate(t *testing.T) {
	// Act
	_, err := commands.NewAddVehicleCommand("Toyota", "Camry", "", 45.00, vehicle.Car)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrLicensePlateIsRequired)
}

func TestNewAddVehicleCommand_NegativeDailyRate(t *testing.T) {
	testCases := []struct {
		name      string
		dailyRate float64
	}{
		{
			name:      "slightly negative rate",
			dailyRate: -0.01,
		},
		{
			name:      "negative rate",
			dailyRate: -45.00,
		},
		{
			name:      "very negative rate",
			dailyRate: -10000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			_, err := commands.NewAddVehicleCommand("Toyota", "Camry", "ABC-123", tc.dailyRate, vehicle.Car)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, commands.ErrDailyRateIsInvalid)
		})
	}
}

func TestNewAddVehicleCommand_InvalidVehicleType(t *testing.T) {
	// Act
	_, err := commands.NewAddVehicleCommand("Toyota", "Camry", "ABC-123", 45.00, vehicle.Unknown)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type is invalid")
}

func TestNewAddVehicleCommand_MultipleCombinedErrors(t *testing.T) {
	// Act
	_, err := commands.NewAddVehicleCommand("", "", "", -1, vehicle.Unknown)

	// Assert
	require.Error(t, err)
	// Should contain every validation failure
	assert.Contains(t, err.Error(), "make is required")
	assert.Contains(t, err.Error(), "model is required")
	assert.Contains(t, err.Error(), "licensePlate is required")
	assert.Contains(t, err.Error(), "dailyRate must not be negative")
	assert.Contains(t, err.Error(), "type is invalid")
}

func TestAddVehicleCommand_Validate_Success(t *testing.T) {
	// Arrange
	cmd, err := commands.NewAddVehicleCommand("Toyota", "Camry", "ABC-123", 45.00, vehicle.Car)
	require.NoError(t, err)

	// Act
	err = cmd.Validate()

	// Assert
	assert.NoError(t, err)
}

func TestAddVehicleCommand_Validate_ZeroValue(t *testing.T) {
	// Arrange - zero value command (not constructed via constructor)
	var cmd commands.AddVehicleCommand

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAddVehicleCommandIsNotConstructed)
	assert.Equal(t,
		"AddVehicleCommand must be created via NewAddVehicleCommand constructor",
		commands.ErrAddVehicleCommandIsNotConstructed.Error(),
	)
}

// Benchmark test to ensure performance is acceptable.
func BenchmarkNewAddVehicleCommand(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, benchErr := commands.NewAddVehicleCommand("Toyota", "Camry", "ABC-123", 45.00, vehicle.Car)
		if benchErr != nil {
			b.Fatal(benchErr)
		}
	}
}
