package services_test

import (
	"testing"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func mustNewVehicle(t *testing.T, dailyRate float64) *vehicle.Vehicle {
	t.Helper()
	id, err := kernel.NewID(1)
	require.NoError(t, err)
	v, err := vehicle.NewVehicle(id, "Toyota", "Camry", "ABC-123", dailyRate, vehicle.Car)
	require.NoError(t, err)
	return v
}

func mustNewPeriod(t *testing.T, start, end time.Time) kernel.Period {
	t.Helper()
	period, err := kernel.NewPeriod(start, end)
	require.NoError(t, err)
	return period
}

func TestRentalPricer_Calculate(t *testing.T) {
	t.Run("should price a multi-day rental", func(t *testing.T) {
		v := mustNewVehicle(t, 45.00)
		period := mustNewPeriod(t, date(2025, 3, 10), date(2025, 3, 14)) // 4 days
		pricer := services.NewRentalPricer()

		cost, err := pricer.Calculate(v, period)

		require.NoError(t, err)
		assert.InDelta(t, 180.00, cost, 0.0001)
	})

	t.Run("should price a single-day rental", func(t *testing.T) {
		v := mustNewVehicle(t, 45.00)
		period := mustNewPeriod(t, date(2025, 3, 10), date(2025, 3, 11))
		pricer := services.NewRentalPricer()

		cost, err := pricer.Calculate(v, period)

		require.NoError(t, err)
		assert.InDelta(t, 45.00, cost, 0.0001)
	})

	t.Run("should price a zero-day rental to zero", func(t *testing.T) {
		v := mustNewVehicle(t, 45.00)
		period := mustNewPeriod(t, date(2025, 3, 10), date(2025, 3, 10))
		pricer := services.NewRentalPricer()

		cost, err := pricer.Calculate(v, period)

		require.NoError(t, err)
		assert.Zero(t, cost)
	})

	t.Run("should not bill partial days", func(t *testing.T) {
		v := mustNewVehicle(t, 45.00)
		start := date(2025, 3, 10)
		end := date(2025, 3, 12).Add(6 * time.Hour) // 2 days and 6 hours
		period := mustNewPeriod(t, start, end)
		pricer := services.NewRentalPricer()

		cost, err := pricer.Calculate(v, period)

		require.NoError(t, err)
		assert.InDelta(t, 90.00, cost, 0.0001)
	})

	t.Run("should price with a zero daily rate", func(t *testing.T) {
		v := mustNewVehicle(t, 0)
		period := mustNewPeriod(t, date(2025, 3, 10), date(2025, 3, 14))
		pricer := services.NewRentalPricer()

		cost, err := pricer.Calculate(v, period)

		require.NoError(t, err)
		assert.Zero(t, cost)
	})

	t.Run("should fail with nil vehicle", func(t *testing.T) {
		period := mustNewPeriod(t, date(2025, 3, 10), date(2025, 3, 14))
		pricer := services.NewRentalPricer()

		cost, err := pricer.Calculate(nil, period)

		require.Error(t, err)
		assert.Zero(t, cost)
		assert.Equal(t, vehicle.ErrVehicleIsNotConstructed, err)
	})

	t.Run("should fail with invalid vehicle", func(t *testing.T) {
		var v vehicle.Vehicle
		period := mustNewPeriod(t, date(2025, 3, 10), date(2025, 3, 14))
		pricer := services.NewRentalPricer()

		cost, err := pricer.Calculate(&v, period)

		require.Error(t, err)
		assert.Zero(t, cost)
		assert.Equal(t, vehicle.ErrVehicleIsNotConstructed, err)
	})

	t.Run("should fail with invalid period", func(t *testing.T) {
		v := mustNewVehicle(t, 45.00)
		var period kernel.Period
		pricer := services.NewRentalPricer()

		cost, err := pricer.Calculate(v, period)

		require.Error(t, err)
		assert.Zero(t, cost)
		assert.Equal(t, kernel.ErrPeriodIsNotConstructed, err)
	})
}
