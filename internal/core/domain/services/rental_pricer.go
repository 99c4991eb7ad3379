package services

import (
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"
)

// RentalPricer is a domain service responsible for calculating the total cost
// of renting a vehicle for a given period.
//
// Key responsibilities:
//   - Validating the vehicle and period before pricing
//   - Computing the total cost from whole rental days and the vehicle's daily rate
//
// Business rules:
//   - Cost is the number of whole days in the period times the vehicle's daily rate
//   - Partial days are not billed (the period counts whole days only)
//   - A zero-day period prices to zero
//
// Example usage:
//
//	pricer := NewRentalPricer()
//	period, _ := kernel.NewPeriod(start, end)
//
//	cost, err := pricer.Calculate(vehicle, period)
//	if err != nil {
//	    // Handle pricing failure
//	    return
//	}
//	// cost holds the total price for the whole period
type RentalPricer struct{}

// NewRentalPricer creates a new RentalPricer instance.
//
// Returns:
//   - RentalPricer: A new instance ready for pricing operations
func NewRentalPricer() RentalPricer {
	return RentalPricer{}
}

// Calculate computes the total cost of renting the given vehicle for the given period.
//
// Parameters:
//   - v: The vehicle to price (must be valid)
//   - period: The rental date range (must be valid)
//
// Returns:
//   - float64: Total cost, period days times the vehicle's daily rate
//   - error: Validation error if the vehicle or period is invalid
//
// The result is never negative: periods reject negative day spans at
// construction and vehicles reject negative daily rates.
func (p RentalPricer) Calculate(v *vehicle.Vehicle, period kernel.Period) (float64, error) {
	if err := v.Validate(); err != nil {
		return 0, err
	}

	if err := period.Validate(); err != nil {
		return 0, err
	}

	return float64(period.Days()) * v.DailyRate(), nil
}
