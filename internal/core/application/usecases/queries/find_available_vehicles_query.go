// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"rental/internal/pkg/guard"
)

var ErrFindAvailableVehiclesQueryIsNotConstructed = errors.New(
	"FindAvailableVehiclesQuery must be created via NewFindAvailableVehiclesQuery constructor",
)

// FindAvailableVehiclesQuery retrieves all vehicles currently open for rental.
// Returns the rentable subset of the fleet in insertion order.
//
// Example:
//
//	query := NewFindAvailableVehiclesQuery()
//	handler := NewFindAvailableVehiclesQueryHandler(store)
//
//	vehicles, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to find available vehicles: %w", err)
//	}
//
//	for _, v := range vehicles {
//	    fmt.Printf("%s %s (%s) at %.2f/day\n", v.Make, v.Model, v.LicensePlate, v.DailyRate)
//	}
type FindAvailableVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewFindAvailableVehiclesQuery creates a query to retrieve rentable vehicles.
// This is a parameterless query that fetches every available vehicle.
func NewFindAvailableVehiclesQuery() FindAvailableVehiclesQuery {
	return FindAvailableVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrFindAvailableVehiclesQueryIsNotConstructed if validation fails.
func (q FindAvailableVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrFindAvailableVehiclesQueryIsNotConstructed)
}
