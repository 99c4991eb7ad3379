package queries

import (
	"errors"

	"rental/internal/pkg/guard"
)

var ErrListVehiclesQueryIsNotConstructed = errors.New(
	"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
)

// ListVehiclesQuery retrieves the whole fleet, rented vehicles included.
// Returns every vehicle with its availability flag for monitoring and display.
//
// Example:
//
//	query := NewListVehiclesQuery()
//	handler := NewListVehiclesQueryHandler(store)
//
//	fleet, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list vehicles: %w", err)
//	}
//
//	fmt.Printf("Fleet size: %d\n", len(fleet))
type ListVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewListVehiclesQuery creates a query to retrieve the complete fleet.
func NewListVehiclesQuery() ListVehiclesQuery {
	return ListVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListVehiclesQueryIsNotConstructed if validation fails.
func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}
