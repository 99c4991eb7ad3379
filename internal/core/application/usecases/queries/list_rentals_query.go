package queries

import (
	"errors"

	"rental/internal/pkg/guard"
)

var ErrListRentalsQueryIsNotConstructed = errors.New(
	"ListRentalsQuery must be created via NewListRentalsQuery constructor",
)

// ListRentalsQuery retrieves every rental agreement, active and returned alike.
type ListRentalsQuery struct {
	guard guard.ConstructorGuard
}

// NewListRentalsQuery creates a query to list all rental agreements.
func NewListRentalsQuery() ListRentalsQuery {
	return ListRentalsQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListRentalsQueryIsNotConstructed if validation fails.
func (q ListRentalsQuery) Validate() error {
	return q.guard.Validate(ErrListRentalsQueryIsNotConstructed)
}
