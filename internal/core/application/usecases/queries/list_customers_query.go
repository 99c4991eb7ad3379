package queries

import (
	"errors"

	"rental/internal/pkg/guard"
)

var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

// ListCustomersQuery retrieves all registered customers.
// Returns customer identities and contact details in insertion order.
type ListCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewListCustomersQuery creates a query to retrieve all customers.
func NewListCustomersQuery() ListCustomersQuery {
	return ListCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListCustomersQueryIsNotConstructed if validation fails.
func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}
