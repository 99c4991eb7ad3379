package queries

import (
	"context"

	"rental/internal/adapters/out/inmem"
)

// ListCustomersQueryHandler retrieves all customers from the store.
type ListCustomersQueryHandler struct {
	store *inmem.Store
}

// NewListCustomersQueryHandler creates a handler for customer listing queries.
// Requires the in-memory store for snapshot reads.
func NewListCustomersQueryHandler(store *inmem.Store) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{store: store}
}

// Handle executes the query to retrieve all customers.
// Returns customer read models in insertion order.
func (h ListCustomersQueryHandler) Handle(_ context.Context, query ListCustomersQuery) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers, err := h.store.Customers()
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, CustomerResponse{
			ID:        c.ID(),
			FirstName: c.FirstName(),
			LastName:  c.LastName(),
			Email:     c.Email(),
			Phone:     c.Phone(),
		})
	}

	return responses, nil
}
