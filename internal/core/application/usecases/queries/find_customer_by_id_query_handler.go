package queries

import (
	"context"

	"rental/internal/adapters/out/inmem"
	"rental/internal/pkg/errs"
)

// FindCustomerByIDQueryHandler processes customer lookup queries.
type FindCustomerByIDQueryHandler struct {
	store *inmem.Store
}

// NewFindCustomerByIDQueryHandler creates a handler reading from the given store.
func NewFindCustomerByIDQueryHandler(store *inmem.Store) FindCustomerByIDQueryHandler {
	return FindCustomerByIDQueryHandler{store: store}
}

// Handle returns the customer matching the queried identifier.
// Returns an object-not-found error when no customer has that ID.
func (h FindCustomerByIDQueryHandler) Handle(_ context.Context, query FindCustomerByIDQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	customers, err := h.store.Customers()
	if err != nil {
		return CustomerResponse{}, err
	}

	for _, c := range customers {
		if c.ID().IsEqual(query.CustomerID()) {
			return CustomerResponse{
				ID:        c.ID(),
				FirstName: c.FirstName(),
				LastName:  c.LastName(),
				Email:     c.Email(),
				Phone:     c.Phone(),
			}, nil
		}
	}

	return CustomerResponse{}, errs.NewObjectNotFoundError("customer", query.CustomerID().String())
}
