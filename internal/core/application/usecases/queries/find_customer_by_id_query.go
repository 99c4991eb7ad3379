package queries

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrFindCustomerByIDQueryIsNotConstructed = errors.New(
	"FindCustomerByIDQuery must be created via NewFindCustomerByIDQuery constructor",
)

// FindCustomerByIDQuery retrieves a single customer by identifier.
// Like every lookup in this system, a miss is reported as a typed not-found
// error rather than an absent value.
//
// Example:
//
//	query, err := NewFindCustomerByIDQuery(customerID)
//	if err != nil {
//	    return fmt.Errorf("invalid customer lookup: %w", err)
//	}
//
//	handler := NewFindCustomerByIDQueryHandler(store)
//	found, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return fmt.Errorf("customer %s is not registered", customerID)
//	}
type FindCustomerByIDQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewFindCustomerByIDQuery creates a query to look up one customer.
// Validates that the identifier is properly constructed.
func NewFindCustomerByIDQuery(customerID kernel.ID) (FindCustomerByIDQuery, error) {
	query := FindCustomerByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCustomerID(customerID); err != nil {
		return FindCustomerByIDQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrFindCustomerByIDQueryIsNotConstructed if validation fails.
func (q FindCustomerByIDQuery) Validate() error {
	return q.guard.Validate(ErrFindCustomerByIDQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer to look up.
func (q FindCustomerByIDQuery) CustomerID() kernel.ID {
	return q.customerID
}

func (q *FindCustomerByIDQuery) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}
