package queries

import (
	"errors"
	"time"

	"rental/internal/pkg/guard"
)

var (
	ErrListOverdueRentalsQueryIsNotConstructed = errors.New(
		"ListOverdueRentalsQuery must be created via NewListOverdueRentalsQuery constructor",
	)

	ErrAsOfIsRequired = errors.New("asOf is required")
)

// ListOverdueRentalsQuery retrieves rental agreements that are still active
// past their agreed end date, evaluated against a reference moment.
// The moment is a parameter rather than time.Now() so callers and tests
// control the clock.
type ListOverdueRentalsQuery struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewListOverdueRentalsQuery creates a query to list overdue rentals.
// Validates that the reference moment is set.
func NewListOverdueRentalsQuery(asOf time.Time) (ListOverdueRentalsQuery, error) {
	query := ListOverdueRentalsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setAsOf(asOf); err != nil {
		return ListOverdueRentalsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOverdueRentalsQueryIsNotConstructed if validation fails.
func (q ListOverdueRentalsQuery) Validate() error {
	return q.guard.Validate(ErrListOverdueRentalsQueryIsNotConstructed)
}

// AsOf returns the moment overdue status is evaluated against.
func (q ListOverdueRentalsQuery) AsOf() time.Time {
	return q.asOf
}

func (q *ListOverdueRentalsQuery) setAsOf(asOf time.Time) error {
	if asOf.IsZero() {
		return ErrAsOfIsRequired
	}

	q.asOf = asOf
	return nil
}
