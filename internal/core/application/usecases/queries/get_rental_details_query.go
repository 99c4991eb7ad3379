package queries

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrGetRentalDetailsQueryIsNotConstructed = errors.New(
	"GetRentalDetailsQuery must be created via NewGetRentalDetailsQuery constructor",
)

// GetRentalDetailsQuery retrieves the full details of a single rental
// agreement: the vehicle and customer it links, the booked period, the
// total cost and the current status.
type GetRentalDetailsQuery struct { //nolint:recvcheck //using for validation
	rentalID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetRentalDetailsQuery creates a query to look up one rental agreement.
// Validates that the identifier is properly constructed.
func NewGetRentalDetailsQuery(rentalID kernel.ID) (GetRentalDetailsQuery, error) {
	query := GetRentalDetailsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRentalID(rentalID); err != nil {
		return GetRentalDetailsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRentalDetailsQueryIsNotConstructed if validation fails.
func (q GetRentalDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetRentalDetailsQueryIsNotConstructed)
}

// RentalID returns the identifier of the rental to look up.
func (q GetRentalDetailsQuery) RentalID() kernel.ID {
	return q.rentalID
}

func (q *GetRentalDetailsQuery) setRentalID(rentalID kernel.ID) error {
	if err := rentalID.Validate(); err != nil {
		return err
	}

	q.rentalID = rentalID
	return nil
}
