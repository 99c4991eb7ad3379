package queries

import (
	"context"

	"rental/internal/adapters/out/inmem"
)

// ListOverdueRentalsQueryHandler processes overdue rental queries.
type ListOverdueRentalsQueryHandler struct {
	store *inmem.Store
}

// NewListOverdueRentalsQueryHandler creates a handler reading from the given store.
func NewListOverdueRentalsQueryHandler(store *inmem.Store) ListOverdueRentalsQueryHandler {
	return ListOverdueRentalsQueryHandler{store: store}
}

// Handle returns every rental that is still active past its end date,
// evaluated against the query's reference moment.
// Returns an empty slice when nothing is overdue.
func (h ListOverdueRentalsQueryHandler) Handle(_ context.Context, query ListOverdueRentalsQuery) ([]RentalResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rentals, err := h.store.Rentals()
	if err != nil {
		return nil, err
	}

	results := make([]RentalResponse, 0)
	for _, r := range rentals {
		overdue, err := r.IsOverdue(query.AsOf())
		if err != nil {
			return nil, err
		}
		if !overdue {
			continue
		}

		results = append(results, RentalResponse{
			ID:         r.ID(),
			VehicleID:  r.VehicleID(),
			CustomerID: r.CustomerID(),
			Period:     r.Period(),
			TotalCost:  r.TotalCost(),
			Status:     r.Status(),
		})
	}

	return results, nil
}
