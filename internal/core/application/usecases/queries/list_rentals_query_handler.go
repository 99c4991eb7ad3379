package queries

import (
	"context"

	"rental/internal/adapters/out/inmem"
)

// ListRentalsQueryHandler processes rental listing queries.
type ListRentalsQueryHandler struct {
	store *inmem.Store
}

// NewListRentalsQueryHandler creates a handler reading from the given store.
func NewListRentalsQueryHandler(store *inmem.Store) ListRentalsQueryHandler {
	return ListRentalsQueryHandler{store: store}
}

// Handle returns every rental agreement in insertion order.
// Returns an empty slice when no rentals have been created.
func (h ListRentalsQueryHandler) Handle(_ context.Context, query ListRentalsQuery) ([]RentalResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rentals, err := h.store.Rentals()
	if err != nil {
		return nil, err
	}

	results := make([]RentalResponse, 0, len(rentals))
	for _, r := range rentals {
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
