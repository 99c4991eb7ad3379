package queries

import (
	"context"

	"rental/internal/adapters/out/inmem"
	"rental/internal/pkg/errs"
)

// GetRentalDetailsQueryHandler processes rental detail queries.
type GetRentalDetailsQueryHandler struct {
	store *inmem.Store
}

// NewGetRentalDetailsQueryHandler creates a handler reading from the given store.
func NewGetRentalDetailsQueryHandler(store *inmem.Store) GetRentalDetailsQueryHandler {
	return GetRentalDetailsQueryHandler{store: store}
}

// Handle returns the rental agreement matching the queried identifier.
// Returns an object-not-found error when no rental has that ID.
func (h GetRentalDetailsQueryHandler) Handle(_ context.Context, query GetRentalDetailsQuery) (RentalResponse, error) {
	if err := query.Validate(); err != nil {
		return RentalResponse{}, err
	}

	rentals, err := h.store.Rentals()
	if err != nil {
		return RentalResponse{}, err
	}

	for _, r := range rentals {
		if r.ID().IsEqual(query.RentalID()) {
			return RentalResponse{
				ID:         r.ID(),
				VehicleID:  r.VehicleID(),
				CustomerID: r.CustomerID(),
				Period:     r.Period(),
				TotalCost:  r.TotalCost(),
				Status:     r.Status(),
			}, nil
		}
	}

	return RentalResponse{}, errs.NewObjectNotFoundError("rental", query.RentalID().String())
}
