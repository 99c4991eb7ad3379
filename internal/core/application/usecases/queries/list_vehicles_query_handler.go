package queries

import (
	"context"

	"rental/internal/adapters/out/inmem"
)

// ListVehiclesQueryHandler retrieves the complete fleet from the store.
type ListVehiclesQueryHandler struct {
	store *inmem.Store
}

// NewListVehiclesQueryHandler creates a handler for fleet listing queries.
// Requires the in-memory store for snapshot reads.
func NewListVehiclesQueryHandler(store *inmem.Store) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{store: store}
}

// Handle executes the query to retrieve all vehicles.
// Returns vehicle read models in insertion order with availability flags.
func (h ListVehiclesQueryHandler) Handle(_ context.Context, query ListVehiclesQuery) ([]VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles, err := h.store.Vehicles()
	if err != nil {
		return nil, err
	}

	responses := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		responses = append(responses, VehicleResponse{
			ID:           v.ID(),
			Make:         v.Make(),
			Model:        v.Model(),
			LicensePlate: v.LicensePlate(),
			DailyRate:    v.DailyRate(),
			Type:         v.Type(),
			Available:    v.IsAvailable(),
		})
	}

	return responses, nil
}
