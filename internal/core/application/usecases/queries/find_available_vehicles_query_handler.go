package queries

import (
	"context"

	"rental/internal/adapters/out/inmem"
)

// FindAvailableVehiclesQueryHandler retrieves rentable vehicles from the store.
// Filters out rented vehicles to provide the bookable fleet view.
//
// Example:
//
//	handler := NewFindAvailableVehiclesQueryHandler(store)
//	query := NewFindAvailableVehiclesQuery()
//
//	available, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to find available vehicles: %v", err)
//	    return err
//	}
//
//	fmt.Printf("%d vehicles ready to rent\n", len(available))
type FindAvailableVehiclesQueryHandler struct {
	store *inmem.Store
}

// NewFindAvailableVehiclesQueryHandler creates a handler for availability queries.
// Requires the in-memory store for snapshot reads.
func NewFindAvailableVehiclesQueryHandler(store *inmem.Store) FindAvailableVehiclesQueryHandler {
	return FindAvailableVehiclesQueryHandler{store: store}
}

// Handle executes the query to retrieve all available vehicles.
// Returns vehicle read models in insertion order, skipping rented vehicles.
func (h FindAvailableVehiclesQueryHandler) Handle(
	_ context.Context,
	query FindAvailableVehiclesQuery,
) ([]VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles, err := h.store.Vehicles()
	if err != nil {
		return nil, err
	}

	responses := make([]VehicleResponse, 0)
	for _, v := range vehicles {
		if !v.IsAvailable() {
			continue
		}

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
