package ports

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
// Provides methods for storing, retrieving, and updating vehicle entities
// with their availability state.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	// The vehicle must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	// The vehicle must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	// Returns the complete vehicle with its current availability state.
	// Returns a typed not-found error when no vehicle carries the identifier.
	Get(ctx context.Context, id kernel.ID) (*vehicle.Vehicle, error)

	// NextID returns the identifier to assign to the next vehicle.
	// Identifiers are sequential: one greater than the highest stored identifier,
	// starting at 1 for an empty collection.
	NextID(ctx context.Context) (kernel.ID, error)
}
