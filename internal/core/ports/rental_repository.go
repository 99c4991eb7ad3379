package ports

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"
)

// RentalRepository defines the persistence contract for rental aggregates.
// Provides methods for storing, retrieving, and updating rental entities
// through their lifecycle.
type RentalRepository interface {
	// Add persists a new rental aggregate to storage.
	// The rental must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *rental.Rental) error

	// Update persists changes to an existing rental aggregate.
	// The rental must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *rental.Rental) error

	// Get retrieves a rental aggregate by its unique identifier.
	// Returns the complete rental with its current lifecycle status.
	// Returns a typed not-found error when no rental carries the identifier.
	Get(ctx context.Context, id kernel.ID) (*rental.Rental, error)

	// NextID returns the identifier to assign to the next rental.
	// Identifiers are sequential: one greater than the highest stored identifier,
	// starting at 1 for an empty collection.
	NextID(ctx context.Context) (kernel.ID, error)
}
