// Package ports defines repository interfaces for the rental domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"rental/internal/core/domain/model/customer"
	"rental/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
// Provides methods for storing and retrieving customer entities.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	// The customer must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	// Returns a typed not-found error when no customer carries the identifier.
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)

	// NextID returns the identifier to assign to the next customer.
	// Identifiers are sequential: one greater than the highest stored identifier,
	// starting at 1 for an empty collection.
	NextID(ctx context.Context) (kernel.ID, error)
}
