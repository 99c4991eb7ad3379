package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new storage session.
	Begin(ctx context.Context) error

	// Commit commits the current session.
	// Returns error if no active session or commit fails.
	Commit(ctx context.Context) error

	// Rollback ends the current session without keeping uncommitted work.
	// Returns error if no active session or rollback fails.
	Rollback(ctx context.Context) error

	// VehicleRepository returns a VehicleRepository instance bound to the current session.
	// Repository will use the session started by Begin().
	VehicleRepository() VehicleRepository

	// CustomerRepository returns a CustomerRepository instance bound to the current session.
	// Repository will use the session started by Begin().
	CustomerRepository() CustomerRepository

	// RentalRepository returns a RentalRepository instance bound to the current session.
	// Repository will use the session started by Begin().
	RentalRepository() RentalRepository
}
