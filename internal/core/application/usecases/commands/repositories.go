// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, session management, and persistence.
package commands

import (
	"context"

	"rental/internal/core/ports"
)

// Unit of Work interfaces provide session management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles store session lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// VehicleRepoFactory provides access to the vehicle repository within a session.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a session.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// RentalRepoFactory provides access to the rental repository within a session.
	RentalRepoFactory interface {
		RentalRepository() ports.RentalRepository
	}

	// VehicleUoW manages sessions for vehicle-only operations.
	// Used when commands only modify vehicle aggregates.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// CustomerUoW manages sessions for customer-only operations.
	// Used when commands only modify customer aggregates.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// RentalUoW manages sessions spanning rental and vehicle aggregates.
	// Used by the return workflow, which flips both the rental status
	// and the vehicle availability.
	RentalUoW interface {
		TxManager
		RentalRepoFactory
		VehicleRepoFactory
	}

	// RentalUoWFactory creates new rental unit of work instances.
	RentalUoWFactory interface {
		Create() RentalUoW
	}

	// UoW manages sessions across all three aggregates.
	// Used for commands that coordinate changes between multiple aggregate types.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   vehicleRepo := uow.VehicleRepository()
	//   rentalRepo := uow.RentalRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		VehicleRepoFactory
		CustomerRepoFactory
		RentalRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
