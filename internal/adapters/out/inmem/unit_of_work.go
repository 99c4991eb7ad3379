// Package inmem provides the in-memory implementation of the Unit of Work pattern
// and the repositories behind it. The store is the single source of truth for the
// rental system; there is no external database.
//
// Key Features:
//   - Session management across multiple repositories
//   - One session lock serializing command workflows end to end
//   - Snapshot readers for the query side, isolated from in-flight sessions
//   - Repository factory pattern bound to the session
//
// Usage Patterns:
//
// Basic Session Management:
//
//	factory := NewStoreUnitOfWorkFactory(store)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	// Perform repository operations
//	if err := uow.VehicleRepository().Add(ctx, vehicle); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Multi-Repository Sessions:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	// All operations within the same session
//	if err := uow.RentalRepository().Add(ctx, rental); err != nil {
//	    return err
//	}
//
//	if err := uow.VehicleRepository().Update(ctx, vehicle); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance represents one session
//   - Multiple goroutines must use separate UnitOfWork instances
//   - Begin blocks until the store is free; keep sessions short
package inmem

import (
	"context"
	"errors"

	"rental/internal/core/ports"
)

// ErrNoActiveSession is returned by Commit and Rollback when the unit of work
// holds no session, including the deferred Rollback after a successful Commit.
var ErrNoActiveSession = errors.New("no active session")

// StoreUnitOfWorkFactory creates UnitOfWork instances bound to an in-memory store.
// Factory ensures each business operation gets a fresh unit of work instance
// with its own session state.
//
// Example:
//
//	store := NewStore()
//	factory := NewStoreUnitOfWorkFactory(store)
//	uow := factory.Create()
type StoreUnitOfWorkFactory struct {
	store *Store
}

// NewStoreUnitOfWorkFactory creates a factory for store-backed unit of work instances.
// The provided store will be used for all created unit of work instances.
func NewStoreUnitOfWorkFactory(store *Store) *StoreUnitOfWorkFactory {
	return &StoreUnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own session state, ensuring proper isolation
// between concurrent operations.
func (f *StoreUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &StoreUnitOfWork{store: f.store}
}

// StoreUnitOfWork coordinates store sessions for business operations.
// Begin acquires the store's session lock and Commit or Rollback releases it,
// making every command workflow atomic with respect to other sessions and to
// the snapshot readers.
//
// There is no undo: repositories only mutate the store after every business
// precondition has passed, so releasing the lock is all Rollback has to do.
//
// Example usage:
//
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return fmt.Errorf("failed to begin session: %w", err)
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	rental, err := uow.RentalRepository().Get(ctx, rentalID)
//	if err != nil {
//	    return err
//	}
//
//	// ... domain work ...
//
//	if err := uow.Commit(ctx); err != nil {
//	    return fmt.Errorf("failed to commit session: %w", err)
//	}
type StoreUnitOfWork struct {
	store  *Store
	active bool
}

// Begin acquires the store's session lock for this unit of work.
// Blocks until any other session has finished. Multiple calls to Begin on the
// same instance are safe and will not acquire the lock twice.
func (uow *StoreUnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.mu.Lock()
	uow.active = true
	return nil
}

// Commit finalizes the session and releases the store's session lock.
// All repository mutations performed within the session are already in place;
// commit makes them visible to the next session and to snapshot readers.
//
// Returns ErrNoActiveSession if no session is active.
func (uow *StoreUnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveSession
	}

	uow.active = false
	uow.store.mu.Unlock()
	return nil
}

// Rollback ends the session and releases the store's session lock.
// After rollback the unit of work cannot be reused.
//
// Returns ErrNoActiveSession if no session is active, which makes the
// deferred Rollback after a successful Commit a harmless no-op.
func (uow *StoreUnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveSession
	}

	uow.active = false
	uow.store.mu.Unlock()
	return nil
}

// VehicleRepository provides access to vehicle persistence operations within the session.
// The returned repository must only be used between Begin and Commit/Rollback.
func (uow *StoreUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return NewStoreVehicleRepository(uow.store)
}

// CustomerRepository provides access to customer persistence operations within the session.
// The returned repository must only be used between Begin and Commit/Rollback.
func (uow *StoreUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return NewStoreCustomerRepository(uow.store)
}

// RentalRepository provides access to rental persistence operations within the session.
// The returned repository must only be used between Begin and Commit/Rollback.
func (uow *StoreUnitOfWork) RentalRepository() ports.RentalRepository {
	return NewStoreRentalRepository(uow.store)
}
