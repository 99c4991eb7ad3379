package inmem

import (
	"sync"

	"rental/internal/core/domain/model/customer"
	"rental/internal/core/domain/model/rental"
	"rental/internal/core/domain/model/vehicle"
)

// Store is the in-memory storage engine for the rental system. It holds all
// aggregates in insertion-ordered collections guarded by a single mutex.
//
// The mutex doubles as the session lock: StoreUnitOfWork.Begin acquires it and
// Commit/Rollback release it, so a command handler holds the store exclusively
// for its whole read-check-then-write sequence. Repositories therefore access
// the collections without additional locking and must only be used within an
// active session.
//
// The snapshot readers (Vehicles, Customers, Rentals) lock internally and
// return rehydrated copies, so read models never observe a session in flight
// and never share mutable state with command handlers.
type Store struct {
	mu sync.Mutex

	vehicles  []*vehicle.Vehicle
	customers []*customer.Customer
	rentals   []*rental.Rental
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Vehicles returns a snapshot of all stored vehicles in insertion order.
// Each element is a rehydrated copy, safe to read concurrently with sessions.
func (s *Store) Vehicles() ([]*vehicle.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicles := make([]*vehicle.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		clone, err := vehicle.RestoreVehicle(
			v.ID(),
			v.Make(),
			v.Model(),
			v.LicensePlate(),
			v.DailyRate(),
			v.Type(),
			v.IsAvailable(),
		)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, clone)
	}

	return vehicles, nil
}

// Customers returns a snapshot of all stored customers in insertion order.
// Each element is a rehydrated copy, safe to read concurrently with sessions.
func (s *Store) Customers() ([]*customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers := make([]*customer.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		clone, err := customer.NewCustomer(
			c.ID(),
			c.FirstName(),
			c.LastName(),
			c.Email(),
			c.Phone(),
		)
		if err != nil {
			return nil, err
		}
		customers = append(customers, clone)
	}

	return customers, nil
}

// Rentals returns a snapshot of all stored rentals in insertion order.
// Each element is a rehydrated copy, safe to read concurrently with sessions.
func (s *Store) Rentals() ([]*rental.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rentals := make([]*rental.Rental, 0, len(s.rentals))
	for _, r := range s.rentals {
		clone, err := rental.RestoreRental(
			r.ID(),
			r.VehicleID(),
			r.CustomerID(),
			r.Period(),
			r.TotalCost(),
			r.Status(),
		)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, clone)
	}

	return rentals, nil
}
