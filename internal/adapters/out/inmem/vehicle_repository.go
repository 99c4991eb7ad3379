package inmem

import (
	"context"
	"fmt"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/pkg/errs"
)

// StoreVehicleRepository implements VehicleRepository on the in-memory store.
// Must only be used within a session started by StoreUnitOfWork.Begin.
type StoreVehicleRepository struct {
	store *Store
}

// NewStoreVehicleRepository creates a new store-backed vehicle repository.
func NewStoreVehicleRepository(store *Store) *StoreVehicleRepository {
	return &StoreVehicleRepository{store: store}
}

// Add saves a new vehicle to the store.
func (r *StoreVehicleRepository) Add(_ context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for _, v := range r.store.vehicles {
		if v.IsEqual(aggregate) {
			return errs.NewInvalidStateError("vehicle", fmt.Sprintf("already stored under ID %s", aggregate.ID()))
		}
	}

	r.store.vehicles = append(r.store.vehicles, aggregate)
	return nil
}

// Update saves an existing vehicle to the store.
func (r *StoreVehicleRepository) Update(_ context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for i, v := range r.store.vehicles {
		if v.IsEqual(aggregate) {
			r.store.vehicles[i] = aggregate
			return nil
		}
	}

	return errs.NewObjectNotFoundError("vehicle", aggregate.ID().String())
}

// Get retrieves a vehicle by ID.
func (r *StoreVehicleRepository) Get(_ context.Context, id kernel.ID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, v := range r.store.vehicles {
		if v.ID().IsEqual(id) {
			return v, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("vehicle", id.String())
}

// NextID returns the next sequential vehicle identifier.
func (r *StoreVehicleRepository) NextID(_ context.Context) (kernel.ID, error) {
	var maxID int64
	for _, v := range r.store.vehicles {
		if v.ID().Value() > maxID {
			maxID = v.ID().Value()
		}
	}

	return kernel.NewID(maxID + 1)
}
