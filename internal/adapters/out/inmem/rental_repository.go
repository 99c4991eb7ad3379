package inmem

import (
	"context"
	"fmt"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"
	"rental/internal/pkg/errs"
)

// StoreRentalRepository implements RentalRepository on the in-memory store.
// Must only be used within a session started by StoreUnitOfWork.Begin.
type StoreRentalRepository struct {
	store *Store
}

// NewStoreRentalRepository creates a new store-backed rental repository.
func NewStoreRentalRepository(store *Store) *StoreRentalRepository {
	return &StoreRentalRepository{store: store}
}

// Add saves a new rental to the store.
func (r *StoreRentalRepository) Add(_ context.Context, aggregate *rental.Rental) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for _, rr := range r.store.rentals {
		if rr.IsEqual(aggregate) {
			return errs.NewInvalidStateError("rental", fmt.Sprintf("already stored under ID %s", aggregate.ID()))
		}
	}

	r.store.rentals = append(r.store.rentals, aggregate)
	return nil
}

// Update saves an existing rental to the store.
func (r *StoreRentalRepository) Update(_ context.Context, aggregate *rental.Rental) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for i, rr := range r.store.rentals {
		if rr.IsEqual(aggregate) {
			r.store.rentals[i] = aggregate
			return nil
		}
	}

	return errs.NewObjectNotFoundError("rental", aggregate.ID().String())
}

// Get retrieves a rental by ID.
func (r *StoreRentalRepository) Get(_ context.Context, id kernel.ID) (*rental.Rental, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, rr := range r.store.rentals {
		if rr.ID().IsEqual(id) {
			return rr, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("rental", id.String())
}

// NextID returns the next sequential rental identifier.
func (r *StoreRentalRepository) NextID(_ context.Context) (kernel.ID, error) {
	var maxID int64
	for _, rr := range r.store.rentals {
		if rr.ID().Value() > maxID {
			maxID = rr.ID().Value()
		}
	}

	return kernel.NewID(maxID + 1)
}
