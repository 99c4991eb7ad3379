package inmem

import (
	"context"
	"fmt"

	"rental/internal/core/domain/model/customer"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

// StoreCustomerRepository implements CustomerRepository on the in-memory store.
// Must only be used within a session started by StoreUnitOfWork.Begin.
type StoreCustomerRepository struct {
	store *Store
}

// NewStoreCustomerRepository creates a new store-backed customer repository.
func NewStoreCustomerRepository(store *Store) *StoreCustomerRepository {
	return &StoreCustomerRepository{store: store}
}

// Add saves a new customer to the store.
func (r *StoreCustomerRepository) Add(_ context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for _, c := range r.store.customers {
		if c.IsEqual(aggregate) {
			return errs.NewInvalidStateError("customer", fmt.Sprintf("already stored under ID %s", aggregate.ID()))
		}
	}

	r.store.customers = append(r.store.customers, aggregate)
	return nil
}

// Get retrieves a customer by ID.
func (r *StoreCustomerRepository) Get(_ context.Context, id kernel.ID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, c := range r.store.customers {
		if c.ID().IsEqual(id) {
			return c, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("customer", id.String())
}

// NextID returns the next sequential customer identifier.
func (r *StoreCustomerRepository) NextID(_ context.Context) (kernel.ID, error) {
	var maxID int64
	for _, c := range r.store.customers {
		if c.ID().Value() > maxID {
			maxID = c.ID().Value()
		}
	}

	return kernel.NewID(maxID + 1)
}
