package commands

import (
	"context"

	"rental/internal/core/domain/model/customer"
)

// AddCustomerCommandHandler handles the business logic for customer registration.
// Creates and persists new customer entities with a store-assigned identifier.
//
// Example:
//
//	handler := NewAddCustomerCommandHandler(uowFactory)
//	cmd, _ := NewAddCustomerCommand("Bob", "Smith", "bob@example.com", "555-0102")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("customer registration failed: %w", err)
//	}
type AddCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewAddCustomerCommandHandler creates a handler for customer registration.
// Requires a CustomerUoWFactory for transactional persistence operations.
func NewAddCustomerCommandHandler(uowFactory CustomerUoWFactory) AddCustomerCommandHandler {
	return AddCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command.
// Assigns the next free identifier, creates the customer entity, and persists
// it within a session. Automatically rolls back on any error to prevent
// partial data.
func (h *AddCustomerCommandHandler) Handle(ctx context.Context, cmd AddCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	customerID, err := customerRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	customerEntity, err := customer.NewCustomer(
		customerID,
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Email(),
		cmd.Phone(),
	)
	if err != nil {
		return nil, err
	}

	if err = customerRepo.Add(ctx, customerEntity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return customerEntity, nil
}
