package commands

import (
	"context"

	"rental/internal/core/domain/model/rental"
	"rental/internal/core/domain/services"
)

// RentVehicleCommandHandler orchestrates the rental workflow.
// Looks up the vehicle and customer, checks availability, prices the period,
// and creates the rental. All checks pass before any state is modified, so a
// rejected request leaves the fleet untouched.
//
// Example:
//
//	handler := NewRentVehicleCommandHandler(uowFactory)
//	cmd, _ := NewRentVehicleCommand(vehicleID, customerID, period)
//	rentalEntity, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("rental failed: %w", err)
//	}
//	fmt.Printf("Rental %s costs %.2f", rentalEntity.ID(), rentalEntity.TotalCost())
type RentVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewRentVehicleCommandHandler creates a handler for rental operations.
// Requires a UoWFactory for coordinating updates across the vehicle and
// rental aggregates.
func NewRentVehicleCommandHandler(uowFactory UoWFactory) RentVehicleCommandHandler {
	return RentVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rental command.
// Retrieves the vehicle and customer (typed not-found errors on misses),
// marks the vehicle rented (invalid-state error when it is already out),
// computes the total cost with RentalPricer, and persists the new active
// rental together with the updated vehicle in a single session.
// Returns the created rental on success.
func (h RentVehicleCommandHandler) Handle(ctx context.Context, cmd RentVehicleCommand) (*rental.Rental, error) {
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

	vehicleRepo := uow.VehicleRepository()
	customerRepo := uow.CustomerRepository()
	rentalRepo := uow.RentalRepository()

	vehicleEntity, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return nil, err
	}

	customerEntity, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if err = vehicleEntity.Rent(); err != nil {
		return nil, err
	}

	totalCost, err := services.NewRentalPricer().Calculate(vehicleEntity, cmd.Period())
	if err != nil {
		return nil, err
	}

	rentalID, err := rentalRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	rentalEntity, err := rental.NewRental(rentalID, vehicleEntity.ID(), customerEntity.ID(), cmd.Period(), totalCost)
	if err != nil {
		return nil, err
	}

	if err = vehicleRepo.Update(ctx, vehicleEntity); err != nil {
		return nil, err
	}

	if err = rentalRepo.Add(ctx, rentalEntity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return rentalEntity, nil
}
