package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrRentVehicleCommandIsNotConstructed = errors.New(
	"RentVehicleCommand must be created via NewRentVehicleCommand constructor",
)

// RentVehicleCommand represents a request to rent a vehicle to a customer
// for a given period. Periods with an end before their start never reach
// the handler: kernel.Period construction rejects them.
//
// Example:
//
//	period, err := kernel.NewPeriod(start, end)
//	if err != nil {
//	    return fmt.Errorf("invalid rental period: %w", err)
//	}
//	cmd, err := NewRentVehicleCommand(vehicleID, customerID, period)
//	if err != nil {
//	    return fmt.Errorf("invalid rental data: %w", err)
//	}
//
//	handler := NewRentVehicleCommandHandler(uowFactory)
//	rentalEntity, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("Vehicle or customer does not exist")
//	case errors.Is(err, errs.ErrInvalidState):
//	    log.Println("Vehicle is already rented out")
//	case err != nil:
//	    log.Printf("Rental failed: %v", err)
//	default:
//	    log.Printf("Rental %s created, total cost %.2f", rentalEntity.ID(), rentalEntity.TotalCost())
//	}
type RentVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID  kernel.ID
	customerID kernel.ID
	period     kernel.Period

	guard guard.ConstructorGuard
}

// NewRentVehicleCommand creates a command to rent a vehicle.
// Validates that both identifiers and the rental period are properly constructed.
func NewRentVehicleCommand(vehicleID, customerID kernel.ID, period kernel.Period) (RentVehicleCommand, error) {
	command := RentVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleID(vehicleID),
		command.setCustomerID(customerID),
		command.setPeriod(period),
	); err != nil {
		return RentVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRentVehicleCommandIsNotConstructed if validation fails.
func (c RentVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRentVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to rent.
func (c RentVehicleCommand) VehicleID() kernel.ID {
	return c.vehicleID
}

// CustomerID returns the identifier of the renting customer.
func (c RentVehicleCommand) CustomerID() kernel.ID {
	return c.customerID
}

// Period returns the requested rental period.
func (c RentVehicleCommand) Period() kernel.Period {
	return c.period
}

func (c *RentVehicleCommand) setVehicleID(vehicleID kernel.ID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *RentVehicleCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RentVehicleCommand) setPeriod(period kernel.Period) error {
	if err := period.Validate(); err != nil {
		return err
	}

	c.period = period
	return nil
}
