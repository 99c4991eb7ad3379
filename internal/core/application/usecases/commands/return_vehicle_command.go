package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrReturnVehicleCommandIsNotConstructed = errors.New(
	"ReturnVehicleCommand must be created via NewReturnVehicleCommand constructor",
)

// ReturnVehicleCommand represents a request to close out a rental and make
// its vehicle available again. Returning an already returned rental is a
// no-op, so callers may safely retry.
//
// Example:
//
//	cmd, err := NewReturnVehicleCommand(rentalID)
//	if err != nil {
//	    return fmt.Errorf("invalid return request: %w", err)
//	}
//
//	handler := NewReturnVehicleCommandHandler(uowFactory)
//	if _, err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("return failed: %w", err)
//	}
type ReturnVehicleCommand struct { //nolint:recvcheck //using for validation
	rentalID kernel.ID

	guard guard.ConstructorGuard
}

// NewReturnVehicleCommand creates a command to return a rented vehicle.
// Validates that the rental identifier is properly constructed.
func NewReturnVehicleCommand(rentalID kernel.ID) (ReturnVehicleCommand, error) {
	command := ReturnVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRentalID(rentalID); err != nil {
		return ReturnVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReturnVehicleCommandIsNotConstructed if validation fails.
func (c ReturnVehicleCommand) Validate() error {
	return c.guard.Validate(ErrReturnVehicleCommandIsNotConstructed)
}

// RentalID returns the identifier of the rental to close out.
func (c ReturnVehicleCommand) RentalID() kernel.ID {
	return c.rentalID
}

func (c *ReturnVehicleCommand) setRentalID(rentalID kernel.ID) error {
	if err := rentalID.Validate(); err != nil {
		return err
	}

	c.rentalID = rentalID
	return nil
}
