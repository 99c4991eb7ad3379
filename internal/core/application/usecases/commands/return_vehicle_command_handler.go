package commands

import (
	"context"
	"errors"
	"fmt"

	"rental/internal/core/domain/model/rental"
	"rental/internal/pkg/errs"
)

// ReturnVehicleCommandHandler orchestrates the return workflow.
// Closes out an active rental and makes its vehicle available again, updating
// both aggregates in a single session.
//
// Example:
//
//	handler := NewReturnVehicleCommandHandler(uowFactory)
//	cmd, _ := NewReturnVehicleCommand(rentalID)
//	returned, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such rental")
//	case err != nil:
//	    log.Printf("Return failed: %v", err)
//	default:
//	    log.Printf("Rental %s is now %s", returned.ID(), returned.Status())
//	}
type ReturnVehicleCommandHandler struct {
	uowFactory RentalUoWFactory
}

// NewReturnVehicleCommandHandler creates a handler for return operations.
// Requires a RentalUoWFactory for coordinating updates across the rental and
// vehicle aggregates.
func NewReturnVehicleCommandHandler(uowFactory RentalUoWFactory) ReturnVehicleCommandHandler {
	return ReturnVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return command.
// Retrieves the rental (typed not-found error on a miss). A rental that is
// already returned is left untouched and handed back as is, which makes the
// operation idempotent. Otherwise the rental is marked returned and its
// vehicle made available again; a rental referencing a vehicle that is no
// longer stored fails with an invalid-state error.
func (h ReturnVehicleCommandHandler) Handle(ctx context.Context, cmd ReturnVehicleCommand) (*rental.Rental, error) {
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

	rentalRepo := uow.RentalRepository()
	vehicleRepo := uow.VehicleRepository()

	rentalEntity, err := rentalRepo.Get(ctx, cmd.RentalID())
	if err != nil {
		return nil, err
	}

	if !rentalEntity.IsActive() {
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		return rentalEntity, nil
	}

	vehicleEntity, err := vehicleRepo.Get(ctx, rentalEntity.VehicleID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewInvalidStateError("rental",
			fmt.Sprintf("referencing missing vehicle %s", rentalEntity.VehicleID()))
	}
	if err != nil {
		return nil, err
	}

	if err = rentalEntity.Return(); err != nil {
		return nil, err
	}
	vehicleEntity.Return()

	if err = rentalRepo.Update(ctx, rentalEntity); err != nil {
		return nil, err
	}

	if err = vehicleRepo.Update(ctx, vehicleEntity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return rentalEntity, nil
}
