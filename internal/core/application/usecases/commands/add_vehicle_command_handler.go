package commands

import (
	"context"

	"rental/internal/core/domain/model/vehicle"
)

// AddVehicleCommandHandler handles the business logic for fleet registration.
// Creates and persists new vehicle entities with a store-assigned identifier.
//
// Example:
//
//	handler := NewAddVehicleCommandHandler(uowFactory)
//	cmd, _ := NewAddVehicleCommand("Ford", "Transit", "VAN-042", 65.00, vehicle.Van)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("vehicle registration failed: %w", err)
//	}
type AddVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewAddVehicleCommandHandler creates a handler for fleet registration.
// Requires a VehicleUoWFactory for transactional persistence operations.
func NewAddVehicleCommandHandler(uowFactory VehicleUoWFactory) AddVehicleCommandHandler {
	return AddVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle registration command.
// Assigns the next free identifier, creates the vehicle entity, and persists
// it within a session. The created vehicle starts out available for rental.
// Automatically rolls back on any error to prevent partial data.
func (h *AddVehicleCommandHandler) Handle(ctx context.Context, cmd AddVehicleCommand) (*vehicle.Vehicle, error) {
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
	vehicleID, err := vehicleRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	vehicleEntity, err := vehicle.NewVehicle(
		vehicleID,
		cmd.Make(),
		cmd.Model(),
		cmd.LicensePlate(),
		cmd.DailyRate(),
		cmd.VehicleType(),
	)
	if err != nil {
		return nil, err
	}

	if err = vehicleRepo.Add(ctx, vehicleEntity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return vehicleEntity, nil
}
