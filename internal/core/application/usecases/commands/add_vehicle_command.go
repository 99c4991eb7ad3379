package commands

import (
	"errors"

	"rental/internal/core/domain/model/vehicle"
	"rental/internal/pkg/guard"
)

var (
	ErrAddVehicleCommandIsNotConstructed = errors.New(
		"AddVehicleCommand must be created via NewAddVehicleCommand constructor",
	)
	ErrMakeIsRequired         = errors.New("make is required")
	ErrModelIsRequired        = errors.New("model is required")
	ErrLicensePlateIsRequired = errors.New("licensePlate is required")
	ErrDailyRateIsInvalid     = errors.New("dailyRate must not be negative")
)

// AddVehicleCommand represents a request to register a new vehicle in the fleet.
// Encapsulates all data needed to create a vehicle entity; the identifier is
// assigned by the storage layer when the command is handled.
//
// Example:
//
//	cmd, err := NewAddVehicleCommand("Toyota", "Camry", "ABC-123", 45.00, vehicle.Car)
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
//
//	handler := NewAddVehicleCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to add vehicle: %w", err)
//	}
//	fmt.Printf("Added vehicle with ID: %s", created.ID())
type AddVehicleCommand struct { //nolint:recvcheck //using for validation
	make         string
	model        string
	licensePlate string
	dailyRate    float64
	vehicleType  vehicle.Type

	guard guard.ConstructorGuard
}

// NewAddVehicleCommand creates a command to register a new fleet vehicle.
// Validates that make, model, and license plate are not empty, the daily rate
// is not negative, and the vehicle type is valid.
func NewAddVehicleCommand(
	make string,
	model string,
	licensePlate string,
	dailyRate float64,
	vehicleType vehicle.Type,
) (AddVehicleCommand, error) {
	command := AddVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMake(make),
		command.setModel(model),
		command.setLicensePlate(licensePlate),
		command.setDailyRate(dailyRate),
		command.setVehicleType(vehicleType),
	); err != nil {
		return AddVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddVehicleCommandIsNotConstructed if validation fails.
func (c AddVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAddVehicleCommandIsNotConstructed)
}

// Make returns the manufacturer name from the command.
func (c AddVehicleCommand) Make() string {
	return c.make
}

// Model returns the model name from the command.
func (c AddVehicleCommand) Model() string {
	return c.model
}

// LicensePlate returns the registration plate from the command.
func (c AddVehicleCommand) LicensePlate() string {
	return c.licensePlate
}

// DailyRate returns the daily rental rate from the command.
func (c AddVehicleCommand) DailyRate() float64 {
	return c.dailyRate
}

// VehicleType returns the fleet category from the command.
func (c AddVehicleCommand) VehicleType() vehicle.Type {
	return c.vehicleType
}

func (c *AddVehicleCommand) setMake(make string) error {
	if make == "" {
		return ErrMakeIsRequired
	}

	c.make = make
	return nil
}

func (c *AddVehicleCommand) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}

	c.model = model
	return nil
}

func (c *AddVehicleCommand) setLicensePlate(licensePlate string) error {
	if licensePlate == "" {
		return ErrLicensePlateIsRequired
	}

	c.licensePlate = licensePlate
	return nil
}

func (c *AddVehicleCommand) setDailyRate(dailyRate float64) error {
	if dailyRate < 0 {
		return ErrDailyRateIsInvalid
	}

	c.dailyRate = dailyRate
	return nil
}

func (c *AddVehicleCommand) setVehicleType(vehicleType vehicle.Type) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	c.vehicleType = vehicleType
	return nil
}
