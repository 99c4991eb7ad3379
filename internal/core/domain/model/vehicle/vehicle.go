package vehicle

import (
	"errors"
	"fmt"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrMakeIsRequired is returned when attempting to create a vehicle without a make.
	ErrMakeIsRequired = errs.NewValueIsRequiredError("make")
	// ErrModelIsRequired is returned when attempting to create a vehicle without a model.
	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
	// ErrLicensePlateIsRequired is returned when attempting to create a vehicle without a license plate.
	ErrLicensePlateIsRequired = errs.NewValueIsRequiredError("licensePlate")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrVehicleIsNotAvailable is returned when attempting to rent a vehicle that is already rented out.
	ErrVehicleIsNotAvailable = errs.NewInvalidStateError("vehicle", "not available")
)

// Vehicle represents a rentable vehicle in the fleet.
// It is an aggregate root that manages vehicle identity, rental pricing,
// and availability state.
//
// Key responsibilities:
//   - Managing vehicle identity (ID, make, model, license plate)
//   - Tracking availability through the rent and return lifecycle
//   - Carrying the daily rate used for rental cost calculation
//
// Business rules:
//   - Vehicle must have a valid ID, non-empty make, model, and license plate
//   - Daily rate must not be negative
//   - A vehicle can only be rented while it is available
//   - Returning a vehicle always makes it available again, regardless of
//     its current state (the operation is idempotent)
//
// Example usage:
//
//	id, _ := kernel.NewID(1)
//	v, err := NewVehicle(id, "Toyota", "Corolla", "ABC-123", 35.00, Car)
//	if err != nil {
//	    // Handle construction error
//	}
//	// Vehicle is available and ready to rent
type Vehicle struct {
	// id uniquely identifies the vehicle
	id kernel.ID
	// make is the manufacturer name, e.g. "Toyota"
	make string
	// model is the manufacturer model name, e.g. "Corolla"
	model string
	// licensePlate is the registration plate of the vehicle
	licensePlate string
	// dailyRate is the rental price for one whole day
	dailyRate float64
	// vehicleType is the fleet category of the vehicle
	vehicleType Type
	// available reports whether the vehicle can currently be rented
	available bool
	// guard ensures the vehicle was properly constructed
	guard guard.ConstructorGuard
}

// NewVehicle creates a new Vehicle with the specified parameters.
// This is the primary way to add a vehicle to the fleet: the vehicle
// starts out available for rental.
//
// Parameters:
//   - id: Unique identifier for the vehicle (assigned by the storage layer)
//   - make: Manufacturer name (must be non-empty)
//   - model: Model name (must be non-empty)
//   - licensePlate: Registration plate (must be non-empty)
//   - dailyRate: Rental price per whole day (must not be negative)
//   - vehicleType: Fleet category (must be a valid Type)
//
// Returns:
//   - *Vehicle: A fully initialized vehicle ready for rental
//   - error: Validation error if any parameter is invalid (aggregated errors for multiple issues)
//
// Example:
//
//	id, _ := kernel.NewID(1)
//	v, err := NewVehicle(id, "Ford", "Transit", "VAN-042", 65.00, Van)
//	if err != nil {
//	    log.Fatal("Failed to create vehicle:", err)
//	}
//	fmt.Printf("Created vehicle: %s %s", v.Make(), v.Model())
func NewVehicle(
	id kernel.ID,
	make string,
	model string,
	licensePlate string,
	dailyRate float64,
	vehicleType Type,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setMake(make),
		vehicle.setModel(model),
		vehicle.setLicensePlate(licensePlate),
		vehicle.setDailyRate(dailyRate),
		vehicle.setType(vehicleType),
	); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from a previously captured state.
// Unlike NewVehicle which creates fresh vehicles that are always available,
// this constructor restores a vehicle together with its availability flag.
//
// Parameters:
//   - id: Unique identifier for the vehicle
//   - make: Manufacturer name
//   - model: Model name
//   - licensePlate: Registration plate
//   - dailyRate: Rental price per whole day
//   - vehicleType: Fleet category
//   - available: Whether the vehicle is currently available for rental
//
// Returns:
//   - *Vehicle: Restored vehicle aggregate
//   - error: Validation error if any parameter is invalid
func RestoreVehicle(
	id kernel.ID,
	make string,
	model string,
	licensePlate string,
	dailyRate float64,
	vehicleType Type,
	available bool,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setMake(make),
		vehicle.setModel(model),
		vehicle.setLicensePlate(licensePlate),
		vehicle.setDailyRate(dailyRate),
		vehicle.setType(vehicleType),
	); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// IsEqual compares two vehicles for equality based on their unique identifiers.
// Two vehicles are considered equal if they have the same ID, regardless of other attributes.
//
// Parameters:
//   - other: The vehicle to compare with (can be nil)
//
// Returns:
//   - bool: true if vehicles have the same ID, false otherwise
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	if other == nil {
		return false
	}
	return v.id.IsEqual(other.id)
}

// Validate checks if the Vehicle was properly constructed using the NewVehicle constructor.
// The zero value of Vehicle is invalid and will fail this validation.
// This method is used internally to ensure vehicle integrity before operations.
//
// Returns:
//   - error: ErrVehicleIsNotConstructed if improperly initialized, nil if valid
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the unique identifier of the vehicle.
// The ID is immutable and set during vehicle construction.
func (v *Vehicle) ID() kernel.ID {
	return v.id
}

// Make returns the manufacturer name of the vehicle.
// The make is immutable and set during vehicle construction.
func (v *Vehicle) Make() string {
	return v.make
}

// Model returns the model name of the vehicle.
// The model is immutable and set during vehicle construction.
func (v *Vehicle) Model() string {
	return v.model
}

// LicensePlate returns the registration plate of the vehicle.
// The license plate is immutable and set during vehicle construction.
func (v *Vehicle) LicensePlate() string {
	return v.licensePlate
}

// DailyRate returns the rental price for one whole day.
// The daily rate is immutable and set during vehicle construction.
// It is guaranteed to be non-negative for valid vehicles.
func (v *Vehicle) DailyRate() float64 {
	return v.dailyRate
}

// Type returns the fleet category of the vehicle.
// The type is immutable and set during vehicle construction.
func (v *Vehicle) Type() Type {
	return v.vehicleType
}

// IsAvailable reports whether the vehicle can currently be rented.
// Availability changes only through the Rent and Return operations.
func (v *Vehicle) IsAvailable() bool {
	return v.available
}

// Rent marks the vehicle as rented out.
//
// This method enforces the following business rules:
//   - The vehicle must be available
//   - Renting an unavailable vehicle fails without changing state
//
// Returns:
//   - nil on success
//   - ErrVehicleIsNotAvailable if the vehicle is already rented out
//
// Example:
//
//	if err := v.Rent(); err != nil {
//	    // Vehicle is already rented out
//	}
//
// After a successful call, IsAvailable() reports false until Return is called.
func (v *Vehicle) Rent() error {
	if !v.available {
		return ErrVehicleIsNotAvailable
	}

	v.available = false
	return nil
}

// Return marks the vehicle as available again.
//
// The operation is idempotent: returning a vehicle that is already
// available leaves it available and is not an error.
//
// Example:
//
//	v.Return()
//	// IsAvailable() now reports true
func (v *Vehicle) Return() {
	v.available = true
}

// setID sets the vehicle's unique identifier with validation.
// This is an internal setter used during vehicle construction.
func (v *Vehicle) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	v.id = id
	return nil
}

// setMake sets the vehicle's manufacturer name with validation.
// This is an internal setter used during vehicle construction.
func (v *Vehicle) setMake(make string) error {
	if make == "" {
		return ErrMakeIsRequired
	}

	v.make = make
	return nil
}

// setModel sets the vehicle's model name with validation.
// This is an internal setter used during vehicle construction.
func (v *Vehicle) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}

	v.model = model
	return nil
}

// setLicensePlate sets the vehicle's registration plate with validation.
// This is an internal setter used during vehicle construction.
func (v *Vehicle) setLicensePlate(licensePlate string) error {
	if licensePlate == "" {
		return ErrLicensePlateIsRequired
	}

	v.licensePlate = licensePlate
	return nil
}

// setDailyRate sets the vehicle's daily rental rate with validation.
// The rate must not be negative; a zero rate is allowed.
// This is an internal setter used during vehicle construction.
func (v *Vehicle) setDailyRate(dailyRate float64) error {
	if dailyRate < 0 {
		return errs.NewValueIsInvalidErrorWithCause("dailyRate is invalid",
			fmt.Errorf("%v is negative", dailyRate))
	}

	v.dailyRate = dailyRate
	return nil
}

// setType sets the vehicle's fleet category with validation.
// This is an internal setter used during vehicle construction.
func (v *Vehicle) setType(vehicleType Type) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	v.vehicleType = vehicleType
	return nil
}
