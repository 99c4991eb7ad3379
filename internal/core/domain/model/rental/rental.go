package rental

import (
	"errors"
	"fmt"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

var (
	// ErrRentalIsNotConstructed is returned when a Rental instance was not created through
	// the NewRental factory method. This ensures all rentals are properly validated.
	ErrRentalIsNotConstructed = errors.New("Rental must be created via NewRental constructor")
)

// Rental represents a vehicle rental agreement in the system. It is the aggregate root
// that manages the rental lifecycle from creation through return.
//
// Rental follows these invariants:
//   - Must have a valid unique identifier
//   - Must reference a vehicle and a customer by valid identifiers
//   - Must cover a valid rental period
//   - Total cost must not be negative
//   - Status transitions follow defined business rules
//   - Can only be created through NewRental constructor
//
// The Rental struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Rental struct {
	// id is the unique identifier for the rental
	id kernel.ID

	// vehicleID references the rented vehicle
	vehicleID kernel.ID

	// customerID references the renting customer
	customerID kernel.ID

	// period is the agreed rental date range
	period kernel.Period

	// totalCost is the price for the whole period (must not be negative)
	totalCost float64

	// status represents the current state in the rental lifecycle
	status Status

	// isConstructed ensures the rental was created via NewRental
	isConstructed bool
}

// NewRental creates a new Rental instance with validation. This is the only way to create
// a valid Rental, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the rental
//   - vehicleID: Identifier of the rented vehicle
//   - customerID: Identifier of the renting customer
//   - period: Rental date range
//   - totalCost: Price for the whole period (must not be negative)
//
// Returns:
//   - *Rental: The created rental if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	rentalID, _ := kernel.NewID(1)
//	period, _ := kernel.NewPeriod(start, end)
//	rental, err := NewRental(rentalID, vehicleID, customerID, period, 180.00)
//	if err != nil {
//	    // Handle validation error
//	}
//
// The constructor validates all inputs and ensures the rental is created
// with Active status.
func NewRental(
	id kernel.ID,
	vehicleID kernel.ID,
	customerID kernel.ID,
	period kernel.Period,
	totalCost float64,
) (*Rental, error) {
	rental := &Rental{
		status:        Active,
		isConstructed: true,
	}

	if err := errors.Join(
		rental.setID(id),
		rental.setVehicleID(vehicleID),
		rental.setCustomerID(customerID),
		rental.setPeriod(period),
		rental.setTotalCost(totalCost),
	); err != nil {
		return nil, err
	}

	return rental, nil
}

// RestoreRental reconstructs a Rental aggregate from a previously captured state.
// Unlike NewRental which creates fresh rentals that are always Active,
// this constructor restores a rental together with its lifecycle status.
//
// Parameters:
//   - id: Unique identifier for the rental
//   - vehicleID: Identifier of the rented vehicle
//   - customerID: Identifier of the renting customer
//   - period: Rental date range
//   - totalCost: Price for the whole period
//   - status: Lifecycle status at capture time (must be valid)
//
// Returns:
//   - *Rental: Restored rental aggregate
//   - error: Validation error if any parameter is invalid
func RestoreRental(
	id kernel.ID,
	vehicleID kernel.ID,
	customerID kernel.ID,
	period kernel.Period,
	totalCost float64,
	status Status,
) (*Rental, error) {
	rental := &Rental{
		isConstructed: true,
	}

	if err := errors.Join(
		rental.setID(id),
		rental.setVehicleID(vehicleID),
		rental.setCustomerID(customerID),
		rental.setPeriod(period),
		rental.setTotalCost(totalCost),
		rental.setStatus(status),
	); err != nil {
		return nil, err
	}

	return rental, nil
}

// Validate ensures the Rental instance was properly constructed through NewRental.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the rental is valid
//   - ErrRentalIsNotConstructed if the rental was not created via NewRental
func (r *Rental) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRentalIsNotConstructed
	}

	return nil
}

// IsEqual compares two rentals by their unique identifiers.
// Rentals are considered equal if they have the same ID.
//
// Parameters:
//   - other: The rental to compare with
//
// Returns:
//   - true if both rentals have the same ID
//   - false if other is nil or IDs differ
func (r *Rental) IsEqual(other *Rental) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rental's unique identifier.
func (r *Rental) ID() kernel.ID {
	return r.id
}

// VehicleID returns the identifier of the rented vehicle.
func (r *Rental) VehicleID() kernel.ID {
	return r.vehicleID
}

// CustomerID returns the identifier of the renting customer.
func (r *Rental) CustomerID() kernel.ID {
	return r.customerID
}

// Period returns the agreed rental date range.
func (r *Rental) Period() kernel.Period {
	return r.period
}

// TotalCost returns the price for the whole rental period.
func (r *Rental) TotalCost() float64 {
	return r.totalCost
}

// Status returns the current status of the rental.
func (r *Rental) Status() Status {
	return r.status
}

// IsActive reports whether the vehicle is still out with the customer.
func (r *Rental) IsActive() bool {
	return r.status == Active
}

// Return marks the rental as returned.
//
// This method enforces the following business rules:
//   - The rental must be in Active or Returned status
//   - Returning an already returned rental is a no-op, not an error
//
// Returns:
//   - nil on successful return
//   - error if the status transition is not allowed
//
// Example:
//
//	err := rental.Return()
//	if err != nil {
//	    // Rental status was invalid
//	}
//
// After a successful return, the rental's status becomes Returned,
// which is the final state in the rental lifecycle.
func (r *Rental) Return() error {
	newStatus, err := r.status.Return()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// IsOverdue reports whether the rental is still active past its agreed end date.
//
// Parameters:
//   - now: The moment to evaluate against, usually time.Now()
//
// Returns:
//   - (true, nil) if the rental is Active and its period ended before now
//   - (false, nil) if the rental is Returned or still within its period
//   - (false, error) if the rental's period was not properly constructed
//
// Example:
//
//	overdue, err := rental.IsOverdue(time.Now())
//	if err != nil {
//	    // Handle invalid rental state
//	}
//	if overdue {
//	    fmt.Println("Vehicle was not brought back in time")
//	}
func (r *Rental) IsOverdue(now time.Time) (bool, error) {
	if r.status != Active {
		return false, nil
	}

	return r.period.EndsBefore(now)
}

// setID validates and sets the rental's unique identifier.
// This is a private method used only during construction.
func (r *Rental) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// setVehicleID validates and sets the rented vehicle's identifier.
// This is a private method used only during construction.
func (r *Rental) setVehicleID(vehicleID kernel.ID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	r.vehicleID = vehicleID
	return nil
}

// setCustomerID validates and sets the renting customer's identifier.
// This is a private method used only during construction.
func (r *Rental) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	r.customerID = customerID
	return nil
}

// setPeriod validates and sets the rental's date range.
// This is a private method used only during construction.
func (r *Rental) setPeriod(period kernel.Period) error {
	if err := period.Validate(); err != nil {
		return err
	}
	r.period = period
	return nil
}

// setTotalCost validates and sets the rental's total cost.
// Total cost must not be negative; a zero cost is allowed for zero-day periods.
// This is a private method used only during construction.
func (r *Rental) setTotalCost(totalCost float64) error {
	if totalCost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalCost is invalid", fmt.Errorf("%v is negative", totalCost))
	}
	r.totalCost = totalCost
	return nil
}

// setStatus validates and sets the rental's lifecycle status.
// This is a private method used only during restoration.
func (r *Rental) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
