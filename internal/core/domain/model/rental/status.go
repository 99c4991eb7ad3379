package rental

import (
	"fmt"

	"rental/internal/pkg/errs"
)

// Status represents the lifecycle state of a rental.
// It implements a state machine with defined transitions to ensure
// rentals follow the correct business workflow.
//
// State transitions:
//
//	Active ──> Returned ──┐
//	               ^──────┘
//	      (repeated returns allowed)
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Active is the initial status when a rental is first created.
	// The rented vehicle is out with the customer.
	Active

	// Returned indicates the vehicle has been brought back.
	// This is a final state; repeated returns stay in this state.
	Returned
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Active:   "Active",
		Returned: "Returned",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:   "Active",
		Returned: "Returned",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Active, Returned.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., API payloads) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Active" or "Returned" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
//
// Example:
//
//	fmt.Println(rental.Status()) // Output: "Active"
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Return transitions the status to Returned.
//
// Valid transitions:
//   - Active -> Returned (vehicle brought back)
//   - Returned -> Returned (repeated return, no-op)
//
// Invalid transitions:
//   - Unknown -> Returned (invalid initial state)
//
// Returns:
//   - (Returned, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// Returning an already returned rental is deliberately allowed so the
// operation can be retried safely.
//
// Example:
//
//	newStatus, err := currentStatus.Return()
//	if err != nil {
//	    // Handle invalid transition
//	}
func (s Status) Return() (Status, error) {
	if s != Active && s != Returned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to return", s.String()),
		)
	}

	return Returned, nil
}
