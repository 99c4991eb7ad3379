package kernel

import (
	"errors"
	"fmt"
	"time"

	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

// hoursPerDay is used to convert a period duration into whole rental days.
const hoursPerDay = 24

// ErrPeriodIsNotConstructed is returned when attempting to use an improperly initialized Period.
// Periods must be created using the NewPeriod constructor to ensure validity.
var ErrPeriodIsNotConstructed = errs.NewValueIsRequiredError(
	"period must be created via NewPeriod constructor")

// Period represents a rental date range with a validated start and end date.
// Period is an immutable value object that guarantees the end date never
// precedes the start date. A period covering a single date (start equal to
// end) is valid and spans zero whole days.
//
// Dates are treated as calendar dates: callers are expected to pass midnight
// timestamps, and Days truncates any partial day remainder.
//
// The zero value of Period is invalid and will fail validation - use the constructor to create instances.
//
// Example:
//
//	period, err := kernel.NewPeriod(start, end)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Period: %s", period) // Output: Period(2025-03-10..2025-03-14)
type Period struct { //nolint:recvcheck //using for validation
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

// NewPeriod creates a new Period with the specified start and end dates.
// Both dates must be non-zero, and the end date must not precede the start date.
//
// Parameters:
//   - start: The first day of the period (must be non-zero)
//   - end: The last day of the period (must be non-zero and not before start)
//
// Returns:
//   - Period: A valid period instance
//   - error: Validation error if a date is missing or the range is negative
//
// Example:
//
//	period, err := NewPeriod(pickUp, dropOff)
//	if err != nil {
//	    log.Fatal("Invalid rental dates:", err)
//	}
//	// period is now ready to use
func NewPeriod(start time.Time, end time.Time) (Period, error) {
	period := Period{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(period.setStart(start), period.setEnd(end)); err != nil {
		return Period{}, err
	}

	if period.end.Before(period.start) {
		return Period{}, errs.NewValueIsInvalidError("endDate")
	}

	return period, nil
}

// Validate checks if the Period was properly constructed using the constructor.
// The zero value of Period is invalid and will fail this validation.
// This method is primarily used internally by other methods to ensure Period integrity.
//
// Returns:
//   - error: ErrPeriodIsNotConstructed if the period was not properly initialized, nil otherwise
func (p Period) Validate() error {
	return p.guard.Validate(ErrPeriodIsNotConstructed)
}

// Start returns the first day of the period.
//
// Example:
//
//	period, _ := NewPeriod(pickUp, dropOff)
//	from := period.Start()
func (p Period) Start() time.Time {
	return p.start
}

// End returns the last day of the period.
//
// Example:
//
//	period, _ := NewPeriod(pickUp, dropOff)
//	to := period.End()
func (p Period) End() time.Time {
	return p.end
}

// Days returns the number of whole days covered by the period.
// The count is the truncated difference between the end and start dates,
// so a period from March 10 to March 14 spans 4 days and a period whose
// start and end coincide spans 0 days.
//
// Returns:
//   - int: The number of whole days between start and end
//
// Example:
//
//	period, _ := NewPeriod(mar10, mar14)
//	days := period.Days() // days will be 4
func (p Period) Days() int {
	return int(p.end.Sub(p.start) / (hoursPerDay * time.Hour))
}

// EndsBefore reports whether the period is already over at the given moment.
// A period ends before a moment when its end date is strictly earlier.
// The period must be properly constructed (pass validation) for the check to succeed.
//
// Parameters:
//   - moment: The point in time to compare the period against
//
// Returns:
//   - bool: true if the period's end date precedes the moment
//   - error: Validation error if the period is improperly constructed
func (p Period) EndsBefore(moment time.Time) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}

	return p.end.Before(moment), nil
}

// String returns a human-readable string representation of the Period.
// The format is "Period(start..end)" with dates rendered as YYYY-MM-DD,
// which is useful for debugging and logging.
// This method implements the fmt.Stringer interface.
//
// Returns:
//   - string: String representation in the format "Period(2025-03-10..2025-03-14)"
func (p Period) String() string {
	return fmt.Sprintf("Period(%s..%s)", p.start.Format(time.DateOnly), p.end.Format(time.DateOnly))
}

// IsEqual compares two periods for equality.
// Two periods are considered equal if they cover the same start and end instants.
// Both periods must be properly constructed (pass validation) for the comparison to succeed.
//
// Parameters:
//   - other: The Period to compare with
//
// Returns:
//   - bool: true if periods are equal, false otherwise
//   - error: Validation error if either period is improperly constructed
func (p Period) IsEqual(other Period) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.start.Equal(other.start) && p.end.Equal(other.end), nil
}

// setStart sets the start date with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *Period) setStart(start time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("startDate")
	}

	p.start = start
	return nil
}

// setEnd sets the end date with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *Period) setEnd(end time.Time) error {
	if end.IsZero() {
		return errs.NewValueIsRequiredError("endDate")
	}

	p.end = end
	return nil
}
