package kernel

import (
	"strconv"

	"rental/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not properly initialized through the constructor.
// This error is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is a value object that represents a sequential entity identifier.
// Identifiers are positive integers assigned by the storage layer: the next
// identifier for a collection is always one greater than the largest existing
// one, starting at 1 for an empty collection. ID wraps the raw integer to
// provide domain-specific behavior and ensure that invalid identifiers
// (zero or negative) never reach the domain model.
//
// The zero value of ID is invalid and must be constructed using NewID.
//
// ID is immutable and thread-safe, making it suitable for concurrent use.
//
// Example usage:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    // handle error
//	}
//
//	// Use as entity identifier
//	type Vehicle struct {
//	    ID kernel.ID
//	    // other fields...
//	}
type ID struct {
	value int64
}

// NewID creates an ID from a raw integer value.
// The value must be positive; identifiers are assigned sequentially starting at 1.
// Returns an error if the value is zero or negative.
//
// Example:
//
//	id, err := kernel.NewID(7)
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle ID: %w", err)
//	}
func NewID(value int64) (ID, error) {
	if value < 1 {
		return ID{}, errs.NewValueIsInvalidError("id")
	}
	return ID{value: value}, nil
}

// Value returns the raw integer value of the ID.
// For a zero value ID, this returns 0, which is never a valid identifier.
//
// Example:
//
//	id, _ := kernel.NewID(7)
//	fmt.Println(id.Value()) // 7
func (i ID) Value() int64 {
	return i.value
}

// String returns the decimal string representation of the ID.
// For a zero value ID, this returns "0".
//
// This method is commonly used for:
//   - Logging and debugging
//   - Serialization to JSON or other text formats
//   - Display in user interfaces
//
// Example:
//
//	id, _ := kernel.NewID(7)
//	fmt.Printf("Rental created with ID: %s\n", id.String())
func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// IsEqual compares two IDs for equality.
// Returns true if both IDs represent the same value, false otherwise.
//
// Example:
//
//	id1, _ := kernel.NewID(1)
//	id2, _ := kernel.NewID(2)
//	id3 := id1
//
//	fmt.Println(id1.IsEqual(id2)) // false (different IDs)
//	fmt.Println(id1.IsEqual(id3)) // true (same ID)
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate checks if the ID is properly constructed.
// Returns ErrIDIsNotConstructed if the ID is a zero value.
// A valid ID is any ID that was created through NewID.
//
// This method is useful for validating domain objects during construction
// or when receiving data from external sources.
//
// Example:
//
//	func NewRental(id kernel.ID) (*Rental, error) {
//	    if err := id.Validate(); err != nil {
//	        return nil, fmt.Errorf("invalid rental ID: %w", err)
//	    }
//	    return &Rental{ID: id}, nil
//	}
func (i ID) Validate() error {
	if i.value < 1 {
		return ErrIDIsNotConstructed
	}
	return nil
}
