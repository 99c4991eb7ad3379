package vehicle

import (
	"fmt"

	"rental/internal/pkg/errs"
)

// Type represents the category of a vehicle in the fleet.
// It is a value object that validates category values coming from
// external sources and provides string representations for display
// and persistence.
//
// Valid categories: Car, Truck, SUV, Motorcycle, Van.
type Type int

const (
	// Unknown represents an invalid or undefined vehicle type.
	// This value (0) helps catch uninitialized Type values.
	Unknown Type = iota

	// Car is a standard passenger car.
	Car

	// Truck is a cargo or pickup truck.
	Truck

	// SUV is a sport utility vehicle.
	SUV

	// Motorcycle is a two-wheeled vehicle.
	Motorcycle

	// Van is a passenger or cargo van.
	Van
)

// getTypeStrings returns a map of Type values to their string representations.
// All types are included for string conversion.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		Unknown:    "Unknown",
		Car:        "Car",
		Truck:      "Truck",
		SUV:        "SUV",
		Motorcycle: "Motorcycle",
		Van:        "Van",
	}
}

// getValidTypeStrings returns a map of only valid Type values.
// Only valid types are included to support validation.
func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Type]string{
		Car:        "Car",
		Truck:      "Truck",
		SUV:        "SUV",
		Motorcycle: "Motorcycle",
		Van:        "Van",
	}
}

// TypeFromString parses a vehicle type from its string representation.
//
// Valid inputs are the exact names returned by String: "Car", "Truck",
// "SUV", "Motorcycle", and "Van".
//
// Returns:
//   - (Type, nil) for a recognized type name
//   - (Unknown, error) if the string does not name a valid type
//
// This function is typically used when parsing vehicle types from
// API requests or configuration.
//
// Example:
//
//	vehicleType, err := vehicle.TypeFromString("SUV")
//	if err != nil {
//	    // handle unknown type
//	}
func TypeFromString(value string) (Type, error) {
	for vehicleType, str := range getValidTypeStrings() {
		if str == value {
			return vehicleType, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("type is invalid",
		fmt.Errorf("%s is not a valid vehicle type", value))
}

// Validate checks if the Type value is valid.
//
// Valid types are: Car, Truck, SUV, Motorcycle, Van.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the type is valid
//   - error with details if the type is invalid
//
// This method is used to ensure Type values from external sources
// (e.g., API requests) are valid before use.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%d is not a valid vehicle type", t))
	}
	return nil
}

// String returns the human-readable name of the vehicle type.
//
// Returns:
//   - "Car", "Truck", "SUV", "Motorcycle", or "Van" for valid types
//   - "Unknown" for invalid type values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Type value, including invalid ones.
//
// Example:
//
//	fmt.Println(vehicle.Type()) // Output: "SUV"
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
