package customer

import (
	"errors"
	"fmt"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrFirstNameIsRequired is returned when attempting to create a customer without a first name.
	ErrFirstNameIsRequired = errs.NewValueIsRequiredError("firstName")
	// ErrLastNameIsRequired is returned when attempting to create a customer without a last name.
	ErrLastNameIsRequired = errs.NewValueIsRequiredError("lastName")
	// ErrEmailIsRequired is returned when attempting to create a customer without an email address.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPhoneIsRequired is returned when attempting to create a customer without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer represents a person who rents vehicles.
// It is an aggregate root that manages customer identity and contact details.
// All attributes are immutable after construction.
//
// Business rules:
//   - Customer must have a valid ID and non-empty first and last names
//   - Email and phone are required contact fields; their format is not enforced
//
// Example usage:
//
//	id, _ := kernel.NewID(1)
//	c, err := NewCustomer(id, "Alice", "Johnson", "alice@example.com", "555-0101")
//	if err != nil {
//	    // Handle construction error
//	}
type Customer struct {
	// id uniquely identifies the customer
	id kernel.ID
	// firstName is the customer's given name
	firstName string
	// lastName is the customer's family name
	lastName string
	// email is the customer's contact email address
	email string
	// phone is the customer's contact phone number
	phone string
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with the specified parameters.
// This is the only way to create a valid Customer instance.
//
// Parameters:
//   - id: Unique identifier for the customer (assigned by the storage layer)
//   - firstName: Given name (must be non-empty)
//   - lastName: Family name (must be non-empty)
//   - email: Contact email address (must be non-empty)
//   - phone: Contact phone number (must be non-empty)
//
// Returns:
//   - *Customer: A fully initialized customer
//   - error: Validation error if any parameter is invalid (aggregated errors for multiple issues)
//
// Example:
//
//	id, _ := kernel.NewID(1)
//	c, err := NewCustomer(id, "Alice", "Johnson", "alice@example.com", "555-0101")
//	if err != nil {
//	    log.Fatal("Failed to create customer:", err)
//	}
//	fmt.Printf("Created customer: %s", c.FullName())
func NewCustomer(
	id kernel.ID,
	firstName string,
	lastName string,
	email string,
	phone string,
) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setFirstName(firstName),
		customer.setLastName(lastName),
		customer.setEmail(email),
		customer.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// IsEqual compares two customers for equality based on their unique identifiers.
// Two customers are considered equal if they have the same ID, regardless of other attributes.
//
// Parameters:
//   - other: The customer to compare with (can be nil)
//
// Returns:
//   - bool: true if customers have the same ID, false otherwise
func (c *Customer) IsEqual(other *Customer) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Customer was properly constructed using the NewCustomer constructor.
// The zero value of Customer is invalid and will fail this validation.
//
// Returns:
//   - error: ErrCustomerIsNotConstructed if improperly initialized, nil if valid
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the unique identifier of the customer.
// The ID is immutable and set during customer construction.
func (c *Customer) ID() kernel.ID {
	return c.id
}

// FirstName returns the customer's given name.
func (c *Customer) FirstName() string {
	return c.firstName
}

// LastName returns the customer's family name.
func (c *Customer) LastName() string {
	return c.lastName
}

// Email returns the customer's contact email address.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's contact phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// FullName returns the customer's given and family names joined with a space.
// This is a convenience for display and logging.
//
// Example:
//
//	c, _ := NewCustomer(id, "Alice", "Johnson", "alice@example.com", "555-0101")
//	fmt.Println(c.FullName()) // Output: "Alice Johnson"
func (c *Customer) FullName() string {
	return fmt.Sprintf("%s %s", c.firstName, c.lastName)
}

// setID sets the customer's unique identifier with validation.
// This is an internal setter used during customer construction.
func (c *Customer) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setFirstName sets the customer's given name with validation.
// This is an internal setter used during customer construction.
func (c *Customer) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

// setLastName sets the customer's family name with validation.
// This is an internal setter used during customer construction.
func (c *Customer) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}

// setEmail sets the customer's contact email address with validation.
// Only presence is enforced; the address format is not checked.
// This is an internal setter used during customer construction.
func (c *Customer) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

// setPhone sets the customer's contact phone number with validation.
// Only presence is enforced; the number format is not checked.
// This is an internal setter used during customer construction.
func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}
