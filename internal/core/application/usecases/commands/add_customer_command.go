package commands

import (
	"errors"

	"rental/internal/pkg/guard"
)

var (
	ErrAddCustomerCommandIsNotConstructed = errors.New(
		"AddCustomerCommand must be created via NewAddCustomerCommand constructor",
	)
	ErrFirstNameIsRequired = errors.New("firstName is required")
	ErrLastNameIsRequired  = errors.New("lastName is required")
	ErrEmailIsRequired     = errors.New("email is required")
	ErrPhoneIsRequired     = errors.New("phone is required")
)

// AddCustomerCommand represents a request to register a new customer.
// Encapsulates the customer's name and contact details; the identifier is
// assigned by the storage layer when the command is handled.
//
// Example:
//
//	cmd, err := NewAddCustomerCommand("Alice", "Johnson", "alice@example.com", "555-0101")
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//
//	handler := NewAddCustomerCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to add customer: %w", err)
//	}
//	fmt.Printf("Added customer with ID: %s", created.ID())
type AddCustomerCommand struct { //nolint:recvcheck //using for validation
	firstName string
	lastName  string
	email     string
	phone     string

	guard guard.ConstructorGuard
}

// NewAddCustomerCommand creates a command to register a new customer.
// Validates that all fields are present. Contact fields only need to be
// non-empty; no format checks are applied.
func NewAddCustomerCommand(firstName, lastName, email, phone string) (AddCustomerCommand, error) {
	command := AddCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setFirstName(firstName),
		command.setLastName(lastName),
		command.setEmail(email),
		command.setPhone(phone),
	); err != nil {
		return AddCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddCustomerCommandIsNotConstructed if validation fails.
func (c AddCustomerCommand) Validate() error {
	return c.guard.Validate(ErrAddCustomerCommandIsNotConstructed)
}

// FirstName returns the customer's first name from the command.
func (c AddCustomerCommand) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name from the command.
func (c AddCustomerCommand) LastName() string {
	return c.lastName
}

// Email returns the customer's email address from the command.
func (c AddCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's phone number from the command.
func (c AddCustomerCommand) Phone() string {
	return c.phone
}

func (c *AddCustomerCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *AddCustomerCommand) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}

func (c *AddCustomerCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *AddCustomerCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}
