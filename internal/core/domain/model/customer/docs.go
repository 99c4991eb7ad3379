// Package customer provides domain entities for customer management in the
// rental system. It implements the Customer aggregate root.
//
// The package includes:
//   - Customer: The aggregate root that manages customer identity and contact details
//
// Key business rules:
//   - Customers must have a valid identifier and non-empty names
//   - Contact fields (email, phone) are required but their format is not enforced
//   - Customer attributes are immutable after creation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package customer
