// Package rental provides domain entities and business logic for rental agreements
// in the rental system. It implements the Rental aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Rental: The aggregate root that manages rental identity, references, and lifecycle
//   - Status: A state machine that enforces valid rental status transitions
//
// Key business rules:
//   - Rentals must have a valid identifier, vehicle and customer references, and period
//   - Rental status follows a defined workflow: Active -> Returned
//   - Returning an already returned rental is a safe no-op
//   - Total cost is computed for the whole period and must not be negative
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package rental
