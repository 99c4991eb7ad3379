// Package vehicle provides domain entities and business logic for fleet management
// in the rental system. It implements the Vehicle aggregate root with availability
// tracking and rental pricing attributes.
//
// The package includes:
//   - Vehicle: The aggregate root that manages vehicle identity, pricing, and availability
//   - Type: An enumeration of supported vehicle categories
//
// Key business rules:
//   - Vehicles must have a valid identifier, make, model, and license plate
//   - The daily rental rate must not be negative
//   - Availability changes only through the Rent and Return domain operations
//   - A vehicle that is not available cannot be rented again until returned
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package vehicle
