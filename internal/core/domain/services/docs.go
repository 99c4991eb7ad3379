// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the rental system. It implements business
// calculations that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RentalPricer: A domain service for calculating the total cost of a rental
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
