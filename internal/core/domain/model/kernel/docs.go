// Package kernel provides core domain primitives and utilities for the rental system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - ID: A value object for sequential entity identifiers with validation and comparison capabilities
//   - Period: A value object representing a rental date range with whole-day arithmetic
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
//
// The package follows Domain-Driven Design best practices, providing rich domain
// behavior and encapsulation of implementation details.
package kernel
