// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the port operations system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CompatibilityChecker: A domain service that validates a ship against a dock
//     before a booking is created or confirmed
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
