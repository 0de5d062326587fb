// Package kernel provides core domain primitives for the port-operations
// booking system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - TimeWindow: A value object representing a booking interval with the
//     closed-interval overlap predicate shared by the domain and the storage
//     exclusion constraint
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
