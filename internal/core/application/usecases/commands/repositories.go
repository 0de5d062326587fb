// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"portops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BookingRepoFactory provides access to the booking repository within a transaction.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// ShipRepoFactory provides access to the ship repository within a transaction.
	ShipRepoFactory interface {
		ShipRepository() ports.ShipRepository
	}

	// DockRepoFactory provides access to the dock repository within a transaction.
	DockRepoFactory interface {
		DockRepository() ports.DockRepository
	}

	// CargoTypeRepoFactory provides access to the cargo type repository within a transaction.
	CargoTypeRepoFactory interface {
		CargoTypeRepository() ports.CargoTypeRepository
	}

	// CompanyRepoFactory provides access to the company repository within a transaction.
	CompanyRepoFactory interface {
		CompanyRepository() ports.CompanyRepository
	}

	// BookingUoW manages transactions for booking operations. Booking
	// handlers read ships and docks to run the compatibility check but only
	// the booking aggregate is modified.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   bookingRepo := uow.BookingRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	BookingUoW interface {
		TxManager
		BookingRepoFactory
		ShipRepoFactory
		DockRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// UoW manages transactions across the catalog aggregates (ships, docks,
	// cargo types, companies) and their referential guards against bookings.
	UoW interface {
		TxManager
		BookingRepoFactory
		ShipRepoFactory
		DockRepoFactory
		CargoTypeRepoFactory
		CompanyRepoFactory
	}

	// UoWFactory creates new unit of work instances for catalog operations.
	UoWFactory interface {
		Create() UoW
	}
)
