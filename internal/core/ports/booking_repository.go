// Package ports defines repository interfaces for the port operations domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"portops/internal/core/domain/model/booking"
)

// BookingRepository defines the persistence contract for booking aggregates.
//
// Add and Update are where dock exclusivity is actually enforced: the storage
// layer holds the only authoritative overlap check, and both methods return a
// *booking.ConflictError (wrapping booking.ErrDockTimeConflict) when a
// confirmed booking would overlap another confirmed booking on the same dock.
type BookingRepository interface {
	// Add persists a new booking aggregate and assigns its storage ID.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists changes to an existing booking aggregate.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Delete removes a booking by its identifier.
	Delete(ctx context.Context, id int64) error

	// Get retrieves a booking aggregate by its unique identifier.
	Get(ctx context.Context, id int64) (*booking.Booking, error)

	// ExistsForShip reports whether any booking references the given ship.
	ExistsForShip(ctx context.Context, shipID int64) (bool, error)

	// ExistsForDock reports whether any booking references the given dock.
	ExistsForDock(ctx context.Context, dockID int64) (bool, error)
}
