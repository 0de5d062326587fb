package ports

import (
	"context"

	"portops/internal/core/domain/model/ship"
)

// ShipRepository defines the persistence contract for ship aggregates.
// Ships are loaded with their configured cargo type so the compatibility
// checker can reason about it without a second round trip.
type ShipRepository interface {
	// Add persists a new ship aggregate and assigns its storage ID.
	Add(ctx context.Context, aggregate *ship.Ship) error

	// Update persists changes to an existing ship aggregate.
	Update(ctx context.Context, aggregate *ship.Ship) error

	// Delete removes a ship by its identifier.
	Delete(ctx context.Context, id int64) error

	// Get retrieves a ship aggregate by its unique identifier.
	Get(ctx context.Context, id int64) (*ship.Ship, error)
}
