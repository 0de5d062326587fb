package ports

import (
	"context"

	"portops/internal/core/domain/model/cargo"
)

// CargoTypeRepository defines the persistence contract for cargo types.
type CargoTypeRepository interface {
	// Add persists a new cargo type and assigns its storage ID.
	Add(ctx context.Context, aggregate *cargo.CargoType) error

	// Update persists changes to an existing cargo type.
	Update(ctx context.Context, aggregate *cargo.CargoType) error

	// Delete removes a cargo type by its identifier.
	Delete(ctx context.Context, id int64) error

	// Get retrieves a cargo type by its unique identifier.
	Get(ctx context.Context, id int64) (*cargo.CargoType, error)

	// GetByIDs retrieves the cargo types for the given identifiers.
	// Every requested ID must exist; a missing one is an error.
	GetByIDs(ctx context.Context, ids []int64) ([]cargo.CargoType, error)

	// InUse reports whether any ship or dock references the cargo type.
	InUse(ctx context.Context, id int64) (bool, error)
}
