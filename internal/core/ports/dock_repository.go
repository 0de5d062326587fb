package ports

import (
	"context"

	"portops/internal/core/domain/model/dock"
)

// DockRepository defines the persistence contract for dock aggregates.
// Docks are loaded with their accepted cargo types.
type DockRepository interface {
	// Add persists a new dock aggregate and assigns its storage ID.
	Add(ctx context.Context, aggregate *dock.Dock) error

	// Update persists changes to an existing dock aggregate, including
	// its accepted cargo type set.
	Update(ctx context.Context, aggregate *dock.Dock) error

	// Delete removes a dock by its identifier.
	Delete(ctx context.Context, id int64) error

	// Get retrieves a dock aggregate by its unique identifier.
	Get(ctx context.Context, id int64) (*dock.Dock, error)

	// GetByCode retrieves a dock aggregate by its unique code.
	GetByCode(ctx context.Context, code string) (*dock.Dock, error)
}
