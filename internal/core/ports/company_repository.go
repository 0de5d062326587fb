package ports

import (
	"context"

	"portops/internal/core/domain/model/company"
)

// CompanyRepository defines the persistence contract for shipping companies.
type CompanyRepository interface {
	// Add persists a new company and assigns its storage ID.
	Add(ctx context.Context, aggregate *company.Company) error

	// Get retrieves a company by its unique identifier.
	Get(ctx context.Context, id int64) (*company.Company, error)
}
