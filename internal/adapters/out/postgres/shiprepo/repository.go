package shiprepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"portops/internal/adapters/out/postgres/cargorepo"
	"portops/internal/core/domain/model/ship"
	"portops/internal/pkg/errs"
)

// GormShipRepository implements ShipRepository using GORM.
type GormShipRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormShipRepository creates a new GORM ship repository.
func NewGormShipRepository(db *gorm.DB, tracker aggregateTracker) *GormShipRepository {
	return &GormShipRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new ship to the database and assigns its generated ID.
func (r *GormShipRepository) Add(ctx context.Context, aggregate *ship.Ship) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.SetID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing ship to the database.
func (r *GormShipRepository) Update(ctx context.Context, aggregate *ship.Ship) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ship_id", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a ship by ID.
func (r *GormShipRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&ShipDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ship_id", id)
	}

	return nil
}

// Get retrieves a ship by ID with its cargo type resolved.
func (r *GormShipRepository) Get(ctx context.Context, id int64) (*ship.Ship, error) {
	var dto ShipDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ship_id", id)
		}
		return nil, err
	}

	var cargoDTO cargorepo.CargoTypeDTO
	if err := r.db.WithContext(ctx).First(&cargoDTO, "id = ?", dto.CargoTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cargo_type_id", dto.CargoTypeID)
		}
		return nil, err
	}

	return toDomain(dto, cargoDTO)
}
