package cargorepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"portops/internal/core/domain/model/cargo"
	"portops/internal/pkg/errs"
)

// GormCargoTypeRepository implements CargoTypeRepository using GORM.
type GormCargoTypeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormCargoTypeRepository creates a new GORM cargo type repository.
func NewGormCargoTypeRepository(db *gorm.DB, tracker aggregateTracker) *GormCargoTypeRepository {
	return &GormCargoTypeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cargo type to the database and assigns its generated ID.
func (r *GormCargoTypeRepository) Add(ctx context.Context, aggregate *cargo.CargoType) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.SetID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing cargo type to the database.
func (r *GormCargoTypeRepository) Update(ctx context.Context, aggregate *cargo.CargoType) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CargoTypeDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cargo_type_id", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a cargo type by ID.
func (r *GormCargoTypeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&CargoTypeDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cargo_type_id", id)
	}

	return nil
}

// Get retrieves a cargo type by ID.
func (r *GormCargoTypeRepository) Get(ctx context.Context, id int64) (*cargo.CargoType, error) {
	var dto CargoTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cargo_type_id", id)
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetByIDs retrieves the cargo types for the given identifiers. Every
// requested ID must resolve; a missing one is reported as not found.
func (r *GormCargoTypeRepository) GetByIDs(ctx context.Context, ids []int64) ([]cargo.CargoType, error) {
	var dtos []CargoTypeDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	found := make(map[int64]CargoTypeDTO, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = dto
	}

	cargoTypes := make([]cargo.CargoType, 0, len(ids))
	for _, id := range ids {
		dto, ok := found[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("cargo_type_id", id)
		}
		ct, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		cargoTypes = append(cargoTypes, *ct)
	}

	return cargoTypes, nil
}

// InUse reports whether any ship or dock still references the cargo type.
func (r *GormCargoTypeRepository) InUse(ctx context.Context, id int64) (bool, error) {
	var shipCount int64
	err := r.db.WithContext(ctx).Table("ships").Where("cargo_type_id = ?", id).Count(&shipCount).Error
	if err != nil {
		return false, err
	}
	if shipCount > 0 {
		return true, nil
	}

	var junctionCount int64
	err = r.db.WithContext(ctx).Table("dock_cargo").Where("cargo_type_id = ?", id).Count(&junctionCount).Error
	if err != nil {
		return false, err
	}

	return junctionCount > 0, nil
}
