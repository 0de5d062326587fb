package dockrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"portops/internal/adapters/out/postgres/cargorepo"
	"portops/internal/core/domain/model/dock"
	"portops/internal/pkg/errs"
)

// GormDockRepository implements DockRepository using GORM.
type GormDockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormDockRepository creates a new GORM dock repository.
func NewGormDockRepository(db *gorm.DB, tracker aggregateTracker) *GormDockRepository {
	return &GormDockRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new dock with its accepted cargo rows and assigns its
// generated ID.
func (r *GormDockRepository) Add(ctx context.Context, aggregate *dock.Dock) error {
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

	if rows := junctionRows(dto.ID, aggregate.CargoTypes()); len(rows) > 0 {
		if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing dock and rewrites its dock_cargo rows so the
// stored junction always mirrors the aggregate's cargo set.
func (r *GormDockRepository) Update(ctx context.Context, aggregate *dock.Dock) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DockDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dock_id", aggregate.ID())
	}

	if err := r.db.WithContext(ctx).Where("dock_id = ?", dto.ID).Delete(&DockCargoDTO{}).Error; err != nil {
		return err
	}
	if rows := junctionRows(dto.ID, aggregate.CargoTypes()); len(rows) > 0 {
		if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a dock and its dock_cargo rows by ID.
func (r *GormDockRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("dock_id = ?", id).Delete(&DockCargoDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DockDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dock_id", id)
	}

	return nil
}

// Get retrieves a dock by ID with its accepted cargo types.
func (r *GormDockRepository) Get(ctx context.Context, id int64) (*dock.Dock, error) {
	var dto DockDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dock_id", id)
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetByCode retrieves a dock by its unique code.
func (r *GormDockRepository) GetByCode(ctx context.Context, code string) (*dock.Dock, error) {
	var dto DockDTO
	if err := r.db.WithContext(ctx).First(&dto, "dock_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dock_code", code)
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

func (r *GormDockRepository) load(ctx context.Context, dto DockDTO) (*dock.Dock, error) {
	var cargoDTOs []cargorepo.CargoTypeDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN dock_cargo ON dock_cargo.cargo_type_id = cargo_types.id").
		Where("dock_cargo.dock_id = ?", dto.ID).
		Order("cargo_types.id").
		Find(&cargoDTOs).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, cargoDTOs)
}
