package bookingrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"portops/internal/core/domain/model/booking"
	"portops/internal/pkg/errs"
)

// GormBookingRepository implements BookingRepository using GORM.
//
// It holds two handles: db is the transaction the unit of work runs, rootDB
// is the untransacted connection. When an insert trips the exclusion
// constraint the transaction is already aborted, so the follow-up query for
// the colliding row has to run on rootDB.
type GormBookingRepository struct {
	db      *gorm.DB
	rootDB  *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormBookingRepository creates a new GORM booking repository.
func NewGormBookingRepository(db *gorm.DB, rootDB *gorm.DB, tracker aggregateTracker) *GormBookingRepository {
	return &GormBookingRepository{
		db:      db,
		rootDB:  rootDB,
		tracker: tracker,
	}
}

// Add saves a new booking to the database and assigns its generated ID.
// A confirmed booking overlapping another confirmed booking on the same dock
// comes back as a *booking.ConflictError.
func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return r.translateConflict(ctx, err, aggregate, 0)
	}

	if err := aggregate.SetID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing booking to the database. Rescheduling or
// confirming a booking re-triggers the exclusion constraint; the booking's
// own row is excluded when resolving the colliding window.
func (r *GormBookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BookingDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return r.translateConflict(ctx, result.Error, aggregate, aggregate.ID())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("booking_id", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a booking by ID.
func (r *GormBookingRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&BookingDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("booking_id", id)
	}

	return nil
}

// Get retrieves a booking by ID.
func (r *GormBookingRepository) Get(ctx context.Context, id int64) (*booking.Booking, error) {
	var dto BookingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking_id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsForShip reports whether any booking references the given ship.
func (r *GormBookingRepository) ExistsForShip(ctx context.Context, shipID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BookingDTO{}).Where("ship_id = ?", shipID).Count(&count).Error
	return count > 0, err
}

// ExistsForDock reports whether any booking references the given dock.
func (r *GormBookingRepository) ExistsForDock(ctx context.Context, dockID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BookingDTO{}).Where("dock_id = ?", dockID).Count(&count).Error
	return count > 0, err
}
