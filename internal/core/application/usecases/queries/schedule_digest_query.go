package queries

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"portops/internal/core/domain/model/booking"
	"portops/internal/pkg/errs"
	"portops/internal/pkg/guard"
)

var ErrScheduleDigestQueryIsNotConstructed = errors.New(
	"ScheduleDigestQuery must be created via NewScheduleDigestQuery constructor",
)

// ScheduleDigestQuery counts confirmed bookings starting inside a horizon
// window. It backs the periodic schedule digest and performs no writes.
type ScheduleDigestQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewScheduleDigestQuery creates a digest query covering [now, now+horizon).
func NewScheduleDigestQuery(now time.Time, horizon time.Duration) (ScheduleDigestQuery, error) {
	if now.IsZero() {
		return ScheduleDigestQuery{}, errs.NewValueIsRequiredError("now")
	}
	if horizon <= 0 {
		return ScheduleDigestQuery{}, errs.NewValueIsInvalidError("horizon")
	}
	return ScheduleDigestQuery{
		from:  now,
		to:    now.Add(horizon),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ScheduleDigestQuery) Validate() error {
	return q.guard.Validate(ErrScheduleDigestQueryIsNotConstructed)
}

// From returns the inclusive start of the horizon window.
func (q ScheduleDigestQuery) From() time.Time { return q.from }

// To returns the exclusive end of the horizon window.
func (q ScheduleDigestQuery) To() time.Time { return q.to }

// ScheduleDigestQueryHandler counts upcoming confirmed bookings.
type ScheduleDigestQueryHandler struct {
	db *gorm.DB
}

// NewScheduleDigestQueryHandler creates a handler using a read-only gorm handle.
func NewScheduleDigestQueryHandler(db *gorm.DB) ScheduleDigestQueryHandler {
	return ScheduleDigestQueryHandler{db: db}
}

// Handle returns the number of confirmed bookings starting inside the window.
func (h ScheduleDigestQueryHandler) Handle(ctx context.Context, query ScheduleDigestQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	result := h.db.WithContext(ctx).
		Table("bookings").
		Where("booking_status = ?", booking.Confirmed.String()).
		Where("booking_start >= ? AND booking_start < ?", query.From(), query.To()).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
