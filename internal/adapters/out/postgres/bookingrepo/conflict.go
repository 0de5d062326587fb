package bookingrepo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"portops/internal/core/domain/model/booking"
)

// exclusionConstraintName is the named exclusion constraint created by
// Migrate; only its violations are translated into conflict errors.
const exclusionConstraintName = "bookings_confirmed_dock_no_overlap"

// exclusionViolation is SQLSTATE 23P01.
const exclusionViolation = "23P01"

// detailTimestampPattern matches the quoted range bounds inside the
// constraint violation detail, e.g. "2030-01-01 08:00:00+00".
var detailTimestampPattern = regexp.MustCompile(`"(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}[+-]\d{2}(?::\d{2})?)"`)

// translateConflict turns an exclusion constraint violation into a
// *booking.ConflictError naming the colliding confirmed window. Any other
// error passes through untouched.
//
// The colliding window is resolved with a follow-up query on the root
// connection, because the violation has already aborted the transaction the
// failed statement ran in. Parsing the violation's detail text is kept only
// as a fallback for when that query cannot find the row again.
func (r *GormBookingRepository) translateConflict(
	ctx context.Context, err error, aggregate *booking.Booking, excludeID int64,
) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	if pgErr.Code != exclusionViolation || pgErr.ConstraintName != exclusionConstraintName {
		return err
	}

	if existing, found := r.findOverlapping(ctx, aggregate, excludeID); found {
		return booking.NewConflictError(aggregate.DockID(), existing.BookingStart, existing.BookingEnd)
	}

	if start, end, ok := parseConflictDetail(pgErr.Detail); ok {
		return booking.NewConflictError(aggregate.DockID(), start, end)
	}

	// The window could not be recovered; surface the conflict anyway.
	return booking.NewConflictError(aggregate.DockID(), aggregate.Window().Start(), aggregate.Window().End())
}

// findOverlapping looks up the confirmed booking whose closed interval
// overlaps the aggregate's window on the same dock.
func (r *GormBookingRepository) findOverlapping(
	ctx context.Context, aggregate *booking.Booking, excludeID int64,
) (BookingDTO, bool) {
	tx := r.rootDB.WithContext(ctx).
		Where("dock_id = ?", aggregate.DockID()).
		Where("booking_status = ?", booking.Confirmed.String()).
		Where("booking_start <= ?", aggregate.Window().End()).
		Where("booking_end >= ?", aggregate.Window().Start())
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}

	var dto BookingDTO
	if err := tx.Order("booking_start").First(&dto).Error; err != nil {
		return BookingDTO{}, false
	}
	return dto, true
}

// parseConflictDetail extracts the existing window from the violation
// detail. The detail quotes two ranges; the second is the existing row's.
func parseConflictDetail(detail string) (time.Time, time.Time, bool) {
	matches := detailTimestampPattern.FindAllStringSubmatch(detail, -1)
	if len(matches) < 4 {
		return time.Time{}, time.Time{}, false
	}

	// The last pair of bounds belongs to the existing key.
	start, err := parseDetailTimestamp(matches[len(matches)-2][1])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := parseDetailTimestamp(matches[len(matches)-1][1])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

func parseDetailTimestamp(value string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02 15:04:05-07", value)
	if err != nil {
		parsed, err = time.Parse("2006-01-02 15:04:05-07:00", value)
	}
	return parsed, err
}
