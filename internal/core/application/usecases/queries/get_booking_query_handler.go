package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"portops/internal/pkg/errs"
)

// GetBookingQueryHandler retrieves a single booking joined with its ship,
// the ship's cargo type and its dock.
type GetBookingQueryHandler struct {
	db *gorm.DB
}

// NewGetBookingQueryHandler creates a handler for single-booking lookups.
// Requires a GORM database connection for query execution.
func NewGetBookingQueryHandler(db *gorm.DB) GetBookingQueryHandler {
	return GetBookingQueryHandler{db: db}
}

// Handle executes the lookup. Returns an errs.ObjectNotFoundError when no
// booking exists under the given ID.
func (h GetBookingQueryHandler) Handle(ctx context.Context, query GetBookingQuery) (BookingResponse, error) {
	if err := query.Validate(); err != nil {
		return BookingResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.booking_start,
			b.booking_end,
			b.booking_status,
			s.id,
			s.ship_name,
			s.ship_length,
			ct.cargo_name,
			d.id,
			d.dock_code,
			d.dock_length
		FROM bookings b
		JOIN ships s ON s.id = b.ship_id
		JOIN cargo_types ct ON ct.id = s.cargo_type_id
		JOIN docks d ON d.id = b.dock_id
		WHERE b.id = ?
	`, query.BookingID()).Row()

	var resp BookingResponse
	err := row.Scan(
		&resp.ID,
		&resp.BookingStart,
		&resp.BookingEnd,
		&resp.Status,
		&resp.Ship.ID,
		&resp.Ship.Name,
		&resp.Ship.Length,
		&resp.Ship.CargoTypeName,
		&resp.Dock.ID,
		&resp.Dock.Code,
		&resp.Dock.Length,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return BookingResponse{}, errs.NewObjectNotFoundError("booking_id", query.BookingID())
	}
	if err != nil {
		return BookingResponse{}, err
	}

	return resp, nil
}
