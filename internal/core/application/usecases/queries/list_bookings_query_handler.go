package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListBookingsQueryHandler retrieves bookings matching the query's filters,
// joined with ship and dock summaries, ordered by booking start.
//
// The time filters are deliberately half-open (end > from, start < to) so a
// listing window catches every booking that intersects it, while the
// storage-level exclusivity check stays closed on both ends.
type ListBookingsQueryHandler struct {
	db *gorm.DB
}

// NewListBookingsQueryHandler creates a handler for booking listings.
// Requires a GORM database connection for query execution.
func NewListBookingsQueryHandler(db *gorm.DB) ListBookingsQueryHandler {
	return ListBookingsQueryHandler{db: db}
}

// Handle executes the listing with all supplied filters applied conjunctively.
func (h ListBookingsQueryHandler) Handle(ctx context.Context, query ListBookingsQuery) ([]BookingResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("bookings b").
		Select(`
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
		`).
		Joins("JOIN ships s ON s.id = b.ship_id").
		Joins("JOIN cargo_types ct ON ct.id = s.cargo_type_id").
		Joins("JOIN docks d ON d.id = b.dock_id")

	if query.From() != nil {
		tx = tx.Where("b.booking_end > ?", *query.From())
	}
	if query.To() != nil {
		tx = tx.Where("b.booking_start < ?", *query.To())
	}
	if query.Status() != nil {
		tx = tx.Where("b.booking_status = ?", query.Status().String())
	}
	if query.DockID() != nil {
		tx = tx.Where("b.dock_id = ?", *query.DockID())
	}
	if query.ShipID() != nil {
		tx = tx.Where("b.ship_id = ?", *query.ShipID())
	}

	rows, err := tx.Order("b.booking_start").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]BookingResponse, 0)
	for rows.Next() {
		var resp BookingResponse
		err = rows.Scan(
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
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
