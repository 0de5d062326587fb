// Package queries contains read-only operations over the booking schedule
// and the vessel/dock catalog. Query handlers read the database directly,
// bypassing the aggregate repositories, per the CQRS split.
package queries

import (
	"errors"
	"time"

	"portops/internal/pkg/errs"
	"portops/internal/pkg/guard"
)

var ErrGetBookingQueryIsNotConstructed = errors.New(
	"GetBookingQuery must be created via NewGetBookingQuery constructor",
)

// GetBookingQuery retrieves a single booking with its ship and dock summaries.
//
// Example:
//
//	query, err := NewGetBookingQuery(bookingID)
//	handler := NewGetBookingQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
type GetBookingQuery struct {
	bookingID int64

	guard guard.ConstructorGuard
}

// NewGetBookingQuery creates a query to retrieve a booking by ID.
func NewGetBookingQuery(bookingID int64) (GetBookingQuery, error) {
	if bookingID <= 0 {
		return GetBookingQuery{}, errs.NewValueIsRequiredError("booking_id")
	}
	return GetBookingQuery{bookingID: bookingID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBookingQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingQueryIsNotConstructed)
}

// BookingID returns the identifier of the booking being retrieved.
func (q GetBookingQuery) BookingID() int64 {
	return q.bookingID
}

// ShipSummary is the slice of ship data embedded in booking responses.
type ShipSummary struct {
	ID            int64
	Name          string
	Length        int
	CargoTypeName string
}

// DockSummary is the slice of dock data embedded in booking responses.
type DockSummary struct {
	ID     int64
	Code   string
	Length int
}

// BookingResponse represents a booking with its collaborators resolved.
type BookingResponse struct {
	ID           int64
	BookingStart time.Time
	BookingEnd   time.Time
	Status       string
	Ship         ShipSummary
	Dock         DockSummary
}
