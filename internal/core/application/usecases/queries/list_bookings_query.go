package queries

import (
	"errors"
	"time"

	"portops/internal/core/domain/model/booking"
	"portops/internal/pkg/errs"
	"portops/internal/pkg/guard"
)

var ErrListBookingsQueryIsNotConstructed = errors.New(
	"ListBookingsQuery must be created via NewListBookingsQuery constructor",
)

// ListBookingsQuery retrieves bookings matching a conjunction of optional
// filters. The time filters select every booking whose window intersects
// (from, to): end > from AND start < to.
//
// Example:
//
//	from := mustParse("2030-01-01 00:00")
//	query, err := NewListBookingsQuery(&from, nil, nil, &dockID, nil)
//	handler := NewListBookingsQueryHandler(db)
//	bookings, err := handler.Handle(ctx, query)
type ListBookingsQuery struct {
	from   *time.Time
	to     *time.Time
	status *booking.Status
	dockID *int64
	shipID *int64

	guard guard.ConstructorGuard
}

// NewListBookingsQuery creates a query to list bookings. All filters are
// optional; nil filters match everything.
func NewListBookingsQuery(
	from, to *time.Time, status *booking.Status, dockID, shipID *int64,
) (ListBookingsQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListBookingsQuery{}, err
		}
	}
	if dockID != nil && *dockID <= 0 {
		return ListBookingsQuery{}, errs.NewValueIsInvalidError("dock_id")
	}
	if shipID != nil && *shipID <= 0 {
		return ListBookingsQuery{}, errs.NewValueIsInvalidError("ship_id")
	}

	return ListBookingsQuery{
		from:   from,
		to:     to,
		status: status,
		dockID: dockID,
		shipID: shipID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListBookingsQuery) Validate() error {
	return q.guard.Validate(ErrListBookingsQueryIsNotConstructed)
}

// From returns the lower time bound filter, or nil.
func (q ListBookingsQuery) From() *time.Time { return q.from }

// To returns the upper time bound filter, or nil.
func (q ListBookingsQuery) To() *time.Time { return q.to }

// Status returns the status filter, or nil.
func (q ListBookingsQuery) Status() *booking.Status { return q.status }

// DockID returns the dock filter, or nil.
func (q ListBookingsQuery) DockID() *int64 { return q.dockID }

// ShipID returns the ship filter, or nil.
func (q ListBookingsQuery) ShipID() *int64 { return q.shipID }
