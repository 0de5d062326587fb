package booking

import (
	"errors"
	"fmt"
	"time"

	"portops/internal/core/domain/model/kernel"
	"portops/internal/pkg/errs"
)

// MaxDuration is the longest window a single booking may span.
const MaxDuration = 12 * time.Hour

var (
	// ErrBookingIsNotConstructed is returned when a Booking instance was not
	// created through NewBooking or RestoreBooking.
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking or RestoreBooking constructor")

	// ErrIDAlreadyAssigned is returned when SetID is called on a booking that
	// already carries a persistent identifier.
	ErrIDAlreadyAssigned = errors.New("booking ID is already assigned")
)

// Booking represents a reservation of a dock for a ship over a time window.
// It is the aggregate root of the booking lifecycle.
//
// Booking maintains these invariants:
//   - The window end is after its start (enforced by kernel.TimeWindow)
//   - The window start date is not earlier than the creation date
//   - The window spans at most MaxDuration
//   - Status is Pending or Confirmed
//
// Dock exclusivity between CONFIRMED bookings is deliberately NOT checked
// here: under concurrent writers an application-level check is a race, so
// the storage engine's exclusion constraint is the single authority and its
// rejection surfaces as a ConflictError.
type Booking struct {
	// id is assigned by storage on first persist; zero until then
	id int64

	// shipID references the ship this booking is for
	shipID int64

	// dockID references the dock this booking occupies
	dockID int64

	// window is the [start, end] occupation interval
	window kernel.TimeWindow

	// status is the current lifecycle state
	status Status

	// isConstructed ensures the booking was created via a constructor
	isConstructed bool
}

// NewBooking creates a new Booking, validating the date invariants against
// now: no backdated start and a window of at most MaxDuration. The storage
// layer assigns the ID on insert.
func NewBooking(shipID, dockID int64, window kernel.TimeWindow, status Status, now time.Time) (*Booking, error) {
	b := &Booking{
		isConstructed: true,
	}

	if err := errors.Join(
		b.setShipID(shipID),
		b.setDockID(dockID),
		b.setWindow(window, now),
		b.setStatus(status),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBooking reconstructs a Booking from persistence. Date invariants are
// not re-checked: a stored booking legitimately starts in the past.
func RestoreBooking(id, shipID, dockID int64, window kernel.TimeWindow, status Status) (*Booking, error) {
	b := &Booking{
		isConstructed: true,
	}

	if err := errors.Join(
		b.setShipID(shipID),
		b.setDockID(dockID),
		window.Validate(),
		b.setStatus(status),
	); err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("booking id")
	}
	b.id = id
	b.window = window

	return b, nil
}

// Validate ensures the Booking instance was properly constructed.
func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}
	return nil
}

// ID returns the booking's persistent identifier, or zero if not yet persisted.
func (b *Booking) ID() int64 {
	return b.id
}

// SetID assigns the storage-generated identifier after the first insert.
func (b *Booking) SetID(id int64) error {
	if b.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("booking id")
	}
	b.id = id
	return nil
}

// ShipID returns the referenced ship's identifier.
func (b *Booking) ShipID() int64 {
	return b.shipID
}

// DockID returns the occupied dock's identifier.
func (b *Booking) DockID() int64 {
	return b.dockID
}

// Window returns the [start, end] occupation interval.
func (b *Booking) Window() kernel.TimeWindow {
	return b.window
}

// Status returns the current lifecycle state.
func (b *Booking) Status() Status {
	return b.status
}

// Reschedule moves the booking to a new window, re-validating the date
// invariants against now. If the booking is CONFIRMED the subsequent
// persist re-triggers the dock exclusion constraint.
func (b *Booking) Reschedule(window kernel.TimeWindow, now time.Time) error {
	return b.setWindow(window, now)
}

// ChangeStatus moves the booking between Pending and Confirmed.
// The transition into Confirmed only becomes effective once the persist
// passes the dock exclusion constraint.
func (b *Booking) ChangeStatus(status Status) error {
	return b.setStatus(status)
}

func (b *Booking) setShipID(shipID int64) error {
	if shipID <= 0 {
		return errs.NewValueIsRequiredError("ship_id")
	}
	b.shipID = shipID
	return nil
}

func (b *Booking) setDockID(dockID int64) error {
	if dockID <= 0 {
		return errs.NewValueIsRequiredError("dock_id")
	}
	b.dockID = dockID
	return nil
}

func (b *Booking) setWindow(window kernel.TimeWindow, now time.Time) error {
	if err := window.Validate(); err != nil {
		return err
	}

	// Compare calendar dates, not instants: a booking later today is valid.
	sy, sm, sd := window.Start().Date()
	ny, nm, nd := now.Date()
	startDay := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	if startDay.Before(today) {
		return errs.NewValueIsInvalidErrorWithCause("booking_start",
			fmt.Errorf("booking start date cannot be earlier than today"))
	}

	if window.Duration() > MaxDuration {
		return errs.NewValueIsOutOfRangeError("booking duration hours",
			window.Duration().Hours(), 0, MaxDuration.Hours())
	}

	b.window = window
	return nil
}

func (b *Booking) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	b.status = status
	return nil
}
