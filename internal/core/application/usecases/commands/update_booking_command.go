package commands

import (
	"errors"
	"time"

	"portops/internal/core/domain/model/booking"
	"portops/internal/pkg/errs"
	"portops/internal/pkg/guard"
)

var (
	ErrUpdateBookingCommandIsNotConstructed = errors.New(
		"UpdateBookingCommand must be created via NewUpdateBookingCommand constructor",
	)
	// ErrNoUpdatableFields is returned when an update carries none of the
	// fields a booking update accepts.
	ErrNoUpdatableFields = errors.New(
		"at least one of booking start, booking end or booking status must be provided",
	)
)

// UpdateBookingCommand represents a partial update of an existing booking.
// Only the start, the end and the status can change; unset fields keep
// their stored values.
type UpdateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID int64
	start     *time.Time
	end       *time.Time
	status    *booking.Status

	guard guard.ConstructorGuard
}

// NewUpdateBookingCommand creates a command to patch a booking. Nil fields
// are left untouched; at least one must be set.
func NewUpdateBookingCommand(
	bookingID int64, start *time.Time, end *time.Time, status *booking.Status,
) (UpdateBookingCommand, error) {
	bookingCommand := UpdateBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bookingCommand.setBookingID(bookingID),
		bookingCommand.setFields(start, end, status),
	); err != nil {
		return UpdateBookingCommand{}, err
	}

	return bookingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBookingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBookingCommandIsNotConstructed)
}

// BookingID returns the identifier of the booking being updated.
func (c UpdateBookingCommand) BookingID() int64 {
	return c.bookingID
}

// Start returns the new booking start, or nil to keep the stored one.
func (c UpdateBookingCommand) Start() *time.Time {
	return c.start
}

// End returns the new booking end, or nil to keep the stored one.
func (c UpdateBookingCommand) End() *time.Time {
	return c.end
}

// Status returns the new booking status, or nil to keep the stored one.
func (c UpdateBookingCommand) Status() *booking.Status {
	return c.status
}

func (c *UpdateBookingCommand) setBookingID(bookingID int64) error {
	if bookingID <= 0 {
		return errs.NewValueIsRequiredError("booking_id")
	}

	c.bookingID = bookingID
	return nil
}

func (c *UpdateBookingCommand) setFields(start *time.Time, end *time.Time, status *booking.Status) error {
	if start == nil && end == nil && status == nil {
		return ErrNoUpdatableFields
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.start = start
	c.end = end
	c.status = status
	return nil
}
