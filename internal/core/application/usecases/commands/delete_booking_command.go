package commands

import (
	"errors"

	"portops/internal/pkg/errs"
	"portops/internal/pkg/guard"
)

var ErrDeleteBookingCommandIsNotConstructed = errors.New(
	"DeleteBookingCommand must be created via NewDeleteBookingCommand constructor",
)

// DeleteBookingCommand represents a request to remove a booking.
type DeleteBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID int64

	guard guard.ConstructorGuard
}

// NewDeleteBookingCommand creates a command to delete a booking by ID.
func NewDeleteBookingCommand(bookingID int64) (DeleteBookingCommand, error) {
	bookingCommand := DeleteBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if bookingID <= 0 {
		return DeleteBookingCommand{}, errs.NewValueIsRequiredError("booking_id")
	}
	bookingCommand.bookingID = bookingID

	return bookingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteBookingCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBookingCommandIsNotConstructed)
}

// BookingID returns the identifier of the booking being deleted.
func (c DeleteBookingCommand) BookingID() int64 {
	return c.bookingID
}
