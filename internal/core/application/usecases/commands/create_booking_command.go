package commands

import (
	"errors"
	"time"

	"portops/internal/core/domain/model/booking"
	"portops/internal/core/domain/model/kernel"
	"portops/internal/pkg/errs"
	"portops/internal/pkg/guard"
)

var (
	ErrCreateBookingCommandIsNotConstructed = errors.New(
		"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
	)
	// ErrEndOrDurationRequired is returned when a caller supplies both or
	// neither of the booking end and the booking duration.
	ErrEndOrDurationRequired = errors.New(
		"exactly one of booking end or booking duration must be provided",
	)
)

// CreateBookingCommand represents a request to reserve a dock for a ship
// over a time window.
//
// Callers express the window either as an explicit end timestamp or as a
// duration from the start; the command resolves both forms into a single
// kernel.TimeWindow.
//
// Example:
//
//	cmd, err := NewCreateBookingCommand(shipID, dockID, start, end, 0, booking.Confirmed)
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewCreateBookingCommandHandler(uowFactory, checker)
//	created, err := handler.Handle(ctx, cmd)
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	shipID int64
	dockID int64
	window kernel.TimeWindow
	status booking.Status

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand creates a command to reserve a dock for a ship.
// Exactly one of end and duration must be set; the zero value disables the
// other form. Validates identifiers, the resulting window, and the status.
func NewCreateBookingCommand(
	shipID int64, dockID int64, start time.Time, end time.Time, duration time.Duration, status booking.Status,
) (CreateBookingCommand, error) {
	bookingCommand := CreateBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	window, windowErr := resolveWindow(start, end, duration)

	if err := errors.Join(
		bookingCommand.setShipID(shipID),
		bookingCommand.setDockID(dockID),
		windowErr,
		bookingCommand.setStatus(status),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	bookingCommand.window = window
	return bookingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

// ShipID returns the identifier of the ship being booked.
func (c CreateBookingCommand) ShipID() int64 {
	return c.shipID
}

// DockID returns the identifier of the dock being reserved.
func (c CreateBookingCommand) DockID() int64 {
	return c.dockID
}

// Window returns the resolved booking time window.
func (c CreateBookingCommand) Window() kernel.TimeWindow {
	return c.window
}

// Status returns the requested booking status.
func (c CreateBookingCommand) Status() booking.Status {
	return c.status
}

func (c *CreateBookingCommand) setShipID(shipID int64) error {
	if shipID <= 0 {
		return errs.NewValueIsRequiredError("ship_id")
	}

	c.shipID = shipID
	return nil
}

func (c *CreateBookingCommand) setDockID(dockID int64) error {
	if dockID <= 0 {
		return errs.NewValueIsRequiredError("dock_id")
	}

	c.dockID = dockID
	return nil
}

func (c *CreateBookingCommand) setStatus(status booking.Status) error {
	return status.Validate()
}

// resolveWindow turns the two accepted window forms into a kernel.TimeWindow.
func resolveWindow(start time.Time, end time.Time, duration time.Duration) (kernel.TimeWindow, error) {
	if start.IsZero() {
		return kernel.TimeWindow{}, errs.NewValueIsRequiredError("booking_start")
	}

	hasEnd := !end.IsZero()
	hasDuration := duration != 0
	if hasEnd == hasDuration {
		return kernel.TimeWindow{}, ErrEndOrDurationRequired
	}

	if hasDuration {
		if duration < 0 {
			return kernel.TimeWindow{}, errs.NewValueIsInvalidError("booking_duration")
		}
		end = start.Add(duration)
	}

	return kernel.NewTimeWindow(start, end)
}
