package commands

import (
	"context"
	"time"

	"portops/internal/core/domain/model/booking"
	"portops/internal/core/domain/services"
)

// CreateBookingCommandHandler handles the business logic for booking creation.
// Loads the ship and dock, runs the compatibility check, and persists the
// booking. Overlap between confirmed bookings is enforced by storage, so the
// handler only translates what the repository reports back.
//
// Example:
//
//	handler := NewCreateBookingCommandHandler(uowFactory, services.NewCompatibilityChecker())
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, booking.ErrDockTimeConflict) {
//	    // The dock is already taken for that window
//	}
type CreateBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	checker    services.CompatibilityChecker
}

// NewCreateBookingCommandHandler creates a handler for booking creation operations.
func NewCreateBookingCommandHandler(
	uowFactory BookingUoWFactory, checker services.CompatibilityChecker,
) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		checker:    checker,
	}
}

// Handle processes the booking creation command and returns the persisted
// booking with its storage-assigned ID.
func (h CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookedShip, err := uow.ShipRepository().Get(ctx, cmd.ShipID())
	if err != nil {
		return nil, err
	}

	bookedDock, err := uow.DockRepository().Get(ctx, cmd.DockID())
	if err != nil {
		return nil, err
	}

	if err = h.checker.Check(bookedShip, bookedDock); err != nil {
		return nil, err
	}

	newBooking, err := booking.NewBooking(cmd.ShipID(), cmd.DockID(), cmd.Window(), cmd.Status(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.BookingRepository().Add(ctx, newBooking); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newBooking, nil
}
