package commands

import (
	"context"
	"time"

	"portops/internal/core/domain/model/booking"
	"portops/internal/core/domain/model/kernel"
	"portops/internal/core/domain/services"
)

// UpdateBookingCommandHandler handles partial booking updates. The patched
// window is revalidated against the booking invariants, and a transition
// into Confirmed re-runs the ship/dock compatibility check because docks
// may have changed since the booking was created.
type UpdateBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	checker    services.CompatibilityChecker
}

// NewUpdateBookingCommandHandler creates a handler for booking update operations.
func NewUpdateBookingCommandHandler(
	uowFactory BookingUoWFactory, checker services.CompatibilityChecker,
) UpdateBookingCommandHandler {
	return UpdateBookingCommandHandler{
		uowFactory: uowFactory,
		checker:    checker,
	}
}

// Handle processes the booking update command and returns the updated booking.
func (h UpdateBookingCommandHandler) Handle(ctx context.Context, cmd UpdateBookingCommand) (*booking.Booking, error) {
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

	bookingRepo := uow.BookingRepository()
	existing, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return nil, err
	}

	if cmd.Start() != nil || cmd.End() != nil {
		start := existing.Window().Start()
		end := existing.Window().End()
		if cmd.Start() != nil {
			start = *cmd.Start()
		}
		if cmd.End() != nil {
			end = *cmd.End()
		}

		window, err := kernel.NewTimeWindow(start, end)
		if err != nil {
			return nil, err
		}
		if err = existing.Reschedule(window, time.Now()); err != nil {
			return nil, err
		}
	}

	if cmd.Status() != nil && *cmd.Status() != existing.Status() {
		if *cmd.Status() == booking.Confirmed {
			if err = h.recheckCompatibility(ctx, uow, existing); err != nil {
				return nil, err
			}
		}
		if err = existing.ChangeStatus(*cmd.Status()); err != nil {
			return nil, err
		}
	}

	if err = bookingRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}

func (h UpdateBookingCommandHandler) recheckCompatibility(
	ctx context.Context, uow BookingUoW, aggregate *booking.Booking,
) error {
	bookedShip, err := uow.ShipRepository().Get(ctx, aggregate.ShipID())
	if err != nil {
		return err
	}

	bookedDock, err := uow.DockRepository().Get(ctx, aggregate.DockID())
	if err != nil {
		return err
	}

	return h.checker.Check(bookedShip, bookedDock)
}
