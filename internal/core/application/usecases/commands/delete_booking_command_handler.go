package commands

import (
	"context"
)

// DeleteBookingCommandHandler handles booking deletion. The repository
// reports a not-found error when the booking does not exist, so deletion of
// an unknown ID surfaces to the caller instead of silently succeeding.
type DeleteBookingCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewDeleteBookingCommandHandler creates a handler for booking deletion operations.
func NewDeleteBookingCommandHandler(uowFactory BookingUoWFactory) DeleteBookingCommandHandler {
	return DeleteBookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking deletion command.
func (h DeleteBookingCommandHandler) Handle(ctx context.Context, cmd DeleteBookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.BookingRepository().Delete(ctx, cmd.BookingID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
