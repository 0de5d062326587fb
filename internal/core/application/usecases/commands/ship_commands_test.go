package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portops/internal/core/application/usecases/commands"
	"portops/internal/pkg/errs"
)

func TestShipCommandHandler_HandleDelete_BlockedByBookings(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteShipCommand(1)
	require.NoError(t, err)

	shipRepo := new(MockShipRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipRepository").Return(shipRepo).Once(),
		shipRepo.On("Get", ctx, int64(1)).Return(restoredShip(t, 200, 7, "Containers"), nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("ExistsForShip", ctx, int64(1)).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewShipCommandHandler(factory)
	err = h.HandleDelete(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrShipHasBookings)
	uow.AssertExpectations(t)
}

func TestShipCommandHandler_HandleDelete_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteShipCommand(1)
	require.NoError(t, err)

	shipRepo := new(MockShipRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipRepository").Return(shipRepo).Once(),
		shipRepo.On("Get", ctx, int64(1)).Return(restoredShip(t, 200, 7, "Containers"), nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("ExistsForShip", ctx, int64(1)).Return(false, nil).Once(),
		shipRepo.On("Delete", ctx, int64(1)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewShipCommandHandler(factory)
	require.NoError(t, h.HandleDelete(ctx, cmd))
	shipRepo.AssertExpectations(t)
	bookingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewUpdateShipCommand_NoFields(t *testing.T) {
	_, err := commands.NewUpdateShipCommand(1, nil, nil, nil)
	assert.ErrorIs(t, err, commands.ErrNoUpdatableFields)
}

func TestNewCreateShipCommand_MissingReferences(t *testing.T) {
	_, err := commands.NewCreateShipCommand("Ever Given", 400, "Panama", 0, 3)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateShipCommand("Ever Given", 400, "Panama", 7, 0)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
