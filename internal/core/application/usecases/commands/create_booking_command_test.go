package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portops/internal/core/application/usecases/commands"
	"portops/internal/core/domain/model/booking"
	"portops/internal/pkg/errs"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, time.UTC)
	require.NoError(t, err)
	return parsed
}

func TestNewCreateBookingCommand(t *testing.T) {
	start := mustParse(t, "2030-01-01 08:00")
	end := mustParse(t, "2030-01-01 12:00")

	t.Run("with explicit end", func(t *testing.T) {
		cmd, err := commands.NewCreateBookingCommand(1, 2, start, end, 0, booking.Confirmed)
		require.NoError(t, err)

		assert.NoError(t, cmd.Validate())
		assert.Equal(t, int64(1), cmd.ShipID())
		assert.Equal(t, int64(2), cmd.DockID())
		assert.Equal(t, end, cmd.Window().End())
		assert.Equal(t, booking.Confirmed, cmd.Status())
	})

	t.Run("with duration", func(t *testing.T) {
		cmd, err := commands.NewCreateBookingCommand(1, 2, start, time.Time{}, 4*time.Hour, booking.Pending)
		require.NoError(t, err)

		assert.Equal(t, start, cmd.Window().Start())
		assert.Equal(t, end, cmd.Window().End(), "08:00 plus 4 hours resolves to 12:00")
	})

	t.Run("both end and duration", func(t *testing.T) {
		_, err := commands.NewCreateBookingCommand(1, 2, start, end, 4*time.Hour, booking.Pending)
		assert.ErrorIs(t, err, commands.ErrEndOrDurationRequired)
	})

	t.Run("neither end nor duration", func(t *testing.T) {
		_, err := commands.NewCreateBookingCommand(1, 2, start, time.Time{}, 0, booking.Pending)
		assert.ErrorIs(t, err, commands.ErrEndOrDurationRequired)
	})

	t.Run("negative duration", func(t *testing.T) {
		_, err := commands.NewCreateBookingCommand(1, 2, start, time.Time{}, -time.Hour, booking.Pending)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing start", func(t *testing.T) {
		_, err := commands.NewCreateBookingCommand(1, 2, time.Time{}, end, 0, booking.Pending)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing ship", func(t *testing.T) {
		_, err := commands.NewCreateBookingCommand(0, 2, start, end, 0, booking.Pending)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := commands.NewCreateBookingCommand(1, 2, start, end, 0, booking.Unknown)
		assert.Error(t, err)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.CreateBookingCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateBookingCommandIsNotConstructed)
	})
}

func TestNewUpdateBookingCommand(t *testing.T) {
	start := mustParse(t, "2030-01-01 08:00")
	status := booking.Confirmed

	t.Run("partial update", func(t *testing.T) {
		cmd, err := commands.NewUpdateBookingCommand(9, &start, nil, &status)
		require.NoError(t, err)

		assert.Equal(t, int64(9), cmd.BookingID())
		require.NotNil(t, cmd.Start())
		assert.Nil(t, cmd.End())
		assert.Equal(t, booking.Confirmed, *cmd.Status())
	})

	t.Run("no fields", func(t *testing.T) {
		_, err := commands.NewUpdateBookingCommand(9, nil, nil, nil)
		assert.ErrorIs(t, err, commands.ErrNoUpdatableFields)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := commands.NewUpdateBookingCommand(0, &start, nil, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
