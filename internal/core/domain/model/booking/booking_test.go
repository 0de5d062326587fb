package booking_test

import (
	"testing"
	"time"

	"portops/internal/core/domain/model/booking"
	"portops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

func window(t *testing.T, start time.Time, d time.Duration) kernel.TimeWindow {
	t.Helper()
	w, err := kernel.NewTimeWindow(start, start.Add(d))
	require.NoError(t, err)
	return w
}

func TestNewBooking(t *testing.T) {
	start := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)

	t.Run("valid_pending_booking", func(t *testing.T) {
		b, err := booking.NewBooking(1, 2, window(t, start, 4*time.Hour), booking.Pending, now)

		require.NoError(t, err)
		assert.Equal(t, int64(0), b.ID())
		assert.Equal(t, int64(1), b.ShipID())
		assert.Equal(t, int64(2), b.DockID())
		assert.Equal(t, booking.Pending, b.Status())
		assert.Equal(t, start, b.Window().Start())
		assert.Equal(t, start.Add(4*time.Hour), b.Window().End())
		require.NoError(t, b.Validate())
	})

	t.Run("start_later_today_is_valid", func(t *testing.T) {
		_, err := booking.NewBooking(1, 2, window(t, now.Add(time.Minute), time.Hour), booking.Confirmed, now)
		require.NoError(t, err)
	})

	t.Run("backdated_start_is_rejected", func(t *testing.T) {
		yesterday := now.Add(-2 * time.Hour)
		_, err := booking.NewBooking(1, 2, window(t, yesterday, time.Hour), booking.Pending, now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "earlier than today")
	})

	t.Run("duration_over_twelve_hours_is_rejected", func(t *testing.T) {
		_, err := booking.NewBooking(1, 2, window(t, start, 12*time.Hour+time.Minute), booking.Pending, now)
		require.Error(t, err)
	})

	t.Run("exactly_twelve_hours_is_allowed", func(t *testing.T) {
		_, err := booking.NewBooking(1, 2, window(t, start, 12*time.Hour), booking.Pending, now)
		require.NoError(t, err)
	})

	t.Run("missing_references_are_rejected", func(t *testing.T) {
		_, err := booking.NewBooking(0, 2, window(t, start, time.Hour), booking.Pending, now)
		require.Error(t, err)

		_, err = booking.NewBooking(1, 0, window(t, start, time.Hour), booking.Pending, now)
		require.Error(t, err)
	})

	t.Run("invalid_status_is_rejected", func(t *testing.T) {
		_, err := booking.NewBooking(1, 2, window(t, start, time.Hour), booking.Unknown, now)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var b booking.Booking
		require.Error(t, b.Validate())
	})
}

func TestRestoreBooking(t *testing.T) {
	// Restoring a past booking must not trip the backdating rule.
	past := time.Date(2020, 6, 1, 8, 0, 0, 0, time.UTC)

	b, err := booking.RestoreBooking(7, 1, 2, window(t, past, 4*time.Hour), booking.Confirmed)

	require.NoError(t, err)
	assert.Equal(t, int64(7), b.ID())
	assert.Equal(t, booking.Confirmed, b.Status())

	t.Run("requires_persistent_id", func(t *testing.T) {
		_, err := booking.RestoreBooking(0, 1, 2, window(t, past, time.Hour), booking.Pending)
		require.Error(t, err)
	})
}

func TestBooking_SetID(t *testing.T) {
	start := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)
	b, err := booking.NewBooking(1, 2, window(t, start, time.Hour), booking.Pending, now)
	require.NoError(t, err)

	require.NoError(t, b.SetID(42))
	assert.Equal(t, int64(42), b.ID())

	require.ErrorIs(t, b.SetID(43), booking.ErrIDAlreadyAssigned)
}

func TestBooking_Reschedule(t *testing.T) {
	start := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)
	b, err := booking.NewBooking(1, 2, window(t, start, 4*time.Hour), booking.Pending, now)
	require.NoError(t, err)

	t.Run("valid_reschedule", func(t *testing.T) {
		next := window(t, start.Add(24*time.Hour), 2*time.Hour)
		require.NoError(t, b.Reschedule(next, now))
		assert.True(t, b.Window().IsEqual(next))
	})

	t.Run("reschedule_revalidates_invariants", func(t *testing.T) {
		require.Error(t, b.Reschedule(window(t, now.Add(-48*time.Hour), time.Hour), now))
		require.Error(t, b.Reschedule(window(t, start, 13*time.Hour), now))
	})
}

func TestBooking_ChangeStatus(t *testing.T) {
	start := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)
	b, err := booking.NewBooking(1, 2, window(t, start, time.Hour), booking.Pending, now)
	require.NoError(t, err)

	require.NoError(t, b.ChangeStatus(booking.Confirmed))
	assert.Equal(t, booking.Confirmed, b.Status())

	require.NoError(t, b.ChangeStatus(booking.Pending))
	assert.Equal(t, booking.Pending, b.Status())

	require.Error(t, b.ChangeStatus(booking.Unknown))
}
