package kernel_test

import (
	"testing"
	"time"

	"portops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, start, end time.Time) kernel.TimeWindow {
	t.Helper()
	w, err := kernel.NewTimeWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestNewTimeWindow(t *testing.T) {
	base := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)

	t.Run("valid_window", func(t *testing.T) {
		w, err := kernel.NewTimeWindow(base, base.Add(4*time.Hour))

		require.NoError(t, err)
		assert.Equal(t, base, w.Start())
		assert.Equal(t, base.Add(4*time.Hour), w.End())
		assert.Equal(t, 4*time.Hour, w.Duration())
	})

	t.Run("end_equal_to_start_is_invalid", func(t *testing.T) {
		_, err := kernel.NewTimeWindow(base, base)
		require.Error(t, err)
	})

	t.Run("end_before_start_is_invalid", func(t *testing.T) {
		_, err := kernel.NewTimeWindow(base, base.Add(-time.Hour))
		require.Error(t, err)
	})

	t.Run("zero_timestamps_are_required", func(t *testing.T) {
		_, err := kernel.NewTimeWindow(time.Time{}, base)
		require.Error(t, err)

		_, err = kernel.NewTimeWindow(base, time.Time{})
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var w kernel.TimeWindow
		require.Error(t, w.Validate())
	})
}

func TestTimeWindow_Overlaps(t *testing.T) {
	base := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		a        [2]time.Duration
		b        [2]time.Duration
		overlaps bool
	}{
		{"identical", [2]time.Duration{0, 4 * time.Hour}, [2]time.Duration{0, 4 * time.Hour}, true},
		{"contained", [2]time.Duration{0, 4 * time.Hour}, [2]time.Duration{time.Hour, 2 * time.Hour}, true},
		{"partial_right", [2]time.Duration{0, 4 * time.Hour}, [2]time.Duration{3 * time.Hour, 6 * time.Hour}, true},
		{"partial_left", [2]time.Duration{3 * time.Hour, 6 * time.Hour}, [2]time.Duration{0, 4 * time.Hour}, true},
		// Closed-interval semantics: a shared endpoint counts as overlap.
		{"touching_endpoints", [2]time.Duration{0, 4 * time.Hour}, [2]time.Duration{4 * time.Hour, 6 * time.Hour}, true},
		{"disjoint_after", [2]time.Duration{0, 2 * time.Hour}, [2]time.Duration{3 * time.Hour, 5 * time.Hour}, false},
		{"disjoint_before", [2]time.Duration{3 * time.Hour, 5 * time.Hour}, [2]time.Duration{0, 2 * time.Hour}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustWindow(t, base.Add(tt.a[0]), base.Add(tt.a[1]))
			b := mustWindow(t, base.Add(tt.b[0]), base.Add(tt.b[1]))

			assert.Equal(t, tt.overlaps, a.Overlaps(b))
			assert.Equal(t, tt.overlaps, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestTimeWindow_IsEqual(t *testing.T) {
	base := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)

	a := mustWindow(t, base, base.Add(time.Hour))
	b := mustWindow(t, base, base.Add(time.Hour))
	c := mustWindow(t, base, base.Add(2*time.Hour))

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
