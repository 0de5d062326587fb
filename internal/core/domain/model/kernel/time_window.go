package kernel

import (
	"errors"
	"fmt"
	"time"

	"portops/internal/pkg/errs"
	"portops/internal/pkg/guard"
)

// ErrTimeWindowIsNotConstructed is returned when attempting to use an improperly
// initialized TimeWindow. Windows must be created via NewTimeWindow.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow constructor")

// TimeWindow represents the [start, end] interval of a booking.
// It is an immutable value object; the zero value is invalid and fails
// validation - use NewTimeWindow to create instances.
//
// The overlap semantics are closed-interval: two windows overlap iff
// start1 <= end2 AND start2 <= end1. This is exactly the predicate the
// storage-level exclusion constraint evaluates with tstzrange(.., '[]'),
// so touching endpoints count as an overlap.
//
// Example:
//
//	w, err := kernel.NewTimeWindow(start, start.Add(4*time.Hour))
//	if err != nil {
//	    // end did not come after start
//	}
type TimeWindow struct { //nolint:recvcheck //using for validation
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

// NewTimeWindow creates a TimeWindow from start and end timestamps.
// Both timestamps must be set and end must be strictly after start.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	w := TimeWindow{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(w.setStart(start), w.setEnd(end)); err != nil {
		return TimeWindow{}, err
	}

	return w, nil
}

// Validate checks if the TimeWindow was properly constructed.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

// Start returns the inclusive start of the window.
func (w TimeWindow) Start() time.Time {
	return w.start
}

// End returns the inclusive end of the window.
func (w TimeWindow) End() time.Time {
	return w.end
}

// Duration returns the length of the window.
func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps reports whether two windows share at least one instant,
// using the closed-interval test: start1 <= end2 AND start2 <= end1.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return !w.start.After(other.end) && !other.start.After(w.end)
}

// IsEqual compares two windows by their start and end instants.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.start.Equal(other.start) && w.end.Equal(other.end)
}

// String returns a human-readable representation of the window.
func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s]", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

func (w *TimeWindow) setStart(start time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("booking_start")
	}
	w.start = start
	return nil
}

func (w *TimeWindow) setEnd(end time.Time) error {
	if end.IsZero() {
		return errs.NewValueIsRequiredError("booking_end")
	}
	if !end.After(w.start) {
		return errs.NewValueIsInvalidErrorWithCause("booking_end",
			fmt.Errorf("booking end cannot be earlier than booking start"))
	}
	w.end = end
	return nil
}
