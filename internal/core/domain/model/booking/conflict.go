package booking

import (
	"errors"
	"fmt"
	"time"
)

// ErrDockTimeConflict is the sentinel for dock exclusivity violations.
// Use errors.Is against it to classify a ConflictError.
var ErrDockTimeConflict = errors.New("dock already has a confirmed booking for this time window")

// ConflictError is the structured signal produced when the storage engine
// rejects a write that would let two CONFIRMED bookings overlap on the same
// dock. It carries the dock and the window of the booking already occupying
// the slot, so the caller can be told exactly what it collided with.
type ConflictError struct {
	DockID        int64
	ExistingStart time.Time
	ExistingEnd   time.Time
}

// NewConflictError creates a ConflictError for the given dock and the
// existing booking's window.
func NewConflictError(dockID int64, existingStart, existingEnd time.Time) *ConflictError {
	return &ConflictError{
		DockID:        dockID,
		ExistingStart: existingStart,
		ExistingEnd:   existingEnd,
	}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"dock %d already has a confirmed booking from %s to %s",
		e.DockID,
		e.ExistingStart.Format("2006-01-02 15:04"),
		e.ExistingEnd.Format("2006-01-02 15:04"),
	)
}

func (e *ConflictError) Unwrap() error {
	return ErrDockTimeConflict
}
