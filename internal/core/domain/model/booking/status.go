package booking

import (
	"fmt"

	"portops/internal/pkg/errs"
)

// Status represents the lifecycle state of a booking.
//
// PENDING bookings hold no exclusivity: any number of them may share a dock
// and a time window. Only CONFIRMED bookings compete for the dock - the
// storage-level exclusion constraint applies exclusively to rows in that
// state. A booking may move freely between the two states; transitioning
// into Confirmed is what triggers the overlap check.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is a tentative reservation with no exclusivity over the dock.
	Pending

	// Confirmed is an exclusive reservation: no other confirmed booking may
	// overlap it on the same dock.
	Confirmed
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
	}
}

// getValidStatusStrings returns only the statuses a booking may carry.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
	}
}

// StatusFromString parses the wire representation of a status.
// Accepted values are "PENDING" and "CONFIRMED"; anything else is invalid.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("booking_status",
		fmt.Errorf("%q is not one of [PENDING CONFIRMED]", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending and Confirmed; Unknown (0) and any other
// values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("booking_status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
