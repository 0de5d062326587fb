// Package booking contains the Booking aggregate: the reservation of a dock
// for a ship over a validated time window, its PENDING/CONFIRMED lifecycle,
// and the structured ConflictError surfaced when the storage engine rejects
// an overlapping CONFIRMED reservation.
package booking
