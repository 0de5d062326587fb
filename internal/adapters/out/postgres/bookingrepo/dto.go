// Package bookingrepo provides data transfer objects and mapping functions for
// booking persistence. This package implements the repository pattern for the
// booking aggregate and owns the translation of the database's dock
// exclusivity violations into domain conflict errors.
package bookingrepo

import (
	"time"

	"portops/internal/core/domain/model/booking"
	"portops/internal/core/domain/model/kernel"
)

// BookingDTO represents the database structure for persisting booking aggregates.
// The dock exclusivity rule lives on this table as a partial GiST exclusion
// constraint over (dock_id, closed booking interval) for CONFIRMED rows.
type BookingDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	ShipID        int64     `gorm:"index;not null"`
	DockID        int64     `gorm:"index;not null"`
	BookingStart  time.Time `gorm:"type:timestamptz;not null"`
	BookingEnd    time.Time `gorm:"type:timestamptz;not null"`
	BookingStatus string    `gorm:"type:varchar(20);not null"`
}

// TableName specifies the database table name for booking entities.
func (BookingDTO) TableName() string {
	return "bookings"
}

// fromDomain converts a booking domain aggregate to its database representation.
func fromDomain(aggregate *booking.Booking) BookingDTO {
	return BookingDTO{
		ID:            aggregate.ID(),
		ShipID:        aggregate.ShipID(),
		DockID:        aggregate.DockID(),
		BookingStart:  aggregate.Window().Start(),
		BookingEnd:    aggregate.Window().End(),
		BookingStatus: aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a booking domain aggregate.
// Uses RestoreBooking so historical rows with past start dates load cleanly.
func toDomain(dto BookingDTO) (*booking.Booking, error) {
	window, err := kernel.NewTimeWindow(dto.BookingStart, dto.BookingEnd)
	if err != nil {
		return nil, err
	}

	status, err := booking.StatusFromString(dto.BookingStatus)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(dto.ID, dto.ShipID, dto.DockID, window, status)
}
