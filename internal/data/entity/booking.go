package entity

import "github.com/google/uuid"

// Booking is immutable after creation. It is removed only when its
// showtime is removed.
type Booking struct {
	BaseSimple
	ShowtimeID uuid.UUID `db:"showtime_id"`
	SeatNumber int       `db:"seat_number"`
	UserID     string    `db:"user_id"`
}
