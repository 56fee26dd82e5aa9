package response

import (
	"time"

	"movie-reservation/internal/data/entity"
)

type BookingResponse struct {
	ID         string    `json:"id"`
	ShowtimeID string    `json:"showtime_id"`
	SeatNumber int       `json:"seat_number"`
	UserID     string    `json:"user_id"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:         booking.ID.String(),
		ShowtimeID: booking.ShowtimeID.String(),
		SeatNumber: booking.SeatNumber,
		UserID:     booking.UserID,
		CreatedAt:  booking.CreatedAt,
	}
}
