package request

type BookingRequest struct {
	ShowtimeID string `json:"showtime_id" validate:"required,uuid4"`
	SeatNumber int    `json:"seat_number" validate:"required,min=1"`
	UserID     string `json:"user_id" validate:"required,min=1,max=100"`
}
