package wire

import (
	"movie-reservation/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Post("/api/bookings", bookingHandler.CreateBooking)
	r.Get("/api/showtimes/{id}/bookings", bookingHandler.GetBookingsByShowtime)
}
