package wire

import (
	"movie-reservation/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler) {
	r.Post("/api/showtimes", showtimeHandler.CreateShowtime)
	r.Get("/api/showtimes/{id}", showtimeHandler.GetShowtimeByID)
	r.Put("/api/showtimes/{id}", showtimeHandler.UpdateShowtime)
	r.Delete("/api/showtimes/{id}", showtimeHandler.DeleteShowtime)
}
