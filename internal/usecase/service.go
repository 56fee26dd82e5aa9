package usecase

import (
	"movie-reservation/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie    MovieService
	Showtime ShowtimeService
	Booking  BookingService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	movie := NewMovieService(repo, log)
	showtime := NewShowtimeService(repo, movie, log)
	booking := NewBookingService(repo, showtime, log)

	return &Service{
		Movie:    movie,
		Showtime: showtime,
		Booking:  booking,
	}
}
