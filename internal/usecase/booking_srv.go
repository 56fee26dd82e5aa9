package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-reservation/internal/data/entity"
	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/dto/request"
	"movie-reservation/internal/dto/response"
	"movie-reservation/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService is the guardian of the "one seat per showtime"
// invariant. Seat numbers are not checked against any theater capacity,
// any positive integer is accepted.
type BookingService interface {
	CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
	GetBookingsByShowtime(ctx context.Context, showtimeID string) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	showtime ShowtimeService
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, showtime ShowtimeService, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		showtime: showtime,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	// Showtime lookup goes through the scheduler so its NotFound reaches
	// the caller unchanged.
	if _, err := s.showtime.GetShowtimeByID(ctx, req.ShowtimeID); err != nil {
		return nil, err
	}
	showtimeID, err := uuid.Parse(req.ShowtimeID)
	if err != nil {
		return nil, notFoundf("Showtime with ID %s not found", req.ShowtimeID)
	}

	existing, err := s.repo.Booking.FindByShowtimeAndSeat(ctx, showtimeID, req.SeatNumber)
	if err != nil {
		return nil, fmt.Errorf("check seat availability: %w", err)
	}
	if existing != nil {
		return nil, ErrSeatTaken
	}

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ShowtimeID: showtimeID,
		SeatNumber: req.SeatNumber,
		UserID:     req.UserID,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		// A concurrent booking won the race for this seat. Same answer
		// as the pre-check.
		if database.IsUniqueViolation(err) {
			return nil, ErrSeatTaken
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("showtime_id", booking.ShowtimeID.String()),
		zap.Int("seat_number", booking.SeatNumber),
		zap.String("user_id", booking.UserID),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookingsByShowtime(ctx context.Context, showtimeID string) ([]response.BookingResponse, error) {
	if _, err := s.showtime.GetShowtimeByID(ctx, showtimeID); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, notFoundf("Showtime with ID %s not found", showtimeID)
	}

	bookings, err := s.repo.Booking.FindByShowtimeID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return bookingResponses, nil
}
