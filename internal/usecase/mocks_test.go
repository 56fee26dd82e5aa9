package usecase

import (
	"context"

	"movie-reservation/internal/data/entity"
	"movie-reservation/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MockMovieRepository is a mock implementation of repository.MovieRepository
type MockMovieRepository struct {
	CreateFunc              func(ctx context.Context, movie *entity.Movie) error
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindByTitleFunc         func(ctx context.Context, title string) (*entity.Movie, error)
	FindAllFunc             func(ctx context.Context) ([]*entity.Movie, error)
	UpdateFunc              func(ctx context.Context, movie *entity.Movie) error
	DeleteWithShowtimesFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, movie)
	}
	return nil
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMovieRepository) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	if m.FindByTitleFunc != nil {
		return m.FindByTitleFunc(ctx, title)
	}
	return nil, nil
}

func (m *MockMovieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []*entity.Movie{}, nil
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, movie)
	}
	return nil
}

func (m *MockMovieRepository) DeleteWithShowtimes(ctx context.Context, id uuid.UUID) error {
	if m.DeleteWithShowtimesFunc != nil {
		return m.DeleteWithShowtimesFunc(ctx, id)
	}
	return nil
}

// MockShowtimeRepository is a mock implementation of repository.ShowtimeRepository
type MockShowtimeRepository struct {
	CreateFunc             func(ctx context.Context, showtime *entity.Showtime) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)
	FindByTheaterFunc      func(ctx context.Context, theater string) ([]*entity.Showtime, error)
	UpdateFunc             func(ctx context.Context, showtime *entity.Showtime) error
	DeleteWithBookingsFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *MockShowtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, showtime)
	}
	return nil
}

func (m *MockShowtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockShowtimeRepository) FindByTheater(ctx context.Context, theater string) ([]*entity.Showtime, error) {
	if m.FindByTheaterFunc != nil {
		return m.FindByTheaterFunc(ctx, theater)
	}
	return []*entity.Showtime{}, nil
}

func (m *MockShowtimeRepository) Update(ctx context.Context, showtime *entity.Showtime) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, showtime)
	}
	return nil
}

func (m *MockShowtimeRepository) DeleteWithBookings(ctx context.Context, id uuid.UUID) error {
	if m.DeleteWithBookingsFunc != nil {
		return m.DeleteWithBookingsFunc(ctx, id)
	}
	return nil
}

// MockBookingRepository is a mock implementation of repository.BookingRepository
type MockBookingRepository struct {
	CreateFunc                func(ctx context.Context, booking *entity.Booking) error
	FindByShowtimeAndSeatFunc func(ctx context.Context, showtimeID uuid.UUID, seatNumber int) (*entity.Booking, error)
	FindByShowtimeIDFunc      func(ctx context.Context, showtimeID uuid.UUID) ([]*entity.Booking, error)
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	return nil
}

func (m *MockBookingRepository) FindByShowtimeAndSeat(ctx context.Context, showtimeID uuid.UUID, seatNumber int) (*entity.Booking, error) {
	if m.FindByShowtimeAndSeatFunc != nil {
		return m.FindByShowtimeAndSeatFunc(ctx, showtimeID, seatNumber)
	}
	return nil, nil
}

func (m *MockBookingRepository) FindByShowtimeID(ctx context.Context, showtimeID uuid.UUID) ([]*entity.Booking, error) {
	if m.FindByShowtimeIDFunc != nil {
		return m.FindByShowtimeIDFunc(ctx, showtimeID)
	}
	return []*entity.Booking{}, nil
}

// newTestService wires the services against mock repositories.
func newTestService(movie *MockMovieRepository, showtime *MockShowtimeRepository, booking *MockBookingRepository) *Service {
	if movie == nil {
		movie = &MockMovieRepository{}
	}
	if showtime == nil {
		showtime = &MockShowtimeRepository{}
	}
	if booking == nil {
		booking = &MockBookingRepository{}
	}

	repo := &repository.Repository{
		Movie:    movie,
		Showtime: showtime,
		Booking:  booking,
	}

	return NewService(repo, zap.NewNop())
}
