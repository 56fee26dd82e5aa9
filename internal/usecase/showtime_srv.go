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

// ShowtimeService is the sole guardian of the "no overlapping screenings
// in one theater" invariant. The in-process check against existing
// showtimes is the decision rule; the database exclusion constraint on
// (theater, time range) makes it safe when concurrent creates race past
// the check.
type ShowtimeService interface {
	CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error)
	GetShowtimeByID(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error)
	UpdateShowtime(ctx context.Context, showtimeID string, req *request.ShowtimeUpdateRequest) error
	DeleteShowtime(ctx context.Context, showtimeID string) error
}

type showtimeService struct {
	repo  *repository.Repository
	movie MovieService
	log   *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, movie MovieService, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo:  repo,
		movie: movie,
		log:   log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	// Referential check runs before any range or overlap check.
	if _, err := s.movie.GetMovieByID(ctx, req.MovieID); err != nil {
		return nil, err
	}
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, notFoundf("Movie with ID %s not found", req.MovieID)
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse start time %q: %w", req.StartTime, err)
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("parse end time %q: %w", req.EndTime, err)
	}

	if !startTime.Before(endTime) {
		return nil, ErrStartNotBeforeEnd
	}

	overlap, err := s.hasOverlap(ctx, req.Theater, startTime, endTime, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrShowtimeOverlap
	}

	now := time.Now()
	showtime := &entity.Showtime{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:   movieID,
		Theater:   req.Theater,
		StartTime: startTime,
		EndTime:   endTime,
		Price:     req.Price,
	}

	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		// A concurrent create won the race for this slot. Same answer
		// as the pre-check.
		if database.IsExclusionViolation(err) {
			return nil, ErrShowtimeOverlap
		}
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	s.log.Info("Showtime created",
		zap.String("showtime_id", showtime.ID.String()),
		zap.String("movie_id", showtime.MovieID.String()),
		zap.String("theater", showtime.Theater),
		zap.Time("start_time", showtime.StartTime),
		zap.Time("end_time", showtime.EndTime),
	)

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) GetShowtimeByID(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error) {
	showtime, err := s.findShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) UpdateShowtime(ctx context.Context, showtimeID string, req *request.ShowtimeUpdateRequest) error {
	showtime, err := s.findShowtime(ctx, showtimeID)
	if err != nil {
		return err
	}

	if req.MovieID != nil {
		if _, err := s.movie.GetMovieByID(ctx, *req.MovieID); err != nil {
			return err
		}
		movieID, err := uuid.Parse(*req.MovieID)
		if err != nil {
			return notFoundf("Movie with ID %s not found", *req.MovieID)
		}
		showtime.MovieID = movieID
	}

	// Unsupplied fields keep their current values.
	newStartTime := showtime.StartTime
	if req.StartTime != nil {
		newStartTime, err = time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			return fmt.Errorf("parse start time %q: %w", *req.StartTime, err)
		}
	}
	newEndTime := showtime.EndTime
	if req.EndTime != nil {
		newEndTime, err = time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			return fmt.Errorf("parse end time %q: %w", *req.EndTime, err)
		}
	}
	newTheater := showtime.Theater
	if req.Theater != nil {
		newTheater = *req.Theater
	}

	// Range and overlap checks run only when a range-affecting field was
	// supplied. The overlap search covers the effective theater and
	// excludes the record being updated.
	if req.StartTime != nil || req.EndTime != nil || req.Theater != nil {
		if !newStartTime.Before(newEndTime) {
			return ErrStartNotBeforeEnd
		}

		overlap, err := s.hasOverlap(ctx, newTheater, newStartTime, newEndTime, showtime.ID)
		if err != nil {
			return err
		}
		if overlap {
			return ErrShowtimeOverlap
		}
	}

	showtime.Theater = newTheater
	showtime.StartTime = newStartTime
	showtime.EndTime = newEndTime
	if req.Price != nil {
		showtime.Price = *req.Price
	}
	showtime.UpdatedAt = time.Now()

	if err := s.repo.Showtime.Update(ctx, showtime); err != nil {
		if database.IsExclusionViolation(err) {
			return ErrShowtimeOverlap
		}
		return fmt.Errorf("update showtime: %w", err)
	}

	s.log.Info("Showtime updated",
		zap.String("showtime_id", showtime.ID.String()),
		zap.String("theater", showtime.Theater),
	)

	return nil
}

func (s *showtimeService) DeleteShowtime(ctx context.Context, showtimeID string) error {
	showtime, err := s.findShowtime(ctx, showtimeID)
	if err != nil {
		return err
	}

	// Bookings are owned by their showtime and go with it.
	if err := s.repo.Showtime.DeleteWithBookings(ctx, showtime.ID); err != nil {
		return fmt.Errorf("delete showtime: %w", err)
	}

	s.log.Info("Showtime removed",
		zap.String("showtime_id", showtime.ID.String()),
		zap.String("theater", showtime.Theater),
	)

	return nil
}

// hasOverlap reports whether any other showtime in the theater intersects
// the half-open interval [startTime, endTime). excludeID skips the record
// under update; pass uuid.Nil on create.
func (s *showtimeService) hasOverlap(ctx context.Context, theater string, startTime, endTime time.Time, excludeID uuid.UUID) (bool, error) {
	existing, err := s.repo.Showtime.FindByTheater(ctx, theater)
	if err != nil {
		return false, fmt.Errorf("check overlap in theater %s: %w", theater, err)
	}

	for _, other := range existing {
		if other.ID == excludeID {
			continue
		}
		if other.Overlaps(startTime, endTime) {
			return true, nil
		}
	}

	return false, nil
}

func (s *showtimeService) findShowtime(ctx context.Context, showtimeID string) (*entity.Showtime, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, notFoundf("Showtime with ID %s not found", showtimeID)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, notFoundf("Showtime with ID %s not found", showtimeID)
	}

	return showtime, nil
}
