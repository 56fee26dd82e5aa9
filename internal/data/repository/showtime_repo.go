package repository

import (
	"context"
	"fmt"

	"movie-reservation/internal/data/entity"
	"movie-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)
	FindByTheater(ctx context.Context, theater string) ([]*entity.Showtime, error)
	Update(ctx context.Context, showtime *entity.Showtime) error
	DeleteWithBookings(ctx context.Context, id uuid.UUID) error
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (id, movie_id, theater, start_time, end_time, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.Theater,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Price,
		showtime.CreatedAt,
		showtime.UpdatedAt,
	)

	if err != nil {
		// Exclusion violations are expected under concurrent scheduling,
		// the caller translates them. Log the rest.
		if !database.IsExclusionViolation(err) {
			r.log.Error("Failed to create showtime",
				zap.Error(err),
				zap.String("movie_id", showtime.MovieID.String()),
				zap.String("theater", showtime.Theater),
			)
		}
		return fmt.Errorf("create showtime for movie %s theater %s: %w",
			showtime.MovieID.String(), showtime.Theater, err)
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, theater, start_time, end_time, price, created_at, updated_at
		FROM showtimes
		WHERE id = $1
	`

	var showtime entity.Showtime
	err := r.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.Theater,
		&showtime.StartTime,
		&showtime.EndTime,
		&showtime.Price,
		&showtime.CreatedAt,
		&showtime.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return nil, fmt.Errorf("find showtime by ID %s: %w", id.String(), err)
	}

	return &showtime, nil
}

func (r *showtimeRepository) FindByTheater(ctx context.Context, theater string) ([]*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, theater, start_time, end_time, price, created_at, updated_at
		FROM showtimes
		WHERE theater = $1
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, theater)
	if err != nil {
		r.log.Error("Failed to find showtimes by theater",
			zap.Error(err),
			zap.String("theater", theater),
		)
		return nil, fmt.Errorf("find showtimes by theater %s: %w", theater, err)
	}
	defer rows.Close()

	var showtimes []*entity.Showtime
	for rows.Next() {
		var showtime entity.Showtime
		err := rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.Theater,
			&showtime.StartTime,
			&showtime.EndTime,
			&showtime.Price,
			&showtime.CreatedAt,
			&showtime.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		showtimes = append(showtimes, &showtime)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate showtimes for theater %s: %w", theater, err)
	}

	return showtimes, nil
}

func (r *showtimeRepository) Update(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		UPDATE showtimes
		SET movie_id = $2, theater = $3, start_time = $4, end_time = $5, price = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.Theater,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Price,
		showtime.UpdatedAt,
	)

	if err != nil {
		if !database.IsExclusionViolation(err) {
			r.log.Error("Failed to update showtime",
				zap.Error(err),
				zap.String("showtime_id", showtime.ID.String()),
			)
		}
		return fmt.Errorf("update showtime %s: %w", showtime.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %s not found", showtime.ID.String())
	}

	return nil
}

// DeleteWithBookings removes the showtime and its bookings in one
// transaction so no orphaned bookings survive a partial failure.
func (r *showtimeRepository) DeleteWithBookings(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete showtime %s: %w", id.String(), err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM bookings WHERE showtime_id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete bookings for showtime",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return fmt.Errorf("delete bookings for showtime %s: %w", id.String(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete showtime",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return fmt.Errorf("delete showtime %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %s not found", id.String())
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete showtime %s: %w", id.String(), err)
	}

	r.log.Info("Showtime deleted", zap.String("showtime_id", id.String()))
	return nil
}
