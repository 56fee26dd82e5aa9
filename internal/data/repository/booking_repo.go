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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByShowtimeAndSeat(ctx context.Context, showtimeID uuid.UUID, seatNumber int) (*entity.Booking, error)
	FindByShowtimeID(ctx context.Context, showtimeID uuid.UUID) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, showtime_id, seat_number, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.ShowtimeID,
		booking.SeatNumber,
		booking.UserID,
		booking.CreatedAt,
	)

	if err != nil {
		// Unique violations happen when two requests race for one seat,
		// the caller translates them. Log the rest.
		if !database.IsUniqueViolation(err) {
			r.log.Error("Failed to create booking",
				zap.Error(err),
				zap.String("showtime_id", booking.ShowtimeID.String()),
				zap.Int("seat_number", booking.SeatNumber),
			)
		}
		return fmt.Errorf("create booking for showtime %s seat %d: %w",
			booking.ShowtimeID.String(), booking.SeatNumber, err)
	}

	return nil
}

func (r *bookingRepository) FindByShowtimeAndSeat(ctx context.Context, showtimeID uuid.UUID, seatNumber int) (*entity.Booking, error) {
	query := `
		SELECT id, showtime_id, seat_number, user_id, created_at
		FROM bookings
		WHERE showtime_id = $1 AND seat_number = $2
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, showtimeID, seatNumber).Scan(
		&booking.ID,
		&booking.ShowtimeID,
		&booking.SeatNumber,
		&booking.UserID,
		&booking.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by showtime and seat",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
			zap.Int("seat_number", seatNumber),
		)
		return nil, fmt.Errorf("find booking for showtime %s seat %d: %w",
			showtimeID.String(), seatNumber, err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByShowtimeID(ctx context.Context, showtimeID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT id, showtime_id, seat_number, user_id, created_at
		FROM bookings
		WHERE showtime_id = $1
		ORDER BY seat_number
	`

	rows, err := r.db.Query(ctx, query, showtimeID)
	if err != nil {
		r.log.Error("Failed to find bookings by showtime",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, fmt.Errorf("find bookings by showtime %s: %w", showtimeID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.ShowtimeID,
			&booking.SeatNumber,
			&booking.UserID,
			&booking.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate bookings for showtime %s: %w", showtimeID.String(), err)
	}

	return bookings, nil
}
