package repository

import (
	"context"
	"fmt"
	"time"

	"photodesk/internal/data/entity"
	"photodesk/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindInRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error)
	FindConfirmedInRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error)
	FindByCreator(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByCreator(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
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

const bookingColumns = `id, title, start_time, end_time, status, address, address_lat, address_lng,
       distance_km, travel_minutes, notes, created_by, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Title,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.Address,
		&booking.AddressLat,
		&booking.AddressLng,
		&booking.DistanceKm,
		&booking.TravelMinutes,
		&booking.Notes,
		&booking.CreatedBy,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, title, start_time, end_time, status, address, address_lat,
		                      address_lng, distance_km, travel_minutes, notes, created_by,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Title,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.Address,
		booking.AddressLat,
		booking.AddressLng,
		booking.DistanceKm,
		booking.TravelMinutes,
		booking.Notes,
		booking.CreatedBy,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND deleted_at IS NULL`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindInRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE start_time < $2 AND end_time > $1 AND deleted_at IS NULL
		ORDER BY start_time
	`

	return r.queryBookings(ctx, query, from, to)
}

func (r *bookingRepository) FindConfirmedInRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE start_time < $2 AND end_time > $1
		  AND status IN ('CONFIRMED', 'PENCILED')
		  AND deleted_at IS NULL
		ORDER BY start_time
	`

	return r.queryBookings(ctx, query, from, to)
}

func (r *bookingRepository) FindByCreator(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE created_by = $1 AND deleted_at IS NULL
		ORDER BY start_time DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryBookings(ctx, query, userID, limit, offset)
}

func (r *bookingRepository) CountByCreator(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE created_by = $1 AND deleted_at IS NULL`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by creator",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by creator %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET title = $2, start_time = $3, end_time = $4, status = $5, address = $6,
		    address_lat = $7, address_lng = $8, distance_km = $9, travel_minutes = $10,
		    notes = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Title,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.Address,
		booking.AddressLat,
		booking.AddressLng,
		booking.DistanceKm,
		booking.TravelMinutes,
		booking.Notes,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE bookings SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query bookings", zap.Error(err))
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}
