package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"yoga-booking/internal/cart"
	"yoga-booking/internal/data/entity"
	"yoga-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
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
	// Items are frozen as JSONB; later catalog changes never touch them.
	items, err := json.Marshal(booking.Items)
	if err != nil {
		return fmt.Errorf("encode booking items: %w", err)
	}

	query := `
		INSERT INTO bookings (id, email, items, total_price, booking_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	err = r.db.QueryRow(ctx, query,
		booking.ID,
		booking.Email,
		items,
		booking.TotalPrice,
		booking.BookingDate,
		booking.Status,
	).Scan(&booking.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("email", booking.Email),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, email, items, total_price, booking_date, status, created_at
		FROM bookings
		WHERE id = $1
	`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, id))
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

func (r *bookingRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	query := `
		SELECT id, email, items, total_price, booking_date, status, created_at
		FROM bookings
		WHERE email = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to find bookings by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find bookings by email %s: %w", email, err)
	}
	defer rows.Close()

	return r.collectBookings(rows)
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT id, email, items, total_price, booking_date, status, created_at
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	return r.collectBookings(rows)
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2 WHERE id = $1`

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

func (r *bookingRepository) scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	var items []byte

	err := row.Scan(
		&booking.ID,
		&booking.Email,
		&items,
		&booking.TotalPrice,
		&booking.BookingDate,
		&booking.Status,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(items) > 0 {
		if err := json.Unmarshal(items, &booking.Items); err != nil {
			return nil, fmt.Errorf("decode booking items: %w", err)
		}
	}
	if booking.Items == nil {
		booking.Items = []cart.Item{}
	}

	return &booking, nil
}

func (r *bookingRepository) collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}
