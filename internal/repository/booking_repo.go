package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"rolsa/internal/models"
)

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

var _ BookingRepo = (*BookingRepository)(nil)

const (
	insertBookingSQL = `
		INSERT INTO bookings (user_id, service, date, time, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	selectBookingByIDSQL = `
		SELECT id, user_id, service, date, time, notes, created_at
		FROM bookings WHERE id = ?
	`
)

func (r *BookingRepository) Create(ctx context.Context, b models.Booking) (int, error) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, insertBookingSQL,
		b.UserID, b.Service, b.Date, b.Time, b.Notes, b.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert booking for user %d: %w", b.UserID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for booking: %w", err)
	}
	return int(id), nil
}

// GetByID fetches a booking. Returns (nil, nil) if not found.
func (r *BookingRepository) GetByID(ctx context.Context, id int) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.GetContext(ctx, &b, selectBookingByIDSQL, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select booking %d: %w", id, err)
	}
	return &b, nil
}
