package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"rolsa/internal/models"
)

// ErrDuplicate is returned when an insert violates a UNIQUE constraint.
var ErrDuplicate = errors.New("duplicate record")

type Users interface {
	Create(ctx context.Context, u models.User) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type EnergyRepo interface {
	Create(ctx context.Context, r models.EnergyRecord) (int, error)
	List(ctx context.Context) ([]models.EnergyRecord, error)
	Totals(ctx context.Context) (models.EnergyTotals, error)
}

type CarbonRepo interface {
	Create(ctx context.Context, r models.CarbonRecord) (int, error)
	List(ctx context.Context) ([]models.CarbonRecord, error)
	TotalCO2(ctx context.Context) (float64, error)
}

type BookingRepo interface {
	Create(ctx context.Context, b models.Booking) (int, error)
	GetByID(ctx context.Context, id int) (*models.Booking, error)
}

type Repository struct {
	Users    Users
	Energy   EnergyRepo
	Carbon   CarbonRepo
	Bookings BookingRepo
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Energy:   NewEnergyRepository(db),
		Carbon:   NewCarbonRepository(db),
		Bookings: NewBookingRepository(db),
	}
}
