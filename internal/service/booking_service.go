package service

import (
	"context"
	"slices"

	"github.com/go-playground/validator/v10"

	"rolsa/internal/models"
	"rolsa/internal/repository"
)

const kindBooking = "booking"

// bookableServices is the catalogue offered on the booking form.
var bookableServices = []string{
	"Solar panel installation",
	"EV charger installation",
	"Smart home energy setup",
	"Home energy consultation",
}

type bookingNotifier interface {
	SendBookingConfirmation(ctx context.Context, u models.User, b models.Booking) error
}

type BookingService struct {
	bookings repository.BookingRepo
	users    repository.Users
	notify   bookingNotifier
	validate *validator.Validate
	rec      Recorder
}

func NewBookingService(bookings repository.BookingRepo, users repository.Users, notify bookingNotifier,
	v *validator.Validate, rec Recorder) *BookingService {
	return &BookingService{bookings: bookings, users: users, notify: notify, validate: v, rec: rec}
}

func (s *BookingService) BookableServices() []string {
	return slices.Clone(bookableServices)
}

// Book stores the booking for userID and emails the account holder.
// When only the email fails, the stored booking is returned together with
// an error matching ErrMailDelivery.
func (s *BookingService) Book(ctx context.Context, userID int, p BookingParams) (models.Booking, error) {
	p.normalize()
	if err := validate(s.validate, p); err != nil {
		return models.Booking{}, err
	}
	if !slices.Contains(bookableServices, p.Service) {
		return models.Booking{}, invalidf("Please choose a service from the list")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.Booking{}, err
	}
	if u == nil {
		return models.Booking{}, ErrInvalidCredentials
	}

	b := models.Booking{
		UserID:  userID,
		Service: p.Service,
		Date:    p.Date,
		Time:    p.Time,
		Notes:   p.Notes,
	}
	id, err := s.bookings.Create(ctx, b)
	if err != nil {
		return models.Booking{}, err
	}
	b.ID = id
	s.rec.RecordCreated(kindBooking)

	if err := s.notify.SendBookingConfirmation(ctx, *u, b); err != nil {
		return b, err
	}
	return b, nil
}

// GetBooking returns the booking only to the user who made it.
func (s *BookingService) GetBooking(ctx context.Context, userID, id int) (*models.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil || b.UserID != userID {
		return nil, ErrBookingNotFound
	}
	return b, nil
}
