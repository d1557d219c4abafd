package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"rolsa/internal/calculator"
	"rolsa/internal/logger"
	"rolsa/internal/mailer"
	"rolsa/internal/models"
	"rolsa/internal/repository"
	"rolsa/internal/validation"
)

type Authorization interface {
	Register(ctx context.Context, p RegisterParams) (int, error)
	Authenticate(ctx context.Context, p LoginParams) (*models.User, error)
}

// Energy records appliance usage and reports the running totals.
type Energy interface {
	RecordUsage(ctx context.Context, p EnergyParams) (models.EnergyRecord, error)
	EnergyOverview(ctx context.Context) (models.EnergyOverview, error)
}

// Carbon records activities and reports the emitted CO2.
type Carbon interface {
	RecordActivity(ctx context.Context, p CarbonParams) (models.CarbonRecord, error)
	CarbonOverview(ctx context.Context) (models.CarbonOverview, error)
}

type Summary interface {
	Totals(ctx context.Context) (models.Totals, error)
}

type Booking interface {
	Book(ctx context.Context, userID int, p BookingParams) (models.Booking, error)
	GetBooking(ctx context.Context, userID, id int) (*models.Booking, error)
	BookableServices() []string
}

// Notification formats and sends the outgoing emails.
type Notification interface {
	SendBookingConfirmation(ctx context.Context, u models.User, b models.Booking) error
	EmailEnergySummary(ctx context.Context, to string) error
	EmailCarbonSummary(ctx context.Context, to string) error
}

// Recorder receives business counters; metrics.Metrics implements it.
type Recorder interface {
	RecordCreated(kind string)
	RecordEmail(kind string, err error)
}

type nopRecorder struct{}

func (nopRecorder) RecordCreated(string)      {}
func (nopRecorder) RecordEmail(string, error) {}

// Options carries the non-repository dependencies.
type Options struct {
	Mailer           mailer.Mailer
	Factors          calculator.EmissionFactors
	SummaryRecipient string
	Recorder         Recorder
	Log              *logger.Logger
}

func (o *Options) setDefaults() {
	if o.Factors == nil {
		o.Factors = calculator.DefaultEmissionFactors()
	}
	if o.Recorder == nil {
		o.Recorder = nopRecorder{}
	}
	if o.Log == nil {
		o.Log = logger.Nop()
	}
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Energy
	Carbon
	Summary
	Booking
	Notification
}

func NewService(repos *repository.Repository, opts Options) *Service {
	opts.setDefaults()
	v := validation.New()

	energy := NewEnergyService(repos.Energy, v, opts.Recorder)
	carbon := NewCarbonService(repos.Carbon, v, opts.Factors, opts.Recorder, opts.Log)
	notify := NewNotificationService(opts.Mailer, energy, carbon, v, opts.SummaryRecipient, opts.Recorder)

	return &Service{
		Authorization: NewAuthService(repos.Users, v, opts.Recorder),
		Energy:        energy,
		Carbon:        carbon,
		Summary:       NewSummaryService(repos.Energy, repos.Carbon),
		Booking:       NewBookingService(repos.Bookings, repos.Users, notify, v, opts.Recorder),
		Notification:  notify,
	}
}

// validate runs struct validation and turns the first failure into an InputError.
func validate(v *validator.Validate, p any) error {
	if err := v.Struct(p); err != nil {
		return &InputError{Msg: validation.Message(err)}
	}
	return nil
}
