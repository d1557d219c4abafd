package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"

	"github.com/go-playground/validator/v10"

	"rolsa/internal/mailer"
	"rolsa/internal/models"
)

// Email kinds, also used as metric labels.
const (
	MailBooking       = "booking"
	MailEnergySummary = "energy_summary"
	MailCarbonSummary = "carbon_summary"
)

var errNoTransport = errors.New("mail transport not configured")

const (
	bookingSubject = "Your Booking Confirmation – Rolsa"
	energySubject  = "Your Energy Usage Summary – Rolsa"
	carbonSubject  = "Your Carbon Footprint Summary – Rolsa"
)

var mailTemplates = template.Must(template.New("mail").Funcs(template.FuncMap{
	"f2": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}).Parse(`
{{- define "booking" -}}
Hi {{.User.Name}},

Your {{.Booking.Service}} has been successfully booked.
Booking reference: #{{.Booking.ID}}
Date: {{.Booking.Date}}
Time: {{.Booking.Time}}
{{- if .Booking.Notes}}
Notes: {{.Booking.Notes}}
{{- end}}

Thank you for choosing Rolsa.
{{end}}
{{- define "energy" -}}
Here is your home energy usage summary.

{{range .Records -}}
- {{.Appliance}}: {{f2 .DailyKWh}} kWh/day, {{f2 .MonthlyKWh}} kWh/month
{{else -}}
No appliances recorded yet.
{{end}}
Total daily: {{f2 .Totals.TotalDaily}} kWh
Total monthly: {{f2 .Totals.TotalMonthly}} kWh

Thank you for choosing Rolsa.
{{end}}
{{- define "carbon" -}}
Here is your carbon footprint summary.

{{range .Records -}}
- {{.Activity}}: {{f2 .Amount}} {{.Unit}} = {{f2 .CO2Kg}} kg CO2
{{else -}}
No activities recorded yet.
{{end}}
Total: {{f2 .TotalCO2}} kg CO2

Thank you for choosing Rolsa.
{{end}}`))

type energyOverviewer interface {
	EnergyOverview(ctx context.Context) (models.EnergyOverview, error)
}

type carbonOverviewer interface {
	CarbonOverview(ctx context.Context) (models.CarbonOverview, error)
}

type NotificationService struct {
	mailer           mailer.Mailer
	energy           energyOverviewer
	carbon           carbonOverviewer
	validate         *validator.Validate
	summaryRecipient string
	rec              Recorder
}

func NewNotificationService(m mailer.Mailer, energy energyOverviewer, carbon carbonOverviewer,
	v *validator.Validate, summaryRecipient string, rec Recorder) *NotificationService {
	return &NotificationService{
		mailer:           m,
		energy:           energy,
		carbon:           carbon,
		validate:         v,
		summaryRecipient: summaryRecipient,
		rec:              rec,
	}
}

func (s *NotificationService) SendBookingConfirmation(ctx context.Context, u models.User, b models.Booking) error {
	body, err := render("booking", struct {
		User    models.User
		Booking models.Booking
	}{u, b})
	if err != nil {
		return err
	}
	return s.send(ctx, MailBooking, mailer.Message{To: u.Email, Subject: bookingSubject, Body: body})
}

func (s *NotificationService) EmailEnergySummary(ctx context.Context, to string) error {
	to, err := s.recipient(to)
	if err != nil {
		return err
	}
	overview, err := s.energy.EnergyOverview(ctx)
	if err != nil {
		return err
	}
	body, err := render("energy", overview)
	if err != nil {
		return err
	}
	return s.send(ctx, MailEnergySummary, mailer.Message{To: to, Subject: energySubject, Body: body})
}

func (s *NotificationService) EmailCarbonSummary(ctx context.Context, to string) error {
	to, err := s.recipient(to)
	if err != nil {
		return err
	}
	overview, err := s.carbon.CarbonOverview(ctx)
	if err != nil {
		return err
	}
	body, err := render("carbon", overview)
	if err != nil {
		return err
	}
	return s.send(ctx, MailCarbonSummary, mailer.Message{To: to, Subject: carbonSubject, Body: body})
}

// recipient picks the form address, falling back to the configured one.
func (s *NotificationService) recipient(to string) (string, error) {
	to = normalizeEmail(to)
	if to == "" {
		to = normalizeEmail(s.summaryRecipient)
	}
	if to == "" {
		return "", ErrNoRecipient
	}
	if err := s.validate.Var(to, "email"); err != nil {
		return "", invalidf("Email must be a valid email")
	}
	return to, nil
}

func (s *NotificationService) send(ctx context.Context, kind string, msg mailer.Message) error {
	err := errNoTransport
	if s.mailer != nil {
		err = s.mailer.Send(ctx, msg)
	}
	s.rec.RecordEmail(kind, err)
	if err != nil {
		return fmt.Errorf("%w: %s email to %s: %v", ErrMailDelivery, kind, msg.To, err)
	}
	return nil
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := mailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s email: %w", name, err)
	}
	return buf.String(), nil
}
