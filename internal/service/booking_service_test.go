package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"rolsa/internal/models"
	"rolsa/internal/validation"
)

func newBookingFixture(mailErr error) (*BookingService, *mockBookingRepo, *mockMailer, *countingRecorder) {
	users := &mockUsers{GetByIDFn: func(id int) (*models.User, error) {
		if id == 7 {
			return &models.User{ID: 7, Name: "Alice", Email: "alice@example.com"}, nil
		}
		return nil, nil
	}}
	bookings := &mockBookingRepo{}
	m := &mockMailer{err: mailErr}
	rec := newCountingRecorder()
	v := validation.New()
	notify := NewNotificationService(m, nil, nil, v, "", rec)
	return NewBookingService(bookings, users, notify, v, rec), bookings, m, rec
}

func validBooking() BookingParams {
	return BookingParams{Service: "Solar panel installation", Date: "2025-04-01", Time: "09:30", Notes: "Side gate"}
}

func TestBookingService_Book_StoresAndEmails(t *testing.T) {
	svc, repo, m, rec := newBookingFixture(nil)

	b, err := svc.Book(context.Background(), 7, validBooking())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID != 1 || b.UserID != 7 || len(repo.created) != 1 {
		t.Fatalf("expected exactly one booking for user 7, got %+v (%d rows)", b, len(repo.created))
	}
	if len(m.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(m.sent))
	}
	msg := m.sent[0]
	if msg.To != "alice@example.com" || msg.Subject != bookingSubject {
		t.Fatalf("unexpected message header: %+v", msg)
	}
	for _, want := range []string{"Hi Alice,", "Your Solar panel installation has been successfully booked.",
		"Booking reference: #1", "Date: 2025-04-01", "Time: 09:30", "Notes: Side gate"} {
		if !strings.Contains(msg.Body, want) {
			t.Fatalf("expected %q in body:\n%s", want, msg.Body)
		}
	}
	if rec.created[kindBooking] != 1 || rec.emails[MailBooking+"/sent"] != 1 {
		t.Fatalf("unexpected counters: %+v %+v", rec.created, rec.emails)
	}
}

func TestBookingService_Book_MailFailureKeepsBooking(t *testing.T) {
	svc, repo, _, rec := newBookingFixture(errors.New("connection refused"))

	b, err := svc.Book(context.Background(), 7, validBooking())
	if !errors.Is(err, ErrMailDelivery) {
		t.Fatalf("expected ErrMailDelivery, got %v", err)
	}
	if b.ID != 1 || len(repo.created) != 1 {
		t.Fatalf("booking must be kept when mail fails, got %+v", b)
	}
	if rec.emails[MailBooking+"/failed"] != 1 {
		t.Fatalf("expected failed email to be counted")
	}
}

func TestBookingService_Book_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BookingParams)
	}{
		{"unknown service", func(p *BookingParams) { p.Service = "Chimney sweep" }},
		{"missing service", func(p *BookingParams) { p.Service = "" }},
		{"bad date", func(p *BookingParams) { p.Date = "01/04/2025" }},
		{"impossible date", func(p *BookingParams) { p.Date = "2025-02-30" }},
		{"bad time", func(p *BookingParams) { p.Time = "25:00" }},
		{"long notes", func(p *BookingParams) { p.Notes = strings.Repeat("x", 1001) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, m, _ := newBookingFixture(nil)
			p := validBooking()
			tt.mutate(&p)

			if _, err := svc.Book(context.Background(), 7, p); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if len(repo.created) != 0 || len(m.sent) != 0 {
				t.Fatalf("no row or email expected on invalid input")
			}
		})
	}
}

func TestBookingService_Book_UnknownUser(t *testing.T) {
	svc, repo, _, _ := newBookingFixture(nil)
	if _, err := svc.Book(context.Background(), 99, validBooking()); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("no row expected for unknown user")
	}
}

func TestBookingService_GetBooking(t *testing.T) {
	svc, _, _, _ := newBookingFixture(nil)
	b, err := svc.Book(context.Background(), 7, validBooking())
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	got, err := svc.GetBooking(context.Background(), 7, b.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Service != "Solar panel installation" || got.Date != "2025-04-01" || got.Time != "09:30" || got.Notes != "Side gate" {
		t.Fatalf("unexpected booking: %+v", got)
	}

	if _, err := svc.GetBooking(context.Background(), 8, b.ID); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("other users must not see the booking, got %v", err)
	}
	if _, err := svc.GetBooking(context.Background(), 7, 404); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound for missing id, got %v", err)
	}
}

func TestBookingService_BookableServicesIsACopy(t *testing.T) {
	svc, _, _, _ := newBookingFixture(nil)
	list := svc.BookableServices()
	list[0] = "changed"
	if svc.BookableServices()[0] == "changed" {
		t.Fatalf("catalogue must not be mutable through the returned slice")
	}
}
