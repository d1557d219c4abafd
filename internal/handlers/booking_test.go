package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"rolsa/internal/models"
	"rolsa/internal/service"
	"rolsa/internal/session"
)

func sessionUser() session.User {
	return session.User{ID: 7, Name: "Alice"}
}

func bookingValues() url.Values {
	return url.Values{
		"service": {"Solar panel installation"},
		"date":    {"2026-11-02"},
		"time":    {"10:30"},
		"notes":   {"Side gate is open"},
	}
}

func TestBooking_RequiresLogin(t *testing.T) {
	bookings := &mockBooking{}
	r := newTestRouter(&service.Service{Booking: bookings})

	cases := []struct {
		req  *http.Request
		next string
	}{
		{get("/booking"), "%2Fbooking"},
		{postForm("/booking", bookingValues()), "%2Fbooking"},
		{get("/booking-confirmation/5"), "%2Fbooking-confirmation%2F5"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, tc.req)
		if w.Code != http.StatusFound {
			t.Fatalf("%s %s: expected 302, got %d", tc.req.Method, tc.req.URL, w.Code)
		}
		if got := w.Header().Get("Location"); got != "/?login_required=1&next="+tc.next {
			t.Fatalf("unexpected redirect %q", got)
		}
		if w.Body.Len() != 0 && strings.Contains(w.Body.String(), "Book a service") {
			t.Fatalf("booking page must not render for anonymous users")
		}
	}
	if bookings.bookCalls != 0 {
		t.Fatalf("Book must not be called without a session")
	}
}

func TestBookingForm_ListsServices(t *testing.T) {
	r := newTestRouter(&service.Service{Booking: &mockBooking{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, get("/booking", sessionCookie(t, sessionUser())))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	for _, s := range []string{"Solar panel installation", "EV charger installation"} {
		if !strings.Contains(w.Body.String(), s) {
			t.Fatalf("expected %q option", s)
		}
	}
}

func TestCreateBooking_Success(t *testing.T) {
	bookings := &mockBooking{booked: models.Booking{ID: 42, UserID: 7, Service: "Solar panel installation"}}
	r := newTestRouter(&service.Service{Booking: bookings})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/booking", bookingValues(), sessionCookie(t, sessionUser())))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/booking-confirmation/42" {
		t.Fatalf("unexpected redirect %q", got)
	}
	if bookings.lastUserID != 7 {
		t.Fatalf("expected booking for session user 7, got %d", bookings.lastUserID)
	}
	p := bookings.lastParams
	if p.Service != "Solar panel installation" || p.Date != "2026-11-02" || p.Time != "10:30" || p.Notes != "Side gate is open" {
		t.Fatalf("form not bound: %+v", p)
	}
}

func TestCreateBooking_Errors(t *testing.T) {
	cases := []struct {
		name      string
		booked    models.Booking
		err       error
		wantCode  int
		wantLoc   string
		wantFlash string
		wantBody  string
	}{
		{
			name:      "invalid input",
			err:       &service.InputError{Msg: "Date must be a valid date (YYYY-MM-DD)"},
			wantCode:  http.StatusSeeOther,
			wantLoc:   "/booking",
			wantFlash: "Date must be a valid date (YYYY-MM-DD)",
		},
		{
			name:     "mail failure keeps booking",
			booked:   models.Booking{ID: 9, UserID: 7, Service: "EV charger installation", Date: "2026-11-02", Time: "10:30"},
			err:      fmt.Errorf("%w: smtp down", service.ErrMailDelivery),
			wantCode: http.StatusBadGateway,
			wantBody: "booking #9 for EV charger installation",
		},
		{
			name:     "account gone",
			err:      service.ErrInvalidCredentials,
			wantCode: http.StatusFound,
			wantLoc:  "/?login_required=1&next=%2Fbooking",
		},
		{
			name:     "store failure",
			err:      errors.New("disk full"),
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bookings := &mockBooking{booked: tc.booked, bookErr: tc.err}
			r := newTestRouter(&service.Service{Booking: bookings})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, postForm("/booking", bookingValues(), sessionCookie(t, sessionUser())))

			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
			if tc.wantLoc != "" && w.Header().Get("Location") != tc.wantLoc {
				t.Fatalf("expected redirect %q, got %q", tc.wantLoc, w.Header().Get("Location"))
			}
			if tc.wantFlash != "" {
				if got := flashFrom(t, w); got != tc.wantFlash {
					t.Fatalf("expected flash %q, got %q", tc.wantFlash, got)
				}
			}
			if tc.wantBody != "" && !strings.Contains(w.Body.String(), tc.wantBody) {
				t.Fatalf("expected body to mention %q", tc.wantBody)
			}
		})
	}
}

func TestBookingConfirmation(t *testing.T) {
	bookings := &mockBooking{stored: map[int]models.Booking{
		42: {ID: 42, UserID: 7, Service: "Solar panel installation", Date: "2026-11-02", Time: "10:30"},
		43: {ID: 43, UserID: 8, Service: "EV charger installation", Date: "2026-11-03", Time: "09:00"},
	}}
	r := newTestRouter(&service.Service{Booking: bookings})
	cookie := sessionCookie(t, sessionUser())

	cases := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{"/booking-confirmation/42", http.StatusOK, "Solar panel installation"},
		{"/booking-confirmation/43", http.StatusNotFound, msgBookingNotFound},
		{"/booking-confirmation/99", http.StatusNotFound, msgBookingNotFound},
		{"/booking-confirmation/abc", http.StatusNotFound, msgBookingNotFound},
		{"/booking-confirmation/-1", http.StatusNotFound, msgBookingNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, get(tc.path, cookie))
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
			if !strings.Contains(w.Body.String(), tc.wantBody) {
				t.Fatalf("expected %q in body", tc.wantBody)
			}
		})
	}
}
