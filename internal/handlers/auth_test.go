package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"rolsa/internal/models"
	"rolsa/internal/service"
)

func registerForm() url.Values {
	return url.Values{
		"name":     {"Alice"},
		"email":    {"alice@example.com"},
		"phone":    {"07123 456789"},
		"password": {"s3cret"},
	}
}

func TestRegister(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		wantCode  int
		wantFlash string
	}{
		{"created", nil, http.StatusSeeOther, msgRegistered},
		{"duplicate", service.ErrDuplicateEmail, http.StatusSeeOther, msgDuplicateEmail},
		{"invalid", &service.InputError{Msg: "Email must be a valid email address"}, http.StatusSeeOther, "Email must be a valid email address"},
		{"store failure", errors.New("disk full"), http.StatusInternalServerError, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{registerID: 1, registerErr: tc.err}
			r := newTestRouter(&service.Service{Authorization: auth})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, postForm("/register", registerForm()))

			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
			if got := flashFrom(t, w); got != tc.wantFlash {
				t.Fatalf("expected flash %q, got %q", tc.wantFlash, got)
			}
			if tc.wantCode == http.StatusSeeOther && w.Header().Get("Location") != "/" {
				t.Fatalf("expected redirect home, got %q", w.Header().Get("Location"))
			}
			if auth.lastRegister.Email != "alice@example.com" || auth.lastRegister.Phone != "07123 456789" {
				t.Fatalf("form not bound: %+v", auth.lastRegister)
			}
		})
	}
}

func TestLogin_Success(t *testing.T) {
	auth := &mockAuth{user: &models.User{ID: 3, Name: "Alice", Email: "alice@example.com"}}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/login", url.Values{"email": {"alice@example.com"}, "password": {"pw"}}))

	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("expected 303 home, got %d %q", w.Code, w.Header().Get("Location"))
	}
	if got := flashFrom(t, w); got != msgLoggedIn {
		t.Fatalf("expected flash %q, got %q", msgLoggedIn, got)
	}

	var session *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "rolsa_session" && ck.Value != "" {
			session = ck
		}
	}
	if session == nil {
		t.Fatalf("expected session cookie")
	}

	// the issued cookie signs the user in on the next request
	bookings := &mockBooking{}
	r = newTestRouter(&service.Service{Authorization: auth, Booking: bookings})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, get("/booking", session))
	if w.Code != http.StatusOK {
		t.Fatalf("expected booking form for signed-in user, got %d", w.Code)
	}
}

func TestLogin_HonorsNext(t *testing.T) {
	auth := &mockAuth{user: &models.User{ID: 3, Name: "Alice"}}
	r := newTestRouter(&service.Service{Authorization: auth})

	form := url.Values{"email": {"alice@example.com"}, "password": {"pw"}, "next": {"/booking"}}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/login", form))
	if got := w.Header().Get("Location"); got != "/booking" {
		t.Fatalf("expected redirect to /booking, got %q", got)
	}

	for _, next := range []string{"//evil.example/", "/\t/evil.example", "/\n/evil.example"} {
		form.Set("next", next)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, postForm("/login", form))
		if got := w.Header().Get("Location"); got != "/" {
			t.Fatalf("next %q: expected off-site next to be ignored, got %q", next, got)
		}
	}
}

func TestLogin_Failure(t *testing.T) {
	auth := &mockAuth{authErr: service.ErrInvalidCredentials}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/login", url.Values{"email": {"alice@example.com"}, "password": {"nope"}}))
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("expected 303 home, got %d %q", w.Code, w.Header().Get("Location"))
	}
	if got := flashFrom(t, w); got != msgInvalidCredentials {
		t.Fatalf("expected generic credentials flash, got %q", got)
	}
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "rolsa_session" && ck.Value != "" {
			t.Fatalf("no session expected on failed login")
		}
	}

	form := url.Values{"email": {"alice@example.com"}, "password": {"nope"}, "next": {"/booking"}}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/login", form))
	if got := w.Header().Get("Location"); got != "/?login_required=1&next=%2Fbooking" {
		t.Fatalf("expected prompt to reopen with next, got %q", got)
	}
}

func TestLogin_StoreFailure(t *testing.T) {
	auth := &mockAuth{authErr: errors.New("db closed")}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/login", url.Values{"email": {"a@b.c"}, "password": {"pw"}}))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestLogout(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, get("/logout", sessionCookie(t, sessionUser())))
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Fatalf("expected 302 home, got %d", w.Code)
	}
	cleared := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "rolsa_session" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected session cookie to be cleared")
	}
	if got := flashFrom(t, w); got != msgLoggedOut {
		t.Fatalf("expected flash %q, got %q", msgLoggedOut, got)
	}
}

func TestInvalidSessionCookieIsIgnored(t *testing.T) {
	r := newTestRouter(&service.Service{Booking: &mockBooking{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, get("/booking", &http.Cookie{Name: "rolsa_session", Value: "not-a-token"}))
	if w.Code != http.StatusFound {
		t.Fatalf("expected login redirect for forged cookie, got %d", w.Code)
	}
}
