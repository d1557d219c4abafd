package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"rolsa/internal/models"
	"rolsa/internal/service"
	"rolsa/internal/session"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID  int
	registerErr error
	user        *models.User
	authErr     error

	lastRegister service.RegisterParams
	lastLogin    service.LoginParams
}

func (m *mockAuth) Register(_ context.Context, p service.RegisterParams) (int, error) {
	m.lastRegister = p
	return m.registerID, m.registerErr
}

func (m *mockAuth) Authenticate(_ context.Context, p service.LoginParams) (*models.User, error) {
	m.lastLogin = p
	return m.user, m.authErr
}

type mockEnergy struct {
	overview  models.EnergyOverview
	recordErr error
	err       error

	recordCalls int
	lastParams  service.EnergyParams
}

func (m *mockEnergy) RecordUsage(_ context.Context, p service.EnergyParams) (models.EnergyRecord, error) {
	m.recordCalls++
	m.lastParams = p
	if m.recordErr != nil {
		return models.EnergyRecord{}, m.recordErr
	}
	return models.EnergyRecord{ID: 1, Appliance: p.Appliance, DailyKWh: p.DailyKWh, MonthlyKWh: p.DailyKWh * 30}, nil
}

func (m *mockEnergy) EnergyOverview(context.Context) (models.EnergyOverview, error) {
	return m.overview, m.err
}

type mockCarbon struct {
	overview  models.CarbonOverview
	recordErr error
	err       error

	recordCalls int
	lastParams  service.CarbonParams
}

func (m *mockCarbon) RecordActivity(_ context.Context, p service.CarbonParams) (models.CarbonRecord, error) {
	m.recordCalls++
	m.lastParams = p
	if m.recordErr != nil {
		return models.CarbonRecord{}, m.recordErr
	}
	return models.CarbonRecord{ID: 1, Activity: p.Activity, Amount: p.Amount}, nil
}

func (m *mockCarbon) CarbonOverview(context.Context) (models.CarbonOverview, error) {
	return m.overview, m.err
}

type mockSummary struct {
	totals models.Totals
	err    error
}

func (m *mockSummary) Totals(context.Context) (models.Totals, error) {
	return m.totals, m.err
}

type mockBooking struct {
	booked  models.Booking
	bookErr error
	stored  map[int]models.Booking

	bookCalls  int
	lastUserID int
	lastParams service.BookingParams
}

func (m *mockBooking) Book(_ context.Context, userID int, p service.BookingParams) (models.Booking, error) {
	m.bookCalls++
	m.lastUserID = userID
	m.lastParams = p
	return m.booked, m.bookErr
}

func (m *mockBooking) GetBooking(_ context.Context, userID, id int) (*models.Booking, error) {
	b, ok := m.stored[id]
	if !ok || b.UserID != userID {
		return nil, service.ErrBookingNotFound
	}
	return &b, nil
}

func (m *mockBooking) BookableServices() []string {
	return []string{"Solar panel installation", "EV charger installation"}
}

type mockNotification struct {
	err    error
	calls  int
	lastTo string
}

func (m *mockNotification) SendBookingConfirmation(context.Context, models.User, models.Booking) error {
	return m.err
}

func (m *mockNotification) EmailEnergySummary(_ context.Context, to string) error {
	m.calls++
	m.lastTo = to
	return m.err
}

func (m *mockNotification) EmailCarbonSummary(_ context.Context, to string) error {
	m.calls++
	m.lastTo = to
	return m.err
}

// ---- Shared Test Helpers ----

const testSecret = "test-secret"

func newTestSessions() *session.Manager {
	return session.NewManager(testSecret, "rolsa_session", time.Hour, false)
}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, Options{Sessions: newTestSessions()})
	return h.InitRoutes()
}

// sessionCookie returns a cookie signed in as u.
func sessionCookie(t *testing.T, u session.User) *http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if err := newTestSessions().Issue(c, u); err != nil {
		t.Fatalf("issue session: %v", err)
	}
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "rolsa_session" {
			return ck
		}
	}
	t.Fatalf("no session cookie issued")
	return nil
}

func postForm(path string, form url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	return req
}

func get(path string, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	return req
}

// flashFrom decodes the flash cookie set on a response.
func flashFrom(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var flash *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "rolsa_flash" && ck.Value != "" {
			flash = ck
		}
	}
	if flash == nil {
		return ""
	}
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(flash)
	return newTestSessions().PopFlash(c)
}
