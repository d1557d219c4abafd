package service

import (
	"context"
	"sync"

	"rolsa/internal/mailer"
	"rolsa/internal/models"
)

// mockUsers is a lightweight in-test mock for repository.Users.
type mockUsers struct {
	CreateFn     func(u models.User) (int, error)
	GetByEmailFn func(email string) (*models.User, error)
	GetByIDFn    func(id int) (*models.User, error)

	created []models.User
}

func (m *mockUsers) Create(_ context.Context, u models.User) (int, error) {
	m.created = append(m.created, u)
	return m.CreateFn(u)
}

func (m *mockUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return m.GetByEmailFn(email)
}

func (m *mockUsers) GetByID(_ context.Context, id int) (*models.User, error) {
	return m.GetByIDFn(id)
}

type mockEnergyRepo struct {
	records []models.EnergyRecord
	err     error
	totals  models.EnergyTotals
}

func (m *mockEnergyRepo) Create(_ context.Context, r models.EnergyRecord) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.records = append(m.records, r)
	return len(m.records), nil
}

func (m *mockEnergyRepo) List(context.Context) ([]models.EnergyRecord, error) {
	return m.records, m.err
}

func (m *mockEnergyRepo) Totals(context.Context) (models.EnergyTotals, error) {
	return m.totals, m.err
}

type mockCarbonRepo struct {
	records []models.CarbonRecord
	err     error
	total   float64
}

func (m *mockCarbonRepo) Create(_ context.Context, r models.CarbonRecord) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.records = append(m.records, r)
	return len(m.records), nil
}

func (m *mockCarbonRepo) List(context.Context) ([]models.CarbonRecord, error) {
	return m.records, m.err
}

func (m *mockCarbonRepo) TotalCO2(context.Context) (float64, error) {
	return m.total, m.err
}

type mockBookingRepo struct {
	byID    map[int]models.Booking
	created []models.Booking
	err     error
}

func (m *mockBookingRepo) Create(_ context.Context, b models.Booking) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.created = append(m.created, b)
	id := len(m.created)
	if m.byID == nil {
		m.byID = map[int]models.Booking{}
	}
	b.ID = id
	m.byID[id] = b
	return id, nil
}

func (m *mockBookingRepo) GetByID(_ context.Context, id int) (*models.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	b, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// mockMailer records messages and fails with err when set.
type mockMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (m *mockMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type countingRecorder struct {
	created map[string]int
	emails  map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{created: map[string]int{}, emails: map[string]int{}}
}

func (r *countingRecorder) RecordCreated(kind string) { r.created[kind]++ }

func (r *countingRecorder) RecordEmail(kind string, err error) {
	status := "sent"
	if err != nil {
		status = "failed"
	}
	r.emails[kind+"/"+status]++
}
