package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"rolsa/internal/models"
)

type EnergyRepository struct {
	db *sqlx.DB
}

func NewEnergyRepository(db *sqlx.DB) *EnergyRepository {
	return &EnergyRepository{db: db}
}

var _ EnergyRepo = (*EnergyRepository)(nil)

const (
	insertEnergySQL = `
		INSERT INTO energy_usage (appliance, watts, hours, daily_kwh, monthly_kwh, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	// id breaks ties between rows written within the same clock tick
	listEnergySQL = `
		SELECT id, appliance, watts, hours, daily_kwh, monthly_kwh, created_at
		FROM energy_usage ORDER BY created_at DESC, id DESC
	`
	energyTotalsSQL = `
		SELECT COALESCE(SUM(daily_kwh), 0) AS total_daily, COALESCE(SUM(monthly_kwh), 0) AS total_monthly
		FROM energy_usage
	`
)

func (r *EnergyRepository) Create(ctx context.Context, rec models.EnergyRecord) (int, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, insertEnergySQL,
		rec.Appliance, rec.Watts, rec.Hours, rec.DailyKWh, rec.MonthlyKWh, rec.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert energy record %q: %w", rec.Appliance, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for energy record: %w", err)
	}
	return int(id), nil
}

// List returns every energy record, newest first.
func (r *EnergyRepository) List(ctx context.Context) ([]models.EnergyRecord, error) {
	out := make([]models.EnergyRecord, 0, 16)
	if err := r.db.SelectContext(ctx, &out, listEnergySQL); err != nil {
		return nil, fmt.Errorf("list energy records: %w", err)
	}
	return out, nil
}

// Totals sums daily and monthly kWh. An empty table yields zeros.
func (r *EnergyRepository) Totals(ctx context.Context) (models.EnergyTotals, error) {
	var t models.EnergyTotals
	if err := r.db.GetContext(ctx, &t, energyTotalsSQL); err != nil {
		return models.EnergyTotals{}, fmt.Errorf("sum energy records: %w", err)
	}
	return t, nil
}
