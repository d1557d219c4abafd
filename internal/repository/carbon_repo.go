package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"rolsa/internal/models"
)

type CarbonRepository struct {
	db *sqlx.DB
}

func NewCarbonRepository(db *sqlx.DB) *CarbonRepository {
	return &CarbonRepository{db: db}
}

var _ CarbonRepo = (*CarbonRepository)(nil)

const (
	insertCarbonSQL = `
		INSERT INTO carbon_footprint (activity, amount, unit, co2_kg, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	listCarbonSQL = `
		SELECT id, activity, amount, unit, co2_kg, created_at
		FROM carbon_footprint ORDER BY created_at DESC, id DESC
	`
	carbonTotalSQL = `SELECT COALESCE(SUM(co2_kg), 0) FROM carbon_footprint`
)

func (r *CarbonRepository) Create(ctx context.Context, rec models.CarbonRecord) (int, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, insertCarbonSQL,
		rec.Activity, rec.Amount, rec.Unit, rec.CO2Kg, rec.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert carbon record %q: %w", rec.Activity, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for carbon record: %w", err)
	}
	return int(id), nil
}

// List returns every carbon record, newest first.
func (r *CarbonRepository) List(ctx context.Context) ([]models.CarbonRecord, error) {
	out := make([]models.CarbonRecord, 0, 16)
	if err := r.db.SelectContext(ctx, &out, listCarbonSQL); err != nil {
		return nil, fmt.Errorf("list carbon records: %w", err)
	}
	return out, nil
}

func (r *CarbonRepository) TotalCO2(ctx context.Context) (float64, error) {
	var total float64
	if err := r.db.GetContext(ctx, &total, carbonTotalSQL); err != nil {
		return 0, fmt.Errorf("sum carbon records: %w", err)
	}
	return total, nil
}
