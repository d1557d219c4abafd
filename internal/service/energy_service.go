package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"rolsa/internal/calculator"
	"rolsa/internal/models"
	"rolsa/internal/repository"
)

const kindEnergy = "energy"

type EnergyService struct {
	repo     repository.EnergyRepo
	validate *validator.Validate
	rec      Recorder
}

func NewEnergyService(repo repository.EnergyRepo, v *validator.Validate, rec Recorder) *EnergyService {
	return &EnergyService{repo: repo, validate: v, rec: rec}
}

// RecordUsage derives monthly kWh from the daily figure and stores one row.
func (s *EnergyService) RecordUsage(ctx context.Context, p EnergyParams) (models.EnergyRecord, error) {
	rec, err := s.buildRecord(p)
	if err != nil {
		return models.EnergyRecord{}, err
	}

	id, err := s.repo.Create(ctx, rec)
	if err != nil {
		return models.EnergyRecord{}, err
	}
	rec.ID = id
	s.rec.RecordCreated(kindEnergy)
	return rec, nil
}

func (s *EnergyService) buildRecord(p EnergyParams) (models.EnergyRecord, error) {
	p.Appliance = trimmed(p.Appliance)
	if err := requireFinite(p.DailyKWh, p.Watts, p.HoursPerDay); err != nil {
		return models.EnergyRecord{}, err
	}
	if err := validate(s.validate, p); err != nil {
		return models.EnergyRecord{}, err
	}

	rec := models.EnergyRecord{Appliance: p.Appliance}
	switch {
	case p.DailyKWh > 0:
		rec.DailyKWh = p.DailyKWh
	case p.Watts > 0 && p.HoursPerDay > 0:
		watts, hours := p.Watts, p.HoursPerDay
		rec.Watts, rec.Hours = &watts, &hours
		rec.DailyKWh = calculator.DailyKWhFromWatts(watts, hours)
	default:
		return models.EnergyRecord{}, invalidf("Enter daily kWh greater than 0, or watts and hours per day")
	}
	rec.MonthlyKWh = calculator.MonthlyKWh(rec.DailyKWh)
	if err := requireFinite(rec.DailyKWh, rec.MonthlyKWh); err != nil {
		return models.EnergyRecord{}, err
	}
	return rec, nil
}

// EnergyOverview lists every record, newest first, with rounded totals.
func (s *EnergyService) EnergyOverview(ctx context.Context) (models.EnergyOverview, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return models.EnergyOverview{}, err
	}
	totals, err := s.repo.Totals(ctx)
	if err != nil {
		return models.EnergyOverview{}, err
	}
	return models.EnergyOverview{
		Records: records,
		Totals:  roundTotals(totals),
	}, nil
}

func roundTotals(t models.EnergyTotals) models.EnergyTotals {
	return models.EnergyTotals{
		TotalDaily:   calculator.Round2(t.TotalDaily),
		TotalMonthly: calculator.Round2(t.TotalMonthly),
	}
}
