package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"rolsa/internal/calculator"
	"rolsa/internal/logger"
	"rolsa/internal/models"
	"rolsa/internal/repository"
)

const kindCarbon = "carbon"

type CarbonService struct {
	repo     repository.CarbonRepo
	validate *validator.Validate
	factors  calculator.EmissionFactors
	rec      Recorder
	log      *logger.Logger
}

func NewCarbonService(repo repository.CarbonRepo, v *validator.Validate, factors calculator.EmissionFactors,
	rec Recorder, log *logger.Logger) *CarbonService {
	return &CarbonService{repo: repo, validate: v, factors: factors, rec: rec, log: log}
}

// RecordActivity converts the amount to kg CO2 and stores one row.
// Activities without a factor are stored with zero emissions.
func (s *CarbonService) RecordActivity(ctx context.Context, p CarbonParams) (models.CarbonRecord, error) {
	p.Activity = strings.ToLower(trimmed(p.Activity))
	if err := requireFinite(p.Amount); err != nil {
		return models.CarbonRecord{}, err
	}
	if err := validate(s.validate, p); err != nil {
		return models.CarbonRecord{}, err
	}

	if _, ok := s.factors.Factor(p.Activity); !ok {
		s.log.Warnw("carbon_unknown_activity", "activity", p.Activity)
	}
	rec := models.CarbonRecord{
		Activity: p.Activity,
		Amount:   p.Amount,
		Unit:     calculator.UnitFor(p.Activity),
		CO2Kg:    s.factors.CO2Kg(p.Activity, p.Amount),
	}
	if err := requireFinite(rec.CO2Kg); err != nil {
		return models.CarbonRecord{}, err
	}

	id, err := s.repo.Create(ctx, rec)
	if err != nil {
		return models.CarbonRecord{}, err
	}
	rec.ID = id
	s.rec.RecordCreated(kindCarbon)
	return rec, nil
}

func (s *CarbonService) CarbonOverview(ctx context.Context) (models.CarbonOverview, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return models.CarbonOverview{}, err
	}
	total, err := s.repo.TotalCO2(ctx)
	if err != nil {
		return models.CarbonOverview{}, err
	}
	return models.CarbonOverview{
		Records:  records,
		TotalCO2: calculator.Round2(total),
	}, nil
}

func trimmed(s string) string { return strings.TrimSpace(s) }
