package service

import (
	"context"

	"rolsa/internal/calculator"
	"rolsa/internal/models"
	"rolsa/internal/repository"
)

// SummaryService combines the energy and carbon aggregates.
type SummaryService struct {
	energy repository.EnergyRepo
	carbon repository.CarbonRepo
}

func NewSummaryService(energy repository.EnergyRepo, carbon repository.CarbonRepo) *SummaryService {
	return &SummaryService{energy: energy, carbon: carbon}
}

func (s *SummaryService) Totals(ctx context.Context) (models.Totals, error) {
	energy, err := s.energy.Totals(ctx)
	if err != nil {
		return models.Totals{}, err
	}
	co2, err := s.carbon.TotalCO2(ctx)
	if err != nil {
		return models.Totals{}, err
	}
	return models.Totals{
		Energy:   roundTotals(energy),
		TotalCO2: calculator.Round2(co2),
	}, nil
}
