package services

import "github.com/odihna/balance-backend/models"

// RateService handles the global USD->COP rate settings. The engine never
// reads these itself; handlers fetch them here and pass them down, so a
// request can always override them for what-if runs.
type RateService struct {
	rates RateStore
}

// NewRateService creates a new rate service
func NewRateService(rates RateStore) *RateService {
	return &RateService{rates: rates}
}

// GetRates returns the stored rates
func (s *RateService) GetRates() (models.Rates, error) {
	return s.rates.Get()
}

// UpdateRates stores new rates. MarketRate zero means "not fetched yet" and
// leaves the manual rate as the sole fallback.
func (s *RateService) UpdateRates(req *models.UpdateRatesRequest) (models.Rates, error) {
	rates := models.Rates{ManualRate: req.ManualRate, MarketRate: req.MarketRate}
	if err := s.rates.Update(rates); err != nil {
		return models.Rates{}, err
	}
	return rates, nil
}

// Resolve returns the request-supplied rates when present, falling back to
// the stored settings otherwise.
func (s *RateService) Resolve(override models.Rates) (models.Rates, error) {
	if override.ManualRate > 0 {
		return override, nil
	}
	return s.rates.Get()
}
