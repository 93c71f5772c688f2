package services

import (
	"github.com/odihna/balance-backend/models"
	"github.com/odihna/balance-backend/utils"
)

// ValuationService converts reservations into COP settlement amounts and
// splits them into commission and owner payout. Every method is pure: the
// global rates come in as parameters and nothing is cached between calls,
// so a freshly synced data set always re-prices from scratch.
type ValuationService struct{}

// NewValuationService creates a new valuation service
func NewValuationService() *ValuationService {
	return &ValuationService{}
}

// PayoutSplit is the commission/owner split of one reservation, in COP.
type PayoutSplit struct {
	LocalAmount float64
	Commission  float64
	OwnerPayout float64
}

// EffectiveRate picks the fallback USD->COP rate for reservations without a
// captured rate of their own: the minimum of the manual payout rate and the
// market rate, so a swing in either never overpays the owner. A zero market
// rate (not yet fetched) leaves the manual rate in charge.
func (s *ValuationService) EffectiveRate(rates models.Rates) float64 {
	if rates.MarketRate > 0 {
		return utils.Min(rates.ManualRate, rates.MarketRate)
	}
	return rates.ManualRate
}

// LocalValue returns the COP settlement amount of a reservation.
//
// Monthly leases settle at their stored total. Airbnb Standard reservations
// convert from USD, preferring the rate captured when the booking was
// entered; legacy records without one fall back to the protective minimum
// of the two global rates. Everything else is already COP.
func (s *ValuationService) LocalValue(res *models.Reservation, rates models.Rates) float64 {
	switch res.EffectiveType() {
	case models.Monthly:
		return res.TotalAmount
	case models.Standard:
		if res.Platform == models.PlatformAirbnb && res.USDAmount > 0 {
			if res.ExchangeRate > 0 {
				return utils.Round(res.USDAmount * res.ExchangeRate)
			}
			return utils.Round(res.USDAmount * s.EffectiveRate(rates))
		}
	}
	return res.TotalAmount
}

// SplitPayout computes the commission/owner split for a reservation.
//
// Standard reservations pay the property's percentage commission on the COP
// value. Monthly leases invert the arithmetic: the owner receives the stored
// expenses+owner-pay figure and the operator keeps whatever is left, which
// can legitimately be negative on a loss-making lease - it is reported
// as-is, never clamped.
func (s *ValuationService) SplitPayout(res *models.Reservation, prop *models.Property, rates models.Rates) PayoutSplit {
	local := s.LocalValue(res, rates)

	if res.EffectiveType() == models.Monthly {
		ownerPayout := res.MonthlyExpensesAndOwnerPay
		return PayoutSplit{
			LocalAmount: local,
			Commission:  utils.Round(res.TotalAmount - ownerPayout),
			OwnerPayout: ownerPayout,
		}
	}

	commission := utils.Round(local * (prop.CommissionRate / 100))
	return PayoutSplit{
		LocalAmount: local,
		Commission:  commission,
		OwnerPayout: local - commission,
	}
}

// SplitPayoutAtRate is SplitPayout with the COP value re-priced at an
// alternate liquidation rate. Commission stays computed on the original
// value - the deal as struck - while the owner payout reflects the
// alternate conversion. Non-Airbnb and Monthly reservations are unaffected.
func (s *ValuationService) SplitPayoutAtRate(res *models.Reservation, prop *models.Property, rates models.Rates, altRate float64) PayoutSplit {
	split := s.SplitPayout(res, prop, rates)
	if !s.IsRepriceable(res) {
		return split
	}

	liquidationLocal := utils.Round(res.USDAmount * altRate)
	return PayoutSplit{
		LocalAmount: liquidationLocal,
		Commission:  split.Commission,
		OwnerPayout: liquidationLocal - split.Commission,
	}
}

// IsRepriceable reports whether a reservation's payout changes under an
// alternate liquidation rate.
func (s *ValuationService) IsRepriceable(res *models.Reservation) bool {
	return res.EffectiveType() == models.Standard &&
		res.Platform == models.PlatformAirbnb &&
		res.USDAmount > 0
}
