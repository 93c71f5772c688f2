package services

import (
	"github.com/odihna/balance-backend/models"
	"github.com/odihna/balance-backend/utils"
)

// LiquidationService runs the what-if recalculation: what would each owner's
// payout be if the USD-settled reservations were converted at an alternate
// rate instead of the rates they were priced with. It is a pure projection
// over the stored data; nothing is persisted or mutated.
type LiquidationService struct {
	valuation *ValuationService
}

// NewLiquidationService creates a new liquidation service
func NewLiquidationService(valuation *ValuationService) *LiquidationService {
	return &LiquidationService{valuation: valuation}
}

// RecalculateAtRate compares every owner's payout under the stored pricing
// against the same reservations re-priced at altRate. Commission stays
// anchored to the original COP value, so only the owner side of the split
// moves. The optional window filters by check-in date; excluded reservations
// are left out of both columns.
//
// Reservations the alternate rate cannot touch (COP platforms, Monthly
// leases, no USD amount) pass through with the same payout in both columns,
// so an owner's two totals stay comparable side by side and an owner with no
// USD reservations shows a zero difference. AffectedCount counts only the
// re-priced reservations. Difference is liquidation minus original: positive
// means the owner gains under the alternate rate.
func (s *LiquidationService) RecalculateAtRate(properties []models.Property, reservations []models.Reservation, altRate float64, window models.DateWindow, excluded map[string]bool, rates models.Rates) map[string]*models.LiquidationEntry {
	propIndex := indexProperties(properties)
	entries := make(map[string]*models.LiquidationEntry)

	for i := range reservations {
		res := &reservations[i]
		if excluded[res.ID] || !inWindow(res.CheckInDate, window) {
			continue
		}
		prop, ok := propIndex[res.PropertyID]
		if !ok {
			continue
		}

		original := s.valuation.SplitPayout(res, prop, rates)
		repriced := original
		repriceable := s.valuation.IsRepriceable(res)
		if repriceable {
			repriced = s.valuation.SplitPayoutAtRate(res, prop, rates, altRate)
		}

		entry, ok := entries[prop.OwnerName]
		if !ok {
			entry = &models.LiquidationEntry{OwnerName: prop.OwnerName}
			entries[prop.OwnerName] = entry
		}
		entry.OriginalPayout = utils.Round(entry.OriginalPayout + original.OwnerPayout)
		entry.LiquidationPayout = utils.Round(entry.LiquidationPayout + repriced.OwnerPayout)
		entry.Difference = entry.LiquidationPayout - entry.OriginalPayout
		if repriceable {
			entry.AffectedCount++
		}
	}
	return entries
}

// inWindow reports whether a YYYY-MM-DD date falls inside an inclusive
// window. An empty side of the window is open-ended.
func inWindow(date string, window models.DateWindow) bool {
	if window.Start != "" && date < window.Start {
		return false
	}
	if window.End != "" && date > window.End {
		return false
	}
	return true
}
