package services

import (
	"strings"

	"github.com/odihna/balance-backend/models"
	"github.com/odihna/balance-backend/utils"
)

// ReportService aggregates reservations into per-owner revenue, commission
// and payout totals over a time window. It never mutates its inputs and
// recomputes everything on each call.
type ReportService struct {
	valuation *ValuationService
}

// NewReportService creates a new report service
func NewReportService(valuation *ValuationService) *ReportService {
	return &ReportService{valuation: valuation}
}

// MonthlyStats computes the dashboard totals for one calendar month.
// A reservation belongs to the month its check-in date starts in, even when
// the stay crosses the month boundary.
func (s *ReportService) MonthlyStats(properties []models.Property, reservations []models.Reservation, month string, rates models.Rates) models.MonthlyStats {
	propIndex := indexProperties(properties)

	var stats models.MonthlyStats
	for i := range reservations {
		res := &reservations[i]
		if !strings.HasPrefix(res.CheckInDate, month) {
			continue
		}
		prop, ok := propIndex[res.PropertyID]
		if !ok {
			// Orphaned reservation: its property was deleted. It contributes
			// nothing rather than crashing the report.
			continue
		}
		split := s.valuation.SplitPayout(res, prop, rates)
		stats.TotalRevenue += split.LocalAmount
		stats.MyEarnings += split.Commission
		stats.OwnerPayouts += split.OwnerPayout
	}
	return stats
}

// MonthlyOwnerReport aggregates by owner over a calendar month, keyed by
// check-in month only. Every owner with at least one property appears, even
// with zero reservations.
func (s *ReportService) MonthlyOwnerReport(properties []models.Property, reservations []models.Reservation, month string, excluded map[string]bool, rates models.Rates) map[string]*models.OwnerReport {
	reports := seedOwnerReports(properties)
	propIndex := indexProperties(properties)

	for i := range reservations {
		res := &reservations[i]
		if !strings.HasPrefix(res.CheckInDate, month) {
			continue
		}
		s.accumulate(reports, propIndex, res, rates, false, excluded[res.ID])
	}
	return reports
}

// CustomRangeReport aggregates by owner over an arbitrary inclusive date
// range. A reservation is included when it overlaps the range at all
// (checkIn <= end and checkOut >= start); one extending outside the range is
// flagged partial so the caller can surface the boundary conflict. Excluded
// reservations stay in the breakdown for audit but contribute nothing to the
// totals.
func (s *ReportService) CustomRangeReport(properties []models.Property, reservations []models.Reservation, start, end string, excluded map[string]bool, rates models.Rates) map[string]*models.OwnerReport {
	reports := seedOwnerReports(properties)
	propIndex := indexProperties(properties)

	for i := range reservations {
		res := &reservations[i]
		if res.CheckInDate > end || res.CheckOutDate < start {
			continue
		}
		isPartial := res.CheckInDate < start || res.CheckOutDate > end
		s.accumulate(reports, propIndex, res, rates, isPartial, excluded[res.ID])
	}
	return reports
}

// RevenueByProperty computes one month's revenue per property, in property
// input order, for the dashboard chart.
func (s *ReportService) RevenueByProperty(properties []models.Property, reservations []models.Reservation, month string, rates models.Rates) []models.PropertyRevenue {
	result := make([]models.PropertyRevenue, len(properties))
	for i, prop := range properties {
		result[i] = models.PropertyRevenue{PropertyID: prop.ID, Name: prop.Name}
	}
	byID := make(map[string]int, len(properties))
	for i, prop := range properties {
		byID[prop.ID] = i
	}

	for i := range reservations {
		res := &reservations[i]
		if !strings.HasPrefix(res.CheckInDate, month) {
			continue
		}
		idx, ok := byID[res.PropertyID]
		if !ok {
			continue
		}
		result[idx].Revenue += s.valuation.LocalValue(res, rates)
	}
	return result
}

// PlatformCounts counts one month's reservations per booking channel.
func (s *ReportService) PlatformCounts(reservations []models.Reservation, month string) map[models.Platform]int {
	counts := make(map[models.Platform]int)
	for i := range reservations {
		if strings.HasPrefix(reservations[i].CheckInDate, month) {
			counts[reservations[i].Platform]++
		}
	}
	return counts
}

// accumulate prices one reservation and folds it into its owner's report.
// Reservations whose property no longer exists are skipped silently.
func (s *ReportService) accumulate(reports map[string]*models.OwnerReport, propIndex map[string]*models.Property, res *models.Reservation, rates models.Rates, isPartial, isExcluded bool) {
	prop, ok := propIndex[res.PropertyID]
	if !ok {
		return
	}
	report, ok := reports[prop.OwnerName]
	if !ok {
		return
	}

	split := s.valuation.SplitPayout(res, prop, rates)
	report.Reservations = append(report.Reservations, models.ReservationBreakdown{
		ReservationID: res.ID,
		PropertyName:  prop.Name,
		GuestName:     res.GuestName,
		Platform:      res.Platform,
		CheckInDate:   res.CheckInDate,
		CheckOutDate:  res.CheckOutDate,
		LocalAmount:   split.LocalAmount,
		Commission:    split.Commission,
		OwnerPayout:   split.OwnerPayout,
		IsPartial:     isPartial,
		IsExcluded:    isExcluded,
	})

	if isExcluded {
		return
	}
	report.Revenue = utils.Round(report.Revenue + split.LocalAmount)
	report.Commission = utils.Round(report.Commission + split.Commission)
	report.Payout = utils.Round(report.Payout + split.OwnerPayout)
}

// seedOwnerReports creates an empty report per owner, listing each owner's
// properties so owners without activity still show up.
func seedOwnerReports(properties []models.Property) map[string]*models.OwnerReport {
	reports := make(map[string]*models.OwnerReport)
	for _, prop := range properties {
		report, ok := reports[prop.OwnerName]
		if !ok {
			report = &models.OwnerReport{OwnerName: prop.OwnerName}
			reports[prop.OwnerName] = report
		}
		report.Properties = append(report.Properties, prop.Name)
	}
	return reports
}

func indexProperties(properties []models.Property) map[string]*models.Property {
	index := make(map[string]*models.Property, len(properties))
	for i := range properties {
		index[properties[i].ID] = &properties[i]
	}
	return index
}
