package services

import (
	"testing"

	"github.com/odihna/balance-backend/models"
	"github.com/stretchr/testify/assert"
)

func reportFixture() ([]models.Property, []models.Reservation) {
	properties := []models.Property{
		{ID: "p1", Name: "Apto Centro", OwnerName: "Maria", CommissionRate: 20},
		{ID: "p2", Name: "Casa Norte", OwnerName: "Carlos", CommissionRate: 15},
		{ID: "p3", Name: "Loft Sur", OwnerName: "Maria", CommissionRate: 20},
	}
	reservations := []models.Reservation{
		// Maria, July, direct COP: 500,000 -> commission 100,000, payout 400,000
		{ID: "r1", PropertyID: "p1", GuestName: "Ana", Platform: models.PlatformDirect,
			CheckInDate: "2025-07-03", CheckOutDate: "2025-07-06", TotalAmount: 500000},
		// Maria, July, Airbnb with captured rate: 100 * 4000 = 400,000 -> 80,000 / 320,000
		{ID: "r2", PropertyID: "p3", GuestName: "Bob", Platform: models.PlatformAirbnb,
			CheckInDate: "2025-07-10", CheckOutDate: "2025-07-14", USDAmount: 100, ExchangeRate: 4000},
		// Carlos, July monthly lease: 1,000,000 / 800,000 -> margin 200,000
		{ID: "r3", PropertyID: "p2", GuestName: "Eva", Platform: models.PlatformDirect,
			Type: models.Monthly, CheckInDate: "2025-07-01", CheckOutDate: "2025-09-30",
			TotalAmount: 1000000, MonthlyExpensesAndOwnerPay: 800000},
		// Checks in June, out in July: belongs to June in month mode
		{ID: "r4", PropertyID: "p1", GuestName: "Leo", Platform: models.PlatformBooking,
			CheckInDate: "2025-06-28", CheckOutDate: "2025-07-02", TotalAmount: 300000},
		// August
		{ID: "r5", PropertyID: "p2", GuestName: "Mia", Platform: models.PlatformDirect,
			CheckInDate: "2025-08-05", CheckOutDate: "2025-08-08", TotalAmount: 200000},
		// Orphan: property was deleted
		{ID: "r6", PropertyID: "gone", GuestName: "Sam", Platform: models.PlatformDirect,
			CheckInDate: "2025-07-15", CheckOutDate: "2025-07-18", TotalAmount: 900000},
	}
	return properties, reservations
}

func TestReportService_MonthlyStats(t *testing.T) {
	service := NewReportService(NewValuationService())
	properties, reservations := reportFixture()
	rates := models.Rates{ManualRate: 4000}

	stats := service.MonthlyStats(properties, reservations, "2025-07", rates)

	// r1 (500,000) + r2 (400,000) + r3 (1,000,000); r4 is June, r5 is
	// August, r6 is an orphan and skipped
	assert.Equal(t, 1900000.0, stats.TotalRevenue)
	// 100,000 + 80,000 + 200,000
	assert.Equal(t, 380000.0, stats.MyEarnings)
	// 400,000 + 320,000 + 800,000
	assert.Equal(t, 1520000.0, stats.OwnerPayouts)
}

func TestReportService_MonthlyOwnerReport(t *testing.T) {
	service := NewReportService(NewValuationService())
	properties, reservations := reportFixture()
	rates := models.Rates{ManualRate: 4000}

	reports := service.MonthlyOwnerReport(properties, reservations, "2025-07", nil, rates)

	maria := reports["Maria"]
	assert.NotNil(t, maria)
	assert.ElementsMatch(t, []string{"Apto Centro", "Loft Sur"}, maria.Properties)
	assert.Len(t, maria.Reservations, 2)
	assert.Equal(t, 900000.0, maria.Revenue)
	assert.Equal(t, 180000.0, maria.Commission)
	assert.Equal(t, 720000.0, maria.Payout)

	carlos := reports["Carlos"]
	assert.NotNil(t, carlos)
	assert.Equal(t, 1000000.0, carlos.Revenue)
	assert.Equal(t, 200000.0, carlos.Commission)
	assert.Equal(t, 800000.0, carlos.Payout)
}

func TestReportService_MonthlyOwnerReport_ChecksInMonthOnly(t *testing.T) {
	service := NewReportService(NewValuationService())
	properties, reservations := reportFixture()
	rates := models.Rates{ManualRate: 4000}

	// r4 spans June into July but belongs to June only
	june := service.MonthlyOwnerReport(properties, reservations, "2025-06", nil, rates)
	assert.Equal(t, 300000.0, june["Maria"].Revenue)

	july := service.MonthlyOwnerReport(properties, reservations, "2025-07", nil, rates)
	for _, line := range july["Maria"].Reservations {
		assert.NotEqual(t, "r4", line.ReservationID)
	}
}

func TestReportService_CustomRangeReport_Overlap(t *testing.T) {
	service := NewReportService(NewValuationService())
	properties, reservations := reportFixture()
	rates := models.Rates{ManualRate: 4000}

	// Range covering the June/July boundary: r4 overlaps from both sides
	reports := service.CustomRangeReport(properties, reservations, "2025-07-01", "2025-07-31", nil, rates)

	maria := reports["Maria"]
	assert.Len(t, maria.Reservations, 3)

	var r4Line *models.ReservationBreakdown
	for i := range maria.Reservations {
		if maria.Reservations[i].ReservationID == "r4" {
			r4Line = &maria.Reservations[i]
		}
	}
	assert.NotNil(t, r4Line)
	assert.True(t, r4Line.IsPartial, "reservation extending before the range start is partial")

	// The partial reservation still counts in full
	assert.Equal(t, 1200000.0, maria.Revenue)

	// The monthly lease runs through September: partial on the other side
	carlos := reports["Carlos"]
	assert.Len(t, carlos.Reservations, 1)
	assert.True(t, carlos.Reservations[0].IsPartial)

	// The same boundary reservation shows up in the June range too,
	// flagged partial from the other side
	june := service.CustomRangeReport(properties, reservations, "2025-06-01", "2025-06-30", nil, rates)
	found := false
	for _, line := range june["Maria"].Reservations {
		if line.ReservationID == "r4" {
			found = true
			assert.True(t, line.IsPartial)
		}
	}
	assert.True(t, found)
}

func TestReportService_CustomRangeReport_Exclusions(t *testing.T) {
	service := NewReportService(NewValuationService())
	properties, reservations := reportFixture()
	rates := models.Rates{ManualRate: 4000}

	excluded := map[string]bool{"r1": true}
	reports := service.CustomRangeReport(properties, reservations, "2025-07-01", "2025-07-31", excluded, rates)

	maria := reports["Maria"]
	// Excluded reservation stays in the breakdown for audit
	assert.Len(t, maria.Reservations, 3)
	var r1Line *models.ReservationBreakdown
	for i := range maria.Reservations {
		if maria.Reservations[i].ReservationID == "r1" {
			r1Line = &maria.Reservations[i]
		}
	}
	assert.NotNil(t, r1Line)
	assert.True(t, r1Line.IsExcluded)

	// ...but contributes nothing to the totals: 1,200,000 - 500,000
	assert.Equal(t, 700000.0, maria.Revenue)
	assert.Equal(t, 560000.0, maria.Payout)
}

func TestReportService_OrphanedReservationsSkipped(t *testing.T) {
	service := NewReportService(NewValuationService())
	properties, reservations := reportFixture()
	rates := models.Rates{ManualRate: 4000}

	reports := service.CustomRangeReport(properties, reservations, "2025-07-01", "2025-07-31", nil, rates)
	for _, report := range reports {
		for _, line := range report.Reservations {
			assert.NotEqual(t, "r6", line.ReservationID)
		}
	}
}

func TestReportService_RevenueByProperty(t *testing.T) {
	service := NewReportService(NewValuationService())
	properties, reservations := reportFixture()
	rates := models.Rates{ManualRate: 4000}

	result := service.RevenueByProperty(properties, reservations, "2025-07", rates)

	// Property input order is preserved
	assert.Len(t, result, 3)
	assert.Equal(t, "p1", result[0].PropertyID)
	assert.Equal(t, 500000.0, result[0].Revenue)
	assert.Equal(t, 1000000.0, result[1].Revenue)
	assert.Equal(t, 400000.0, result[2].Revenue)
}

func TestReportService_PlatformCounts(t *testing.T) {
	service := NewReportService(NewValuationService())
	_, reservations := reportFixture()

	counts := service.PlatformCounts(reservations, "2025-07")
	assert.Equal(t, 3, counts[models.PlatformDirect]) // r1, r3, r6
	assert.Equal(t, 1, counts[models.PlatformAirbnb])
	assert.Equal(t, 0, counts[models.PlatformBooking])
}
