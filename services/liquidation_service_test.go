package services

import (
	"testing"

	"github.com/odihna/balance-backend/models"
	"github.com/stretchr/testify/assert"
)

func liquidationFixture() ([]models.Property, []models.Reservation) {
	properties := []models.Property{
		{ID: "p1", Name: "Apto Centro", OwnerName: "Maria", CommissionRate: 20},
		{ID: "p2", Name: "Casa Norte", OwnerName: "Carlos", CommissionRate: 10},
	}
	reservations := []models.Reservation{
		// Maria: 100 USD, original at 4000 -> payout 320,000
		{ID: "r1", PropertyID: "p1", Platform: models.PlatformAirbnb,
			CheckInDate: "2025-07-05", CheckOutDate: "2025-07-08", USDAmount: 100, ExchangeRate: 4000},
		// Maria: 50 USD at 4000 -> payout 160,000
		{ID: "r2", PropertyID: "p1", Platform: models.PlatformAirbnb,
			CheckInDate: "2025-07-12", CheckOutDate: "2025-07-15", USDAmount: 50, ExchangeRate: 4000},
		// Carlos: COP reservation, never repriceable
		{ID: "r3", PropertyID: "p2", Platform: models.PlatformDirect,
			CheckInDate: "2025-07-10", CheckOutDate: "2025-07-12", TotalAmount: 500000},
	}
	return properties, reservations
}

func TestLiquidationService_RecalculateAtRate(t *testing.T) {
	service := NewLiquidationService(NewValuationService())
	properties, reservations := liquidationFixture()
	rates := models.Rates{ManualRate: 4000}

	entries := service.RecalculateAtRate(properties, reservations, 4200, models.DateWindow{}, nil, rates)

	maria := entries["Maria"]
	assert.NotNil(t, maria)
	// Original: (400,000 - 80,000) + (200,000 - 40,000) = 480,000
	assert.Equal(t, 480000.0, maria.OriginalPayout)
	// At 4200: (420,000 - 80,000) + (210,000 - 40,000) = 510,000
	assert.Equal(t, 510000.0, maria.LiquidationPayout)
	assert.Equal(t, 30000.0, maria.Difference)
	assert.Equal(t, 2, maria.AffectedCount)

	// Carlos has only a COP reservation: it passes through with the same
	// payout on both sides, so he still shows up with a zero difference
	carlos := entries["Carlos"]
	assert.NotNil(t, carlos)
	assert.Equal(t, 450000.0, carlos.OriginalPayout)
	assert.Equal(t, 450000.0, carlos.LiquidationPayout)
	assert.Equal(t, 0.0, carlos.Difference)
	assert.Equal(t, 0, carlos.AffectedCount)
}

func TestLiquidationService_NonRepriceablePassThrough(t *testing.T) {
	service := NewLiquidationService(NewValuationService())
	rates := models.Rates{ManualRate: 4000}

	properties := []models.Property{
		{ID: "p1", Name: "Apto Centro", OwnerName: "Maria", CommissionRate: 20},
	}
	reservations := []models.Reservation{
		// USD reservation moves with the rate
		{ID: "r1", PropertyID: "p1", Platform: models.PlatformAirbnb,
			CheckInDate: "2025-07-05", CheckOutDate: "2025-07-08", USDAmount: 100, ExchangeRate: 4000},
		// Direct COP and Monthly contribute equally to both columns
		{ID: "r2", PropertyID: "p1", Platform: models.PlatformDirect,
			CheckInDate: "2025-07-10", CheckOutDate: "2025-07-12", TotalAmount: 500000},
		{ID: "r3", PropertyID: "p1", Platform: models.PlatformDirect, Type: models.Monthly,
			CheckInDate: "2025-07-01", CheckOutDate: "2025-08-31",
			TotalAmount: 1000000, MonthlyExpensesAndOwnerPay: 800000},
	}

	entries := service.RecalculateAtRate(properties, reservations, 4200, models.DateWindow{}, nil, rates)

	maria := entries["Maria"]
	// Original: 320,000 (USD) + 400,000 (COP) + 800,000 (lease) = 1,520,000
	assert.Equal(t, 1520000.0, maria.OriginalPayout)
	// Only the USD reservation moves: 340,000 + 400,000 + 800,000
	assert.Equal(t, 1540000.0, maria.LiquidationPayout)
	assert.Equal(t, 20000.0, maria.Difference)
	assert.Equal(t, 1, maria.AffectedCount)
}

func TestLiquidationService_NegativeDifference(t *testing.T) {
	service := NewLiquidationService(NewValuationService())
	properties, reservations := liquidationFixture()
	rates := models.Rates{ManualRate: 4000}

	entries := service.RecalculateAtRate(properties, reservations, 3800, models.DateWindow{}, nil, rates)

	maria := entries["Maria"]
	// At 3800: (380,000 - 80,000) + (190,000 - 40,000) = 450,000
	assert.Equal(t, 450000.0, maria.LiquidationPayout)
	assert.Equal(t, -30000.0, maria.Difference)

	// The pass-through reservation keeps Carlos flat regardless of direction
	assert.Equal(t, 0.0, entries["Carlos"].Difference)
}

func TestLiquidationService_WindowAndExclusions(t *testing.T) {
	service := NewLiquidationService(NewValuationService())
	properties, reservations := liquidationFixture()
	rates := models.Rates{ManualRate: 4000}

	// Window drops r2 (checks in on the 12th); r1 and Carlos's r3 stay
	window := models.DateWindow{Start: "2025-07-01", End: "2025-07-10"}
	entries := service.RecalculateAtRate(properties, reservations, 4200, window, nil, rates)
	assert.Equal(t, 1, entries["Maria"].AffectedCount)
	assert.Equal(t, 320000.0, entries["Maria"].OriginalPayout)
	assert.Equal(t, 450000.0, entries["Carlos"].OriginalPayout)

	// Exclusion removes r1 from both columns
	entries = service.RecalculateAtRate(properties, reservations, 4200, models.DateWindow{}, map[string]bool{"r1": true}, rates)
	assert.Equal(t, 1, entries["Maria"].AffectedCount)
	assert.Equal(t, 160000.0, entries["Maria"].OriginalPayout)
}

func TestLiquidationService_DoesNotMutateInputs(t *testing.T) {
	service := NewLiquidationService(NewValuationService())
	properties, reservations := liquidationFixture()
	rates := models.Rates{ManualRate: 4000}

	before := make([]models.Reservation, len(reservations))
	copy(before, reservations)

	service.RecalculateAtRate(properties, reservations, 4200, models.DateWindow{}, nil, rates)

	assert.Equal(t, before, reservations)
}
