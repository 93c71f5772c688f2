package services

import (
	"testing"

	"github.com/odihna/balance-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestValuationService_EffectiveRate(t *testing.T) {
	service := NewValuationService()

	// Market below manual: market wins
	rate := service.EffectiveRate(models.Rates{ManualRate: 4000, MarketRate: 3900})
	assert.Equal(t, 3900.0, rate)

	// Manual below market: manual wins
	rate = service.EffectiveRate(models.Rates{ManualRate: 3800, MarketRate: 4100})
	assert.Equal(t, 3800.0, rate)

	// Market not fetched yet: manual is in charge even if higher
	rate = service.EffectiveRate(models.Rates{ManualRate: 4200, MarketRate: 0})
	assert.Equal(t, 4200.0, rate)
}

func TestValuationService_LocalValue(t *testing.T) {
	service := NewValuationService()
	rates := models.Rates{ManualRate: 4000, MarketRate: 3900}

	// Airbnb with captured rate: the captured rate wins over both globals
	res := &models.Reservation{
		Platform:     models.PlatformAirbnb,
		USDAmount:    100,
		ExchangeRate: 4150,
	}
	assert.Equal(t, 415000.0, service.LocalValue(res, rates))

	// Airbnb without captured rate: protective minimum fallback
	res = &models.Reservation{
		Platform:  models.PlatformAirbnb,
		USDAmount: 100,
	}
	assert.Equal(t, 390000.0, service.LocalValue(res, rates))

	// Booking settles in COP; a stray USD amount is ignored
	res = &models.Reservation{
		Platform:    models.PlatformBooking,
		TotalAmount: 500000,
		USDAmount:   100,
	}
	assert.Equal(t, 500000.0, service.LocalValue(res, rates))

	// Airbnb with no USD amount falls back to the stored COP total
	res = &models.Reservation{
		Platform:    models.PlatformAirbnb,
		TotalAmount: 480000,
	}
	assert.Equal(t, 480000.0, service.LocalValue(res, rates))

	// Monthly lease: flat COP total, the rate machinery never applies
	res = &models.Reservation{
		Platform:     models.PlatformAirbnb,
		Type:         models.Monthly,
		TotalAmount:  1000000,
		USDAmount:    100,
		ExchangeRate: 4150,
	}
	assert.Equal(t, 1000000.0, service.LocalValue(res, rates))
}

func TestValuationService_SplitPayout_Standard(t *testing.T) {
	service := NewValuationService()
	rates := models.Rates{ManualRate: 4000, MarketRate: 0}

	// USD 100 at 4000 with 20% commission:
	// local = 400,000; commission = 80,000; owner = 320,000
	res := &models.Reservation{
		Platform:  models.PlatformAirbnb,
		USDAmount: 100,
	}
	prop := &models.Property{CommissionRate: 20}

	split := service.SplitPayout(res, prop, rates)
	assert.Equal(t, 400000.0, split.LocalAmount)
	assert.Equal(t, 80000.0, split.Commission)
	assert.Equal(t, 320000.0, split.OwnerPayout)
	assert.Equal(t, split.LocalAmount, split.Commission+split.OwnerPayout)
}

func TestValuationService_SplitPayout_Monthly(t *testing.T) {
	service := NewValuationService()
	rates := models.Rates{ManualRate: 4000}
	prop := &models.Property{CommissionRate: 20}

	// Lease at 1,000,000 with 800,000 expenses+owner pay:
	// owner gets 800,000, operator margin is 200,000
	res := &models.Reservation{
		Type:                       models.Monthly,
		TotalAmount:                1000000,
		MonthlyExpensesAndOwnerPay: 800000,
	}
	split := service.SplitPayout(res, prop, rates)
	assert.Equal(t, 1000000.0, split.LocalAmount)
	assert.Equal(t, 200000.0, split.Commission)
	assert.Equal(t, 800000.0, split.OwnerPayout)

	// Loss-making lease: the negative margin is reported as-is
	res = &models.Reservation{
		Type:                       models.Monthly,
		TotalAmount:                700000,
		MonthlyExpensesAndOwnerPay: 800000,
	}
	split = service.SplitPayout(res, prop, rates)
	assert.Equal(t, -100000.0, split.Commission)
	assert.Equal(t, 800000.0, split.OwnerPayout)
}

func TestValuationService_SplitPayoutAtRate(t *testing.T) {
	service := NewValuationService()
	rates := models.Rates{ManualRate: 4000}
	prop := &models.Property{CommissionRate: 20}

	// Commission stays on the original value (80,000); only the owner side
	// re-prices: 100 * 4200 = 420,000 - 80,000 = 340,000
	res := &models.Reservation{
		Platform:  models.PlatformAirbnb,
		USDAmount: 100,
	}
	split := service.SplitPayoutAtRate(res, prop, rates, 4200)
	assert.Equal(t, 420000.0, split.LocalAmount)
	assert.Equal(t, 80000.0, split.Commission)
	assert.Equal(t, 340000.0, split.OwnerPayout)

	// A COP reservation is unaffected by the alternate rate
	res = &models.Reservation{
		Platform:    models.PlatformDirect,
		TotalAmount: 500000,
	}
	split = service.SplitPayoutAtRate(res, prop, rates, 4200)
	assert.Equal(t, 500000.0, split.LocalAmount)
	assert.Equal(t, 100000.0, split.Commission)
	assert.Equal(t, 400000.0, split.OwnerPayout)
}

func TestValuationService_IsRepriceable(t *testing.T) {
	service := NewValuationService()

	assert.True(t, service.IsRepriceable(&models.Reservation{
		Platform:  models.PlatformAirbnb,
		USDAmount: 100,
	}))
	assert.False(t, service.IsRepriceable(&models.Reservation{
		Platform:    models.PlatformBooking,
		TotalAmount: 500000,
	}))
	assert.False(t, service.IsRepriceable(&models.Reservation{
		Platform:  models.PlatformAirbnb,
		Type:      models.Monthly,
		USDAmount: 100,
	}))
	assert.False(t, service.IsRepriceable(&models.Reservation{
		Platform:    models.PlatformAirbnb,
		TotalAmount: 480000,
	}))
}
