package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/odihna/balance-backend/models"
	mock_services "github.com/odihna/balance-backend/services/mocks"
	"github.com/odihna/balance-backend/utils"
	"github.com/stretchr/testify/assert"
)

func newReservationService(t *testing.T) (*ReservationService, *mock_services.MockPropertyStore, *mock_services.MockReservationStore, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	properties := mock_services.NewMockPropertyStore(ctrl)
	reservations := mock_services.NewMockReservationStore(ctrl)
	return NewReservationService(properties, reservations), properties, reservations, ctrl
}

func expectProperty(properties *mock_services.MockPropertyStore) {
	properties.EXPECT().Get("p1").Return(&models.Property{
		ID: "p1", Name: "Apto Centro", OwnerName: "Maria", CommissionRate: 20,
	}, nil).AnyTimes()
}

func TestReservationService_Create_AirbnbEnteredAsUSD(t *testing.T) {
	service, properties, reservations, ctrl := newReservationService(t)
	defer ctrl.Finish()
	expectProperty(properties)
	reservations.EXPECT().Create(gomock.Any()).Return(nil)

	created, err := service.CreateReservation(&models.SaveReservationRequest{
		PropertyID:   "p1",
		GuestName:    "Ana",
		CheckInDate:  "2025-07-03",
		CheckOutDate: "2025-07-06",
		Platform:     models.PlatformAirbnb,
		USDAmount:    123.456,
		ExchangeRate: 4000,
		EnteredAs:    models.EnteredAsUSD,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	// USD is kept to cents and the COP side derived from it
	assert.Equal(t, 123.46, created.USDAmount)
	assert.Equal(t, 493840.0, created.TotalAmount)
	assert.Equal(t, models.EnteredAsUSD, created.EnteredAs)
}

func TestReservationService_Create_AirbnbEnteredAsCOP(t *testing.T) {
	service, properties, reservations, ctrl := newReservationService(t)
	defer ctrl.Finish()
	expectProperty(properties)
	reservations.EXPECT().Create(gomock.Any()).Return(nil)

	created, err := service.CreateReservation(&models.SaveReservationRequest{
		PropertyID:   "p1",
		GuestName:    "Ana",
		CheckInDate:  "2025-07-03",
		CheckOutDate: "2025-07-06",
		Platform:     models.PlatformAirbnb,
		TotalAmount:  400000,
		ExchangeRate: 4000,
		EnteredAs:    models.EnteredAsCOP,
	})
	assert.NoError(t, err)
	// The USD side is derived from the typed COP total
	assert.Equal(t, 400000.0, created.TotalAmount)
	assert.Equal(t, 100.0, created.USDAmount)
}

func TestReservationService_Create_Monthly(t *testing.T) {
	service, properties, reservations, ctrl := newReservationService(t)
	defer ctrl.Finish()
	expectProperty(properties)
	reservations.EXPECT().Create(gomock.Any()).Return(nil)

	created, err := service.CreateReservation(&models.SaveReservationRequest{
		PropertyID:                 "p1",
		GuestName:                  "Eva",
		CheckInDate:                "2025-07-01",
		CheckOutDate:               "2025-09-30",
		Platform:                   models.PlatformDirect,
		Type:                       models.Monthly,
		TotalAmount:                1000000,
		MonthlyExpensesAndOwnerPay: 800000,
	})
	assert.NoError(t, err)
	// July, August, September
	assert.Equal(t, 3, created.MonthsCount)
	// Currency conversion fields never apply to leases
	assert.Zero(t, created.USDAmount)
	assert.Zero(t, created.ExchangeRate)
}

func TestReservationService_Create_Rejections(t *testing.T) {
	service, properties, _, ctrl := newReservationService(t)
	defer ctrl.Finish()
	expectProperty(properties)

	base := models.SaveReservationRequest{
		PropertyID:   "p1",
		GuestName:    "Ana",
		CheckInDate:  "2025-07-06",
		CheckOutDate: "2025-07-03",
		Platform:     models.PlatformDirect,
		TotalAmount:  100000,
	}

	// Check-out before check-in
	_, err := service.CreateReservation(&base)
	assert.Error(t, err)

	// Airbnb without an exchange rate
	req := base
	req.CheckOutDate = "2025-07-08"
	req.Platform = models.PlatformAirbnb
	req.USDAmount = 100
	req.TotalAmount = 0
	_, err = service.CreateReservation(&req)
	assert.Error(t, err)

	// Monthly without the expenses+owner-pay figure
	req = base
	req.CheckOutDate = "2025-08-03"
	req.Type = models.Monthly
	req.MonthlyExpensesAndOwnerPay = 0
	_, err = service.CreateReservation(&req)
	assert.Error(t, err)

	// Unknown platform
	req = base
	req.CheckOutDate = "2025-07-08"
	req.Platform = "Expedia"
	_, err = service.CreateReservation(&req)
	assert.Error(t, err)
}

func TestReservationService_Create_UnknownPropertyIsValidationError(t *testing.T) {
	service, properties, _, ctrl := newReservationService(t)
	defer ctrl.Finish()

	properties.EXPECT().Get("ghost").Return(nil, utils.NewNotFoundError("property"))

	_, err := service.CreateReservation(&models.SaveReservationRequest{
		PropertyID:   "ghost",
		GuestName:    "Ana",
		CheckInDate:  "2025-07-03",
		CheckOutDate: "2025-07-06",
		Platform:     models.PlatformDirect,
		TotalAmount:  100000,
	})
	assert.Error(t, err)
	// The 404 from the property lookup surfaces as a 400 on the write
	assert.False(t, utils.IsNotFound(err))
	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
}

func TestReservationService_Update_KeepsPaymentStamp(t *testing.T) {
	service, properties, reservations, ctrl := newReservationService(t)
	defer ctrl.Finish()
	expectProperty(properties)

	existing := &models.Reservation{
		ID: "r1", PropertyID: "p1", GuestName: "Ana", Platform: models.PlatformDirect,
		CheckInDate: "2025-07-03", CheckOutDate: "2025-07-06",
		TotalAmount: 500000, PaymentID: "pay-1",
	}
	reservations.EXPECT().Get("r1").Return(existing, nil)
	reservations.EXPECT().Update(gomock.Any()).Return(nil)

	updated, err := service.UpdateReservation("r1", &models.SaveReservationRequest{
		PropertyID:   "p1",
		GuestName:    "Ana Maria",
		CheckInDate:  "2025-07-03",
		CheckOutDate: "2025-07-07",
		Platform:     models.PlatformDirect,
		TotalAmount:  550000,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.GuestName)
	assert.Equal(t, "pay-1", updated.PaymentID)
}

func TestReservationService_Delete_PaidReservationBlocked(t *testing.T) {
	service, _, reservations, ctrl := newReservationService(t)
	defer ctrl.Finish()

	reservations.EXPECT().Get("r1").Return(&models.Reservation{
		ID: "r1", PaymentID: "pay-1",
	}, nil)

	err := service.DeleteReservation("r1")
	assert.Error(t, err)
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 1, monthsBetween("2025-07-01", "2025-07-31"))
	assert.Equal(t, 1, monthsBetween("2025-07-01", "2025-08-01"))
	assert.Equal(t, 2, monthsBetween("2025-07-01", "2025-08-15"))
	assert.Equal(t, 3, monthsBetween("2025-07-01", "2025-09-30"))
	assert.Equal(t, 12, monthsBetween("2025-01-15", "2026-01-15"))
}
