package services

import (
	"time"

	"github.com/odihna/balance-backend/models"
	"github.com/odihna/balance-backend/utils"
)

// ReservationService handles reservation CRUD and keeps the cross-field
// currency invariants consistent on every write.
type ReservationService struct {
	properties   PropertyStore
	reservations ReservationStore
}

// NewReservationService creates a new reservation service
func NewReservationService(properties PropertyStore, reservations ReservationStore) *ReservationService {
	return &ReservationService{properties: properties, reservations: reservations}
}

// ListReservations returns all reservations
func (s *ReservationService) ListReservations() ([]models.Reservation, error) {
	return s.reservations.List()
}

// GetReservation returns one reservation by ID
func (s *ReservationService) GetReservation(id string) (*models.Reservation, error) {
	return s.reservations.Get(id)
}

// CreateReservation validates, normalizes and stores a new reservation.
func (s *ReservationService) CreateReservation(req *models.SaveReservationRequest) (*models.Reservation, error) {
	reservation := &models.Reservation{ID: utils.GenerateID()}
	if err := s.applyRequest(reservation, req); err != nil {
		return nil, err
	}
	if err := s.reservations.Create(reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// UpdateReservation re-validates and re-normalizes an existing reservation.
// The payment stamp survives the edit; amounts on an already-paid
// reservation can still be corrected, the payment record keeps the figures
// that were in force when it was confirmed.
func (s *ReservationService) UpdateReservation(id string, req *models.SaveReservationRequest) (*models.Reservation, error) {
	reservation, err := s.reservations.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.applyRequest(reservation, req); err != nil {
		return nil, err
	}
	if err := s.reservations.Update(reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// DeleteReservation removes a reservation. One covered by a payment cannot
// be deleted; the payment must be reversed first.
func (s *ReservationService) DeleteReservation(id string) error {
	reservation, err := s.reservations.Get(id)
	if err != nil {
		return err
	}
	if reservation.IsPaid() {
		return utils.NewValidationError("reservation is covered by a payment; reverse the payment first")
	}
	return s.reservations.Delete(id)
}

// applyRequest validates the request and writes the normalized fields onto
// the reservation, deriving whichever currency side the user did not type.
func (s *ReservationService) applyRequest(reservation *models.Reservation, req *models.SaveReservationRequest) error {
	if err := utils.ValidateRequired(req.GuestName, "guestName"); err != nil {
		return err
	}
	if err := utils.ValidateDate(req.CheckInDate, "checkInDate"); err != nil {
		return err
	}
	if err := utils.ValidateDate(req.CheckOutDate, "checkOutDate"); err != nil {
		return err
	}
	if err := utils.ValidateDateOrder(req.CheckInDate, req.CheckOutDate); err != nil {
		return err
	}
	if !validPlatform(req.Platform) {
		return utils.NewValidationError("unknown platform")
	}
	if _, err := s.properties.Get(req.PropertyID); err != nil {
		// A dangling propertyId on a write is the caller's mistake, not a
		// missing resource on this endpoint
		if utils.IsNotFound(err) {
			return utils.NewValidationError("property does not exist")
		}
		return err
	}

	reservation.PropertyID = req.PropertyID
	reservation.GuestName = req.GuestName
	reservation.CheckInDate = req.CheckInDate
	reservation.CheckOutDate = req.CheckOutDate
	reservation.Platform = req.Platform
	reservation.Type = req.Type
	reservation.Notes = req.Notes

	if reservation.EffectiveType() == models.Monthly {
		return s.applyMonthlyAmounts(reservation, req)
	}
	return s.applyStandardAmounts(reservation, req)
}

// applyMonthlyAmounts normalizes a monthly lease: flat COP total, explicit
// expenses+owner-pay deduction, months derived from the stay span.
func (s *ReservationService) applyMonthlyAmounts(reservation *models.Reservation, req *models.SaveReservationRequest) error {
	if err := utils.ValidatePositive(req.TotalAmount, "totalAmount"); err != nil {
		return err
	}
	if err := utils.ValidatePositive(req.MonthlyExpensesAndOwnerPay, "monthlyExpensesAndOwnerPay"); err != nil {
		return err
	}

	reservation.TotalAmount = utils.Round(req.TotalAmount)
	reservation.MonthlyExpensesAndOwnerPay = utils.Round(req.MonthlyExpensesAndOwnerPay)
	reservation.MonthsCount = monthsBetween(req.CheckInDate, req.CheckOutDate)
	reservation.USDAmount = 0
	reservation.ExchangeRate = 0
	reservation.EnteredAs = ""
	return nil
}

// applyStandardAmounts normalizes a nightly booking. Airbnb settles in USD:
// the caller types one side (per EnteredAs) and the captured exchange rate,
// and the other side is derived so the two never drift apart. Other
// platforms are plain COP.
func (s *ReservationService) applyStandardAmounts(reservation *models.Reservation, req *models.SaveReservationRequest) error {
	reservation.MonthlyExpensesAndOwnerPay = 0
	reservation.MonthsCount = 0

	if req.Platform != models.PlatformAirbnb {
		if err := utils.ValidatePositive(req.TotalAmount, "totalAmount"); err != nil {
			return err
		}
		reservation.TotalAmount = utils.Round(req.TotalAmount)
		reservation.USDAmount = 0
		reservation.ExchangeRate = 0
		reservation.EnteredAs = ""
		return nil
	}

	if err := utils.ValidatePositive(req.ExchangeRate, "exchangeRate"); err != nil {
		return err
	}

	enteredAs := req.EnteredAs
	if enteredAs == "" {
		enteredAs = models.EnteredAsUSD
	}
	switch enteredAs {
	case models.EnteredAsUSD:
		if err := utils.ValidatePositive(req.USDAmount, "usdAmount"); err != nil {
			return err
		}
		reservation.USDAmount = utils.RoundCents(req.USDAmount)
		reservation.TotalAmount = utils.Round(reservation.USDAmount * req.ExchangeRate)
	case models.EnteredAsCOP:
		if err := utils.ValidatePositive(req.TotalAmount, "totalAmount"); err != nil {
			return err
		}
		reservation.TotalAmount = utils.Round(req.TotalAmount)
		reservation.USDAmount = utils.RoundCents(reservation.TotalAmount / req.ExchangeRate)
	default:
		return utils.NewValidationError("enteredAs must be COP or USD")
	}
	reservation.ExchangeRate = req.ExchangeRate
	reservation.EnteredAs = enteredAs
	return nil
}

func validPlatform(p models.Platform) bool {
	switch p {
	case models.PlatformAirbnb, models.PlatformBooking, models.PlatformDirect, models.PlatformOther:
		return true
	}
	return false
}

// monthsBetween counts the lease months covered by a stay, rounding any
// started month up and never reporting less than one.
func monthsBetween(checkIn, checkOut string) int {
	start, err1 := time.Parse(utils.DateLayout, checkIn)
	end, err2 := time.Parse(utils.DateLayout, checkOut)
	if err1 != nil || err2 != nil {
		return 1
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() > start.Day() {
		months++
	}
	if months < 1 {
		months = 1
	}
	return months
}
