package services

import (
	"fmt"
	"time"

	"github.com/odihna/balance-backend/models"
	"github.com/odihna/balance-backend/utils"
)

// PaymentService handles the payout reconciliation cycle: listing unpaid
// reservations grouped by owner, confirming a batch into an immutable
// payment record, and reversing a payment back into the pending pool.
type PaymentService struct {
	properties   PropertyStore
	reservations ReservationStore
	payments     PaymentStore
	valuation    *ValuationService
}

// NewPaymentService creates a new payment service
func NewPaymentService(properties PropertyStore, reservations ReservationStore, payments PaymentStore, valuation *ValuationService) *PaymentService {
	return &PaymentService{
		properties:   properties,
		reservations: reservations,
		payments:     payments,
		valuation:    valuation,
	}
}

// PendingByOwner groups every unpaid reservation by owner, priced at the
// current rates. The window filters by checkout date: reservations checking
// out before the window start are omitted entirely, and ones checking out
// after the window end are listed but flagged as conflicts and kept out of
// the default total, so the user can opt them in explicitly.
func (s *PaymentService) PendingByOwner(window models.DateWindow, rates models.Rates) (map[string]*models.PendingGroup, error) {
	propertyList, err := s.properties.List()
	if err != nil {
		return nil, err
	}
	reservationList, err := s.reservations.List()
	if err != nil {
		return nil, err
	}

	propIndex := indexProperties(propertyList)
	groups := make(map[string]*models.PendingGroup)

	for i := range reservationList {
		res := &reservationList[i]
		if res.IsPaid() {
			continue
		}
		if window.Start != "" && res.CheckOutDate < window.Start {
			continue
		}
		prop, ok := propIndex[res.PropertyID]
		if !ok {
			continue
		}

		conflict := window.End != "" && res.CheckOutDate > window.End
		split := s.valuation.SplitPayout(res, prop, rates)

		group, ok := groups[prop.OwnerName]
		if !ok {
			group = &models.PendingGroup{OwnerName: prop.OwnerName}
			groups[prop.OwnerName] = group
		}
		group.Reservations = append(group.Reservations, models.PendingReservation{
			ReservationID: res.ID,
			PropertyName:  prop.Name,
			GuestName:     res.GuestName,
			Platform:      res.Platform,
			CheckInDate:   res.CheckInDate,
			CheckOutDate:  res.CheckOutDate,
			LocalAmount:   split.LocalAmount,
			OwnerPayout:   split.OwnerPayout,
			Conflict:      conflict,
		})
		group.Count++
		if !conflict {
			group.TotalPayout = utils.Round(group.TotalPayout + split.OwnerPayout)
		}
	}
	return groups, nil
}

// ConfirmPayment records a payout run to one owner and stamps the covered
// reservations in the same transaction. Every referenced reservation must
// exist, be unpaid, and belong to the named owner; any violation fails the
// whole batch before anything is written.
//
// ExpectedAmount is the system-computed payout sum at confirmation time, at
// the liquidation rate when one is given. AmountPaid is whatever the user
// actually transferred; the two are stored side by side for reconciliation.
func (s *PaymentService) ConfirmPayment(req *models.ConfirmPaymentRequest) (*models.OwnerPayment, error) {
	if err := utils.ValidateRequired(req.OwnerName, "ownerName"); err != nil {
		return nil, err
	}
	if err := utils.ValidateNotEmpty(req.ReservationIDs, "reservationIds"); err != nil {
		return nil, err
	}
	if err := utils.ValidateNonNegative(req.AmountPaid, "amountPaid"); err != nil {
		return nil, err
	}
	date := req.Date
	if date == "" {
		date = time.Now().Format(utils.DateLayout)
	} else if err := utils.ValidateDate(date, "date"); err != nil {
		return nil, err
	}

	propertyList, err := s.properties.List()
	if err != nil {
		return nil, err
	}
	propIndex := indexProperties(propertyList)

	batch, err := s.reservations.GetBatch(req.ReservationIDs)
	if err != nil {
		return nil, err
	}
	found := make(map[string]*models.Reservation, len(batch))
	for i := range batch {
		found[batch[i].ID] = &batch[i]
	}

	var expected float64
	for _, id := range req.ReservationIDs {
		res, ok := found[id]
		if !ok {
			return nil, utils.NewNotFoundError(fmt.Sprintf("reservation %s", id))
		}
		if res.IsPaid() {
			return nil, utils.NewValidationError(fmt.Sprintf("reservation %s is already covered by payment %s", id, res.PaymentID))
		}
		prop, ok := propIndex[res.PropertyID]
		if !ok {
			return nil, utils.NewNotFoundError(fmt.Sprintf("property %s for reservation %s", res.PropertyID, id))
		}
		if prop.OwnerName != req.OwnerName {
			return nil, utils.NewValidationError(fmt.Sprintf("reservation %s belongs to owner %s, not %s", id, prop.OwnerName, req.OwnerName))
		}

		var split PayoutSplit
		if req.LiquidationRate > 0 {
			split = s.valuation.SplitPayoutAtRate(res, prop, req.Rates, req.LiquidationRate)
		} else {
			split = s.valuation.SplitPayout(res, prop, req.Rates)
		}
		expected = utils.Round(expected + split.OwnerPayout)
	}

	payment := &models.OwnerPayment{
		ID:             utils.GenerateID(),
		OwnerName:      req.OwnerName,
		Date:           date,
		AmountPaid:     utils.Round(req.AmountPaid),
		ExpectedAmount: expected,
		ReservationIDs: req.ReservationIDs,
		Notes:          req.Notes,
		ExchangeRate:   req.LiquidationRate,
		CreatedAt:      time.Now(),
	}
	if err := s.payments.CreateWithStamps(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// ListPayments returns all payment records, newest first per the store.
func (s *PaymentService) ListPayments() ([]models.OwnerPayment, error) {
	return s.payments.List()
}

// ReversePayment deletes a payment and returns its reservations to the
// pending pool. Reversing a payment that no longer exists is a no-op, so a
// retried delete cannot fail.
func (s *PaymentService) ReversePayment(id string) error {
	if err := utils.ValidateRequired(id, "payment id"); err != nil {
		return err
	}
	_, err := s.payments.DeleteWithStamps(id)
	return err
}
