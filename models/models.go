// models/models.go
package models

import "time"

// Platform is the booking channel a reservation came through.
// Airbnb settles in USD and needs a conversion rate; everything else is COP.
type Platform string

const (
	PlatformAirbnb  Platform = "Airbnb"
	PlatformBooking Platform = "Booking"
	PlatformDirect  Platform = "Directo"
	PlatformOther   Platform = "Otro"
)

// ReservationType distinguishes nightly bookings from monthly leases.
type ReservationType string

const (
	// Standard is a nightly/short-stay booking subject to percentage commission.
	Standard ReservationType = "Standard"
	// Monthly is a fixed-term lease billed as a flat monthly figure with an
	// explicit expenses+owner-pay deduction instead of a percentage.
	Monthly ReservationType = "Monthly"
)

// EnteredAs records which currency field the user typed for an Airbnb
// reservation; the other one is derived from the exchange rate.
type EnteredAs string

const (
	EnteredAsCOP EnteredAs = "COP"
	EnteredAsUSD EnteredAs = "USD"
)

// Property represents a rental unit managed for an owner
type Property struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	OwnerName      string  `json:"ownerName"`
	City           string  `json:"city"`
	CommissionRate float64 `json:"commissionRate"` // percentage, 0-100
}

// Reservation represents a single booking. Dates are YYYY-MM-DD strings so
// they compare lexicographically, same as they are stored and filtered.
type Reservation struct {
	ID           string          `json:"id"`
	PropertyID   string          `json:"propertyId"`
	GuestName    string          `json:"guestName"`
	CheckInDate  string          `json:"checkInDate"`
	CheckOutDate string          `json:"checkOutDate"`
	Platform     Platform        `json:"platform"`
	Type         ReservationType `json:"reservationType"`

	// TotalAmount always holds the final COP figure. For Airbnb Standard
	// reservations it is derived from USDAmount * ExchangeRate; for every
	// other combination it is authoritative.
	TotalAmount  float64   `json:"totalAmount"`
	USDAmount    float64   `json:"usdAmount,omitempty"`
	ExchangeRate float64   `json:"exchangeRate,omitempty"` // COP per USD, captured at entry time
	EnteredAs    EnteredAs `json:"enteredAs,omitempty"`

	// Monthly-lease fields.
	MonthlyExpensesAndOwnerPay float64 `json:"monthlyExpensesAndOwnerPay,omitempty"`
	MonthsCount                int     `json:"monthsCount,omitempty"`

	Notes string `json:"notes,omitempty"`

	// PaymentID links to the OwnerPayment covering this reservation.
	// Empty means the reservation is still pending payout.
	PaymentID string `json:"paymentId,omitempty"`
}

// EffectiveType returns the reservation type, defaulting legacy records
// without an explicit type to Standard.
func (r *Reservation) EffectiveType() ReservationType {
	if r.Type == Monthly {
		return Monthly
	}
	return Standard
}

// IsPaid reports whether the reservation is covered by an OwnerPayment.
func (r *Reservation) IsPaid() bool {
	return r.PaymentID != ""
}

// OwnerPayment is an immutable record of one payout run to an owner.
// It is created atomically with the covered reservations being stamped with
// its ID, and deleted atomically with those stamps being cleared.
type OwnerPayment struct {
	ID             string    `json:"id"`
	OwnerName      string    `json:"ownerName"`
	Date           string    `json:"date"`           // YYYY-MM-DD
	AmountPaid     float64   `json:"amountPaid"`     // manual amount entered by the user
	ExpectedAmount float64   `json:"expectedAmount"` // system-computed at confirmation time
	ReservationIDs []string  `json:"reservationIds"`
	Notes          string    `json:"notes,omitempty"`
	ExchangeRate   float64   `json:"exchangeRate,omitempty"` // liquidation rate in effect, if any
	CreatedAt      time.Time `json:"createdAt"`
}

// Rates carries the two global USD->COP rates the valuation falls back to
// when a reservation has no captured rate of its own. They are always passed
// explicitly; the engine never reads them from shared state.
type Rates struct {
	ManualRate float64 `json:"manualRate"`
	MarketRate float64 `json:"marketRate"`
}

// Snapshot is the full-state backup/restore unit.
type Snapshot struct {
	Properties   []Property     `json:"properties"`
	Reservations []Reservation  `json:"reservations"`
	Payments     []OwnerPayment `json:"payments"`
	Timestamp    string         `json:"timestamp"`
	Version      string         `json:"version"`
}
