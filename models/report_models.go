package models

// MonthlyStats are the dashboard headline numbers for one calendar month.
type MonthlyStats struct {
	TotalRevenue float64 `json:"totalRevenue"`
	MyEarnings   float64 `json:"myEarnings"`
	OwnerPayouts float64 `json:"ownerPayouts"`
}

// PropertyRevenue is one bar of the revenue-by-property chart.
type PropertyRevenue struct {
	PropertyID string  `json:"propertyId"`
	Name       string  `json:"name"`
	Revenue    float64 `json:"revenue"`
}

// ReservationBreakdown is the per-reservation audit line inside an owner
// report. Amounts are COP.
type ReservationBreakdown struct {
	ReservationID string   `json:"reservationId"`
	PropertyName  string   `json:"propertyName"`
	GuestName     string   `json:"guestName"`
	Platform      Platform `json:"platform"`
	CheckInDate   string   `json:"checkInDate"`
	CheckOutDate  string   `json:"checkOutDate"`
	LocalAmount   float64  `json:"localAmount"`
	Commission    float64  `json:"commission"`
	OwnerPayout   float64  `json:"ownerPayout"`
	// IsPartial marks a reservation that extends outside the requested
	// custom range (month-mode reports never set it).
	IsPartial  bool `json:"isPartial"`
	IsExcluded bool `json:"isExcluded"`
}

// OwnerReport aggregates one owner's reservations over a window.
// Excluded reservations appear in the breakdown but not in the totals.
type OwnerReport struct {
	OwnerName    string                 `json:"ownerName"`
	Properties   []string               `json:"properties"`
	Revenue      float64                `json:"revenue"`
	Commission   float64                `json:"commission"`
	Payout       float64                `json:"payout"`
	Reservations []ReservationBreakdown `json:"reservations"`
}

// LiquidationEntry reports the what-if payout delta for one owner when
// Airbnb reservations are re-priced at an alternate rate.
type LiquidationEntry struct {
	OwnerName         string  `json:"ownerName"`
	OriginalPayout    float64 `json:"originalPayout"`
	LiquidationPayout float64 `json:"liquidationPayout"`
	Difference        float64 `json:"difference"` // positive = owner gains under the alternate rate
	AffectedCount     int     `json:"affectedCount"`
}

// PendingReservation is one unpaid reservation offered for batching into an
// owner payment.
type PendingReservation struct {
	ReservationID string   `json:"reservationId"`
	PropertyName  string   `json:"propertyName"`
	GuestName     string   `json:"guestName"`
	Platform      Platform `json:"platform"`
	CheckInDate   string   `json:"checkInDate"`
	CheckOutDate  string   `json:"checkOutDate"`
	LocalAmount   float64  `json:"localAmount"`
	OwnerPayout   float64  `json:"ownerPayout"`
	// Conflict marks a reservation whose checkout falls after the requested
	// window; it is pre-excluded from the default total but stays toggleable.
	Conflict bool `json:"conflict"`
}

// PendingGroup is an owner's pending pool. TotalPayout covers only the
// non-conflicting reservations.
type PendingGroup struct {
	OwnerName    string               `json:"ownerName"`
	TotalPayout  float64              `json:"totalPayout"`
	Count        int                  `json:"count"`
	Reservations []PendingReservation `json:"reservations"`
}

// DateWindow is an optional [start, end] filter, both ends YYYY-MM-DD and
// inclusive. Empty strings leave that side open.
type DateWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
