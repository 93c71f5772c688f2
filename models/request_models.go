package models

// CreatePropertyRequest request model
type CreatePropertyRequest struct {
	Name           string  `json:"name" binding:"required"`
	OwnerName      string  `json:"ownerName" binding:"required"`
	City           string  `json:"city"`
	CommissionRate float64 `json:"commissionRate" binding:"min=0,max=100"`
}

// SaveReservationRequest request model, shared by create and update.
// For Airbnb Standard reservations the caller supplies either the USD amount
// or the COP total plus the captured exchange rate; the service derives the
// other side per EnteredAs.
type SaveReservationRequest struct {
	PropertyID   string          `json:"propertyId" binding:"required"`
	GuestName    string          `json:"guestName" binding:"required"`
	CheckInDate  string          `json:"checkInDate" binding:"required"`
	CheckOutDate string          `json:"checkOutDate" binding:"required"`
	Platform     Platform        `json:"platform" binding:"required"`
	Type         ReservationType `json:"reservationType"`

	TotalAmount  float64   `json:"totalAmount" binding:"min=0"`
	USDAmount    float64   `json:"usdAmount" binding:"min=0"`
	ExchangeRate float64   `json:"exchangeRate" binding:"min=0"`
	EnteredAs    EnteredAs `json:"enteredAs"`

	MonthlyExpensesAndOwnerPay float64 `json:"monthlyExpensesAndOwnerPay" binding:"min=0"`

	Notes string `json:"notes"`
}

// MonthlyReportRequest request model. Month is YYYY-MM.
type MonthlyReportRequest struct {
	Month string `json:"month" binding:"required"`
	Rates Rates  `json:"rates"`
}

// CustomReportRequest request model for arbitrary date-range reports.
type CustomReportRequest struct {
	StartDate   string   `json:"startDate" binding:"required"`
	EndDate     string   `json:"endDate" binding:"required"`
	ExcludedIDs []string `json:"excludedIds"`
	Rates       Rates    `json:"rates"`
}

// LiquidationRequest request model for the what-if recalculation.
type LiquidationRequest struct {
	Rate        float64  `json:"rate" binding:"required,gt=0"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	ExcludedIDs []string `json:"excludedIds"`
	Rates       Rates    `json:"rates"`
}

// PendingPaymentsRequest request model for the date-filtered pending pool.
type PendingPaymentsRequest struct {
	Window DateWindow `json:"window"`
	Rates  Rates      `json:"rates"`
}

// ConfirmPaymentRequest request model. AmountPaid may deliberately differ
// from the computed expected amount; both end up on the payment record.
type ConfirmPaymentRequest struct {
	OwnerName       string   `json:"ownerName" binding:"required"`
	Date            string   `json:"date"`
	AmountPaid      float64  `json:"amountPaid"`
	Notes           string   `json:"notes"`
	ReservationIDs  []string `json:"reservationIds" binding:"required"`
	LiquidationRate float64  `json:"liquidationRate"`
	Rates           Rates    `json:"rates"`
}

// UpdateRatesRequest request model
type UpdateRatesRequest struct {
	ManualRate float64 `json:"manualRate" binding:"required,gt=0"`
	MarketRate float64 `json:"marketRate" binding:"min=0"`
}
