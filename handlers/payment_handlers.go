package handlers

import (
	"net/http"

	"github.com/odihna/balance-backend/models"
	"github.com/odihna/balance-backend/services"
	"github.com/odihna/balance-backend/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles owner payment HTTP requests
type PaymentHandler struct {
	paymentService *services.PaymentService
	rateService    *services.RateService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService, rateService *services.RateService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, rateService: rateService}
}

// PendingPayments handles POST /payments/pending
func (h *PaymentHandler) PendingPayments(c *gin.Context) {
	var req models.PendingPaymentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}
	if req.Window.Start != "" {
		if err := utils.ValidateDate(req.Window.Start, "window.start"); err != nil {
			utils.HandleError(c, err)
			return
		}
	}
	if req.Window.End != "" {
		if err := utils.ValidateDate(req.Window.End, "window.end"); err != nil {
			utils.HandleError(c, err)
			return
		}
	}

	rates, err := h.rateService.Resolve(req.Rates)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	groups, err := h.paymentService.PendingByOwner(req.Window, rates)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"rates": rates, "owners": groups})
}

// ConfirmPayment handles POST /payments/confirm
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var req models.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	rates, err := h.rateService.Resolve(req.Rates)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	req.Rates = rates

	payment, err := h.paymentService.ConfirmPayment(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// ListPayments handles GET /payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.paymentService.ListPayments()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if payments == nil {
		payments = []models.OwnerPayment{}
	}
	utils.HandleSuccess(c, payments)
}

// DeletePayment handles DELETE /payments/:id
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	if err := h.paymentService.ReversePayment(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"message": "Payment reversed successfully"})
}
