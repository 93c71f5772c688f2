package handlers

import (
	"github.com/odihna/balance-backend/models"
	"github.com/odihna/balance-backend/services"
	"github.com/odihna/balance-backend/utils"

	"github.com/gin-gonic/gin"
)

// RateHandler handles rate settings HTTP requests
type RateHandler struct {
	rateService *services.RateService
}

// NewRateHandler creates a new rate handler
func NewRateHandler(rateService *services.RateService) *RateHandler {
	return &RateHandler{rateService: rateService}
}

// GetRates handles GET /rates
func (h *RateHandler) GetRates(c *gin.Context) {
	rates, err := h.rateService.GetRates()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, rates)
}

// UpdateRates handles PUT /rates
func (h *RateHandler) UpdateRates(c *gin.Context) {
	var req models.UpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	rates, err := h.rateService.UpdateRates(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, rates)
}
