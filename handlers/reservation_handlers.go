package handlers

import (
	"net/http"

	"github.com/odihna/balance-backend/models"
	"github.com/odihna/balance-backend/services"
	"github.com/odihna/balance-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReservationHandler handles reservation-related HTTP requests
type ReservationHandler struct {
	reservationService *services.ReservationService
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationService *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// ListReservations handles GET /reservations
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	reservations, err := h.reservationService.ListReservations()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}
	utils.HandleSuccess(c, reservations)
}

// GetReservation handles GET /reservations/:id
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	reservation, err := h.reservationService.GetReservation(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, reservation)
}

// CreateReservation handles POST /reservations
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req models.SaveReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	reservation, err := h.reservationService.CreateReservation(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// UpdateReservation handles PUT /reservations/:id
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	var req models.SaveReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	reservation, err := h.reservationService.UpdateReservation(c.Param("id"), &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, reservation)
}

// DeleteReservation handles DELETE /reservations/:id
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	if err := h.reservationService.DeleteReservation(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"message": "Reservation deleted successfully"})
}
