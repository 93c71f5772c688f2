package handlers

import (
	"net/http"

	"github.com/odihna/balance-backend/models"
	"github.com/odihna/balance-backend/services"
	"github.com/odihna/balance-backend/utils"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles property-related HTTP requests
type PropertyHandler struct {
	propertyService *services.PropertyService
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// ListProperties handles GET /properties
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	properties, err := h.propertyService.ListProperties()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if properties == nil {
		properties = []models.Property{}
	}
	utils.HandleSuccess(c, properties)
}

// GetProperty handles GET /properties/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	property, err := h.propertyService.GetProperty(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, property)
}

// CreateProperty handles POST /properties
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req models.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	property, err := h.propertyService.CreateProperty(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

// UpdateProperty handles PUT /properties/:id
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	var req models.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	property, err := h.propertyService.UpdateProperty(c.Param("id"), &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, property)
}

// DeleteProperty handles DELETE /properties/:id
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	if err := h.propertyService.DeleteProperty(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"message": "Property deleted successfully"})
}
