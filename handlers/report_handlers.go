package handlers

import (
	"github.com/odihna/balance-backend/models"
	"github.com/odihna/balance-backend/services"
	"github.com/odihna/balance-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles report-related HTTP requests. Reports are computed
// on demand from the stored data; nothing is cached or persisted.
type ReportHandler struct {
	properties         services.PropertyStore
	reservations       services.ReservationStore
	reportService      *services.ReportService
	liquidationService *services.LiquidationService
	rateService        *services.RateService
}

// NewReportHandler creates a new report handler
func NewReportHandler(properties services.PropertyStore, reservations services.ReservationStore, reportService *services.ReportService, liquidationService *services.LiquidationService, rateService *services.RateService) *ReportHandler {
	return &ReportHandler{
		properties:         properties,
		reservations:       reservations,
		reportService:      reportService,
		liquidationService: liquidationService,
		rateService:        rateService,
	}
}

// MonthlyReport handles POST /reports/monthly
func (h *ReportHandler) MonthlyReport(c *gin.Context) {
	var req models.MonthlyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}
	if err := utils.ValidateMonth(req.Month, "month"); err != nil {
		utils.HandleError(c, err)
		return
	}

	properties, reservations, rates, err := h.loadReportData(req.Rates)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{
		"month":             req.Month,
		"rates":             rates,
		"stats":             h.reportService.MonthlyStats(properties, reservations, req.Month, rates),
		"owners":            h.reportService.MonthlyOwnerReport(properties, reservations, req.Month, nil, rates),
		"revenueByProperty": h.reportService.RevenueByProperty(properties, reservations, req.Month, rates),
		"platformCounts":    h.reportService.PlatformCounts(reservations, req.Month),
	})
}

// CustomReport handles POST /reports/custom
func (h *ReportHandler) CustomReport(c *gin.Context) {
	var req models.CustomReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}
	if err := utils.ValidateDate(req.StartDate, "startDate"); err != nil {
		utils.HandleError(c, err)
		return
	}
	if err := utils.ValidateDate(req.EndDate, "endDate"); err != nil {
		utils.HandleError(c, err)
		return
	}
	if err := utils.ValidateDateOrder(req.StartDate, req.EndDate); err != nil {
		utils.HandleError(c, err)
		return
	}

	properties, reservations, rates, err := h.loadReportData(req.Rates)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{
		"startDate": req.StartDate,
		"endDate":   req.EndDate,
		"rates":     rates,
		"owners": h.reportService.CustomRangeReport(properties, reservations,
			req.StartDate, req.EndDate, toIDSet(req.ExcludedIDs), rates),
	})
}

// LiquidationReport handles POST /reports/liquidation
func (h *ReportHandler) LiquidationReport(c *gin.Context) {
	var req models.LiquidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}
	window := models.DateWindow{Start: req.StartDate, End: req.EndDate}
	if window.Start != "" {
		if err := utils.ValidateDate(window.Start, "startDate"); err != nil {
			utils.HandleError(c, err)
			return
		}
	}
	if window.End != "" {
		if err := utils.ValidateDate(window.End, "endDate"); err != nil {
			utils.HandleError(c, err)
			return
		}
	}

	properties, reservations, rates, err := h.loadReportData(req.Rates)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{
		"rate":  req.Rate,
		"rates": rates,
		"owners": h.liquidationService.RecalculateAtRate(properties, reservations,
			req.Rate, window, toIDSet(req.ExcludedIDs), rates),
	})
}

func (h *ReportHandler) loadReportData(override models.Rates) ([]models.Property, []models.Reservation, models.Rates, error) {
	rates, err := h.rateService.Resolve(override)
	if err != nil {
		return nil, nil, models.Rates{}, err
	}
	properties, err := h.properties.List()
	if err != nil {
		return nil, nil, models.Rates{}, err
	}
	reservations, err := h.reservations.List()
	if err != nil {
		return nil, nil, models.Rates{}, err
	}
	return properties, reservations, rates, nil
}

func toIDSet(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
