package handlers

import (
	"fmt"
	"net/http"

	"github.com/odihna/balance-backend/services"
	"github.com/odihna/balance-backend/utils"
	"github.com/xuri/excelize/v2"

	"github.com/gin-gonic/gin"
)

// ExcelHandler handles workbook export and import HTTP requests
type ExcelHandler struct {
	excelService *services.ExcelService
	rateService  *services.RateService
}

// NewExcelHandler creates a new Excel handler
func NewExcelHandler(excelService *services.ExcelService, rateService *services.RateService) *ExcelHandler {
	return &ExcelHandler{excelService: excelService, rateService: rateService}
}

// ExportMonth handles GET /excel/export/:month
func (h *ExcelHandler) ExportMonth(c *gin.Context) {
	rates, err := h.rateService.GetRates()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	excelFile, filename, err := h.excelService.ExportMonthToExcel(c.Param("month"), rates)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	// Set headers for file download
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file: " + err.Error()})
		return
	}
}

// ImportReservations handles POST /excel/import (multipart upload)
func (h *ExcelHandler) ImportReservations(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.HandleError(c, utils.NewBadRequestError("missing file upload"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.HandleError(c, utils.NewBadRequestError("failed to open upload"))
		return
	}
	defer file.Close()

	workbook, err := excelize.OpenReader(file)
	if err != nil {
		utils.HandleError(c, utils.NewBadRequestError("file is not a valid workbook"))
		return
	}
	defer workbook.Close()

	result, err := h.excelService.ImportReservationsFromExcel(workbook)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, result)
}
