package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/odihna/balance-backend/models"
	"github.com/odihna/balance-backend/utils"
	"github.com/xuri/excelize/v2"
)

// ExcelService handles Excel export and import functionality
type ExcelService struct {
	properties         PropertyStore
	payments           PaymentStore
	reservationService *ReservationService
	reportService      *ReportService
}

// NewExcelService creates a new Excel service
func NewExcelService(properties PropertyStore, payments PaymentStore, reservationService *ReservationService, reportService *ReportService) *ExcelService {
	return &ExcelService{
		properties:         properties,
		payments:           payments,
		reservationService: reservationService,
		reportService:      reportService,
	}
}

// ImportResult summarizes an Excel import run
type ImportResult struct {
	Imported  int      `json:"imported"`
	RowErrors []string `json:"rowErrors,omitempty"`
}

// ExportMonthToExcel generates the monthly workbook: owner summary,
// reservation detail with the commission split, and the payment history.
func (s *ExcelService) ExportMonthToExcel(month string, rates models.Rates) (*excelize.File, string, error) {
	if err := utils.ValidateMonth(month, "month"); err != nil {
		return nil, "", err
	}

	propertyList, err := s.properties.List()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get properties: %v", err)
	}
	reservationList, err := s.reservationService.ListReservations()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get reservations: %v", err)
	}
	paymentList, err := s.payments.List()
	if err != nil {
		// Payments are supplementary on the export; keep going without them
		paymentList = []models.OwnerPayment{}
	}

	f := excelize.NewFile()

	if err := s.createOwnerSummarySheet(f, propertyList, reservationList, month, rates); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}
	if err := s.createReservationSheet(f, propertyList, reservationList, month, rates); err != nil {
		return nil, "", fmt.Errorf("failed to create reservation sheet: %v", err)
	}
	if err := s.createPaymentSheet(f, paymentList); err != nil {
		return nil, "", fmt.Errorf("failed to create payment sheet: %v", err)
	}

	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s.xlsx", utils.CleanFileName(
		fmt.Sprintf("Balance_%s_Export_%s", month, time.Now().Format("2006-01-02"))))

	return f, filename, nil
}

// createOwnerSummarySheet creates Sheet 1: per-owner totals for the month
func (s *ExcelService) createOwnerSummarySheet(f *excelize.File, properties []models.Property, reservations []models.Reservation, month string, rates models.Rates) error {
	sheetName := "Resumen"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	reports := s.reportService.MonthlyOwnerReport(properties, reservations, month, nil, rates)

	owners := make([]string, 0, len(reports))
	for owner := range reports {
		owners = append(owners, owner)
	}
	sort.Strings(owners)

	headers := []string{"Propietario", "Propiedades", "Ingresos", "Comision", "Pago al Propietario"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", "E1", headerStyle)

	for i, owner := range owners {
		report := reports[owner]
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), report.OwnerName)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), strings.Join(report.Properties, ", "))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), report.Revenue)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), report.Commission)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), report.Payout)
	}

	f.SetColWidth(sheetName, "A", "E", 18)
	f.SetColWidth(sheetName, "B", "B", 30)

	return nil
}

// createReservationSheet creates Sheet 2: reservation detail for the month
func (s *ExcelService) createReservationSheet(f *excelize.File, properties []models.Property, reservations []models.Reservation, month string, rates models.Rates) error {
	sheetName := "Reservas"
	f.NewSheet(sheetName)

	headers := []string{"Propiedad", "Huesped", "Entrada", "Salida", "Plataforma", "Tipo", "USD", "Tasa", "Total COP", "Comision", "Pago Propietario", "Pagada"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", "L1", headerStyle)

	reports := s.reportService.MonthlyOwnerReport(properties, reservations, month, nil, rates)
	paidIndex := make(map[string]bool, len(reservations))
	for i := range reservations {
		paidIndex[reservations[i].ID] = reservations[i].IsPaid()
	}
	usdIndex := make(map[string]*models.Reservation, len(reservations))
	for i := range reservations {
		usdIndex[reservations[i].ID] = &reservations[i]
	}

	owners := make([]string, 0, len(reports))
	for owner := range reports {
		owners = append(owners, owner)
	}
	sort.Strings(owners)

	row := 2
	for _, owner := range owners {
		for _, line := range reports[owner].Reservations {
			res := usdIndex[line.ReservationID]
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), line.PropertyName)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), line.GuestName)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), line.CheckInDate)
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), line.CheckOutDate)
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), string(line.Platform))
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), string(res.EffectiveType()))
			if res.USDAmount > 0 {
				f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), res.USDAmount)
				f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), res.ExchangeRate)
			}
			f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), line.LocalAmount)
			f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), line.Commission)
			f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), line.OwnerPayout)
			if paidIndex[line.ReservationID] {
				f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), "Si")
			} else {
				f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), "No")
			}
			row++
		}
	}

	f.SetColWidth(sheetName, "A", "L", 14)
	f.SetColWidth(sheetName, "B", "B", 22)

	return nil
}

// createPaymentSheet creates Sheet 3: payment history
func (s *ExcelService) createPaymentSheet(f *excelize.File, payments []models.OwnerPayment) error {
	sheetName := "Pagos"
	f.NewSheet(sheetName)

	headers := []string{"Fecha", "Propietario", "Monto Pagado", "Monto Esperado", "Reservas", "Tasa Liquidacion", "Notas"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", "G1", headerStyle)

	for i, payment := range payments {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), payment.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), payment.OwnerName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), payment.AmountPaid)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), payment.ExpectedAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), len(payment.ReservationIDs))
		if payment.ExchangeRate > 0 {
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), payment.ExchangeRate)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), payment.Notes)
	}

	f.SetColWidth(sheetName, "A", "G", 16)

	return nil
}

// Column synonyms accepted on import, keyed by normalized header. The sheets
// come from owners and co-hosts who label columns in Spanish, English, or a
// mix.
var importHeaderSynonyms = map[string]string{
	"propiedad": "property", "property": "property", "apartamento": "property", "inmueble": "property",
	"huesped": "guest", "huésped": "guest", "guest": "guest", "cliente": "guest", "nombrehuesped": "guest",
	"entrada": "checkin", "checkin": "checkin", "llegada": "checkin", "fechaentrada": "checkin",
	"salida": "checkout", "checkout": "checkout", "fechasalida": "checkout",
	"plataforma": "platform", "platform": "platform", "canal": "platform",
	"total": "total", "totalcop": "total", "montototal": "total", "valortotal": "total", "totalamount": "total",
	"usd": "usd", "montousd": "usd", "usdamount": "usd", "dolares": "usd", "dólares": "usd",
	"tasa": "rate", "tasadecambio": "rate", "trm": "rate", "exchangerate": "rate", "cambio": "rate",
	"tipo": "type", "type": "type",
	"gastos": "expenses", "gastosypagopropietario": "expenses", "monthlyexpenses": "expenses",
	"notas": "notes", "notes": "notes", "observaciones": "notes",
}

// ImportReservationsFromExcel reads reservations from the first sheet of an
// uploaded workbook. The header row is sniffed by synonym, properties are
// matched by name, and each bad row is reported without aborting the rest.
func (s *ExcelService) ImportReservationsFromExcel(f *excelize.File) (*ImportResult, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, utils.NewBadRequestError("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %v", err)
	}
	if len(rows) < 2 {
		return nil, utils.NewBadRequestError("sheet has no data rows")
	}

	columns := make(map[string]int)
	for i, header := range rows[0] {
		if field, ok := importHeaderSynonyms[utils.NormalizeHeader(header)]; ok {
			if _, taken := columns[field]; !taken {
				columns[field] = i
			}
		}
	}
	for _, required := range []string{"property", "guest", "checkin", "checkout", "platform"} {
		if _, ok := columns[required]; !ok {
			return nil, utils.NewBadRequestError(fmt.Sprintf("missing required column: %s", required))
		}
	}

	propertyList, err := s.properties.List()
	if err != nil {
		return nil, err
	}
	propertyByName := make(map[string]*models.Property, len(propertyList))
	for i := range propertyList {
		propertyByName[utils.NormalizeHeader(propertyList[i].Name)] = &propertyList[i]
	}

	result := &ImportResult{}
	for i, row := range rows[1:] {
		rowNum := i + 2
		req, err := s.buildImportRequest(row, columns, propertyByName)
		if err != nil {
			result.RowErrors = append(result.RowErrors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		if _, err := s.reservationService.CreateReservation(req); err != nil {
			result.RowErrors = append(result.RowErrors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		result.Imported++
	}
	return result, nil
}

// buildImportRequest converts one spreadsheet row into a save request.
func (s *ExcelService) buildImportRequest(row []string, columns map[string]int, propertyByName map[string]*models.Property) (*models.SaveReservationRequest, error) {
	cell := func(field string) string {
		idx, ok := columns[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	property, ok := propertyByName[utils.NormalizeHeader(cell("property"))]
	if !ok {
		return nil, fmt.Errorf("unknown property %q", cell("property"))
	}
	checkIn, err := parseImportDate(cell("checkin"))
	if err != nil {
		return nil, fmt.Errorf("bad check-in date %q", cell("checkin"))
	}
	checkOut, err := parseImportDate(cell("checkout"))
	if err != nil {
		return nil, fmt.Errorf("bad check-out date %q", cell("checkout"))
	}

	req := &models.SaveReservationRequest{
		PropertyID:   property.ID,
		GuestName:    cell("guest"),
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Platform:     parseImportPlatform(cell("platform")),
		Notes:        cell("notes"),
	}

	if strings.EqualFold(cell("type"), "monthly") || strings.EqualFold(cell("type"), "mensual") {
		req.Type = models.Monthly
	}

	if v := cell("total"); v != "" {
		amount, err := parseImportAmount(v)
		if err != nil {
			return nil, fmt.Errorf("bad total %q", v)
		}
		req.TotalAmount = amount
		req.EnteredAs = models.EnteredAsCOP
	}
	if v := cell("usd"); v != "" {
		amount, err := parseImportAmount(v)
		if err != nil {
			return nil, fmt.Errorf("bad USD amount %q", v)
		}
		req.USDAmount = amount
		req.EnteredAs = models.EnteredAsUSD
	}
	if v := cell("rate"); v != "" {
		rate, err := parseImportAmount(v)
		if err != nil {
			return nil, fmt.Errorf("bad exchange rate %q", v)
		}
		req.ExchangeRate = rate
	}
	if v := cell("expenses"); v != "" {
		amount, err := parseImportAmount(v)
		if err != nil {
			return nil, fmt.Errorf("bad expenses amount %q", v)
		}
		req.MonthlyExpensesAndOwnerPay = amount
	}
	return req, nil
}

var importDateLayouts = []string{utils.DateLayout, "02/01/2006", "2/1/2006", "01-02-06"}

func parseImportDate(value string) (string, error) {
	for _, layout := range importDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(utils.DateLayout), nil
		}
	}
	return "", fmt.Errorf("unparseable date")
}

// parseImportAmount accepts both "1.234.567,89" and "1,234,567.89" style
// numbers, plus a leading currency sign. A dot-only number like "400.000"
// with three digits per group is read as Spanish thousands, not a fraction.
func parseImportAmount(value string) (float64, error) {
	cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(value), "$"))
	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	switch {
	case lastComma > lastDot:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	case lastComma >= 0:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case lastDot >= 0 && dotGroupsAreThousands(cleaned):
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}
	return strconv.ParseFloat(cleaned, 64)
}

func dotGroupsAreThousands(value string) bool {
	groups := strings.Split(value, ".")
	for _, group := range groups[1:] {
		if len(group) != 3 {
			return false
		}
	}
	return true
}

func parseImportPlatform(value string) models.Platform {
	switch utils.NormalizeHeader(value) {
	case "airbnb":
		return models.PlatformAirbnb
	case "booking", "bookingcom":
		return models.PlatformBooking
	case "directo", "direct", "directbooking":
		return models.PlatformDirect
	default:
		return models.PlatformOther
	}
}
