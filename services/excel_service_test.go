package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/odihna/balance-backend/models"
	mock_services "github.com/odihna/balance-backend/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestParseImportAmount(t *testing.T) {
	cases := map[string]float64{
		"400000":       400000,
		"$ 400.000":    400000,
		"1.234.567,89": 1234567.89,
		"1,234,567.89": 1234567.89,
		"123,45":       123.45,
	}
	for input, expected := range cases {
		amount, err := parseImportAmount(input)
		assert.NoError(t, err, input)
		assert.Equal(t, expected, amount, input)
	}

	_, err := parseImportAmount("not a number")
	assert.Error(t, err)
}

func TestParseImportDate(t *testing.T) {
	date, err := parseImportDate("2025-07-03")
	assert.NoError(t, err)
	assert.Equal(t, "2025-07-03", date)

	date, err = parseImportDate("03/07/2025")
	assert.NoError(t, err)
	assert.Equal(t, "2025-07-03", date)

	_, err = parseImportDate("July 3rd")
	assert.Error(t, err)
}

func TestExcelService_ImportReservations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	properties := mock_services.NewMockPropertyStore(ctrl)
	reservations := mock_services.NewMockReservationStore(ctrl)
	payments := mock_services.NewMockPaymentStore(ctrl)

	prop := models.Property{ID: "p1", Name: "Apto Centro", OwnerName: "Maria", CommissionRate: 20}
	properties.EXPECT().List().Return([]models.Property{prop}, nil)
	properties.EXPECT().Get("p1").Return(&prop, nil).AnyTimes()

	var created []*models.Reservation
	reservations.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.Reservation) error {
		created = append(created, r)
		return nil
	}).AnyTimes()

	valuation := NewValuationService()
	service := NewExcelService(properties, payments,
		NewReservationService(properties, reservations),
		NewReportService(valuation))

	// Mixed-language headers, one good row, one row with a bad date and one
	// with an unknown property
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Propiedad", "Huesped", "Check-In", "Salida", "Plataforma", "Tasa", "USD"},
		{"Apto Centro", "Ana", "2025-07-03", "2025-07-06", "Airbnb", 4000, 100},
		{"Apto Centro", "Bob", "someday", "2025-07-10", "Directo", "", ""},
		{"Casa Fantasma", "Eva", "2025-07-05", "2025-07-08", "Directo", "", ""},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		assert.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	result, err := service.ImportReservationsFromExcel(f)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Len(t, result.RowErrors, 2)

	assert.Len(t, created, 1)
	assert.Equal(t, "Ana", created[0].GuestName)
	assert.Equal(t, models.PlatformAirbnb, created[0].Platform)
	assert.Equal(t, 400000.0, created[0].TotalAmount)
}

func TestExcelService_ImportReservations_MissingColumns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	properties := mock_services.NewMockPropertyStore(ctrl)
	reservations := mock_services.NewMockReservationStore(ctrl)
	payments := mock_services.NewMockPaymentStore(ctrl)

	valuation := NewValuationService()
	service := NewExcelService(properties, payments,
		NewReservationService(properties, reservations),
		NewReportService(valuation))

	f := excelize.NewFile()
	header := []interface{}{"Huesped", "Entrada"}
	assert.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	row := []interface{}{"Ana", "2025-07-03"}
	assert.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))

	_, err := service.ImportReservationsFromExcel(f)
	assert.Error(t, err)
}
