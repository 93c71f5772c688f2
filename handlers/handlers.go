package handlers

import (
	"github.com/odihna/balance-backend/repository"
	"github.com/odihna/balance-backend/services"
)

// HandlerSet contains all HTTP handlers wired to their services
type HandlerSet struct {
	Properties   *PropertyHandler
	Reservations *ReservationHandler
	Reports      *ReportHandler
	Payments     *PaymentHandler
	Rates        *RateHandler
	Backup       *BackupHandler
	Excel        *ExcelHandler
}

// InitHandlers wires repositories and services into the handler set
func InitHandlers() *HandlerSet {
	db := repository.GetDB()

	propertyRepo := repository.NewPropertyRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	rateRepo := repository.NewRateRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	valuationService := services.NewValuationService()
	reportService := services.NewReportService(valuationService)
	liquidationService := services.NewLiquidationService(valuationService)
	rateService := services.NewRateService(rateRepo)
	propertyService := services.NewPropertyService(propertyRepo)
	reservationService := services.NewReservationService(propertyRepo, reservationRepo)
	paymentService := services.NewPaymentService(propertyRepo, reservationRepo, paymentRepo, valuationService)
	backupService := services.NewBackupService(snapshotRepo)
	excelService := services.NewExcelService(propertyRepo, paymentRepo, reservationService, reportService)

	return &HandlerSet{
		Properties:   NewPropertyHandler(propertyService),
		Reservations: NewReservationHandler(reservationService),
		Reports:      NewReportHandler(propertyRepo, reservationRepo, reportService, liquidationService, rateService),
		Payments:     NewPaymentHandler(paymentService, rateService),
		Rates:        NewRateHandler(rateService),
		Backup:       NewBackupHandler(backupService),
		Excel:        NewExcelHandler(excelService, rateService),
	}
}
