package routes

import (
	"github.com/odihna/balance-backend/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) {
	h := handlers.InitHandlers()

	v1 := router.Group("/api/v1")
	{
		// Property endpoints
		v1.GET("/properties", h.Properties.ListProperties)
		v1.GET("/properties/:id", h.Properties.GetProperty)
		v1.POST("/properties", h.Properties.CreateProperty)
		v1.PUT("/properties/:id", h.Properties.UpdateProperty)
		v1.DELETE("/properties/:id", h.Properties.DeleteProperty)

		// Reservation endpoints
		v1.GET("/reservations", h.Reservations.ListReservations)
		v1.GET("/reservations/:id", h.Reservations.GetReservation)
		v1.POST("/reservations", h.Reservations.CreateReservation)
		v1.PUT("/reservations/:id", h.Reservations.UpdateReservation)
		v1.DELETE("/reservations/:id", h.Reservations.DeleteReservation)

		// Rate settings
		v1.GET("/rates", h.Rates.GetRates)
		v1.PUT("/rates", h.Rates.UpdateRates)

		// Report endpoints
		v1.POST("/reports/monthly", h.Reports.MonthlyReport)
		v1.POST("/reports/custom", h.Reports.CustomReport)
		v1.POST("/reports/liquidation", h.Reports.LiquidationReport)

		// Payment endpoints
		v1.POST("/payments/pending", h.Payments.PendingPayments)
		v1.POST("/payments/confirm", h.Payments.ConfirmPayment)
		v1.GET("/payments", h.Payments.ListPayments)
		v1.DELETE("/payments/:id", h.Payments.DeletePayment)

		// Backup endpoints
		v1.GET("/backup", h.Backup.ExportBackup)
		v1.POST("/backup", h.Backup.ImportBackup)

		// Excel endpoints
		v1.GET("/excel/export/:month", h.Excel.ExportMonth)
		v1.POST("/excel/import", h.Excel.ImportReservations)
	}
}
