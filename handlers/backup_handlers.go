package handlers

import (
	"github.com/odihna/balance-backend/models"
	"github.com/odihna/balance-backend/services"
	"github.com/odihna/balance-backend/utils"

	"github.com/gin-gonic/gin"
)

// BackupHandler handles snapshot export and restore HTTP requests
type BackupHandler struct {
	backupService *services.BackupService
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService *services.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// ExportBackup handles GET /backup
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	snapshot, err := h.backupService.Export()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, snapshot)
}

// ImportBackup handles POST /backup. The whole data set is replaced; the
// previous state survives only if the restore fails.
func (h *BackupHandler) ImportBackup(c *gin.Context) {
	var snapshot models.Snapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := h.backupService.Import(&snapshot); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"message": "Backup restored successfully"})
}
