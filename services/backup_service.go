package services

import (
	"time"

	"github.com/odihna/balance-backend/models"
	"github.com/odihna/balance-backend/utils"
)

// BackupService exports and restores full-state snapshots.
type BackupService struct {
	snapshots SnapshotStore
}

// NewBackupService creates a new backup service
func NewBackupService(snapshots SnapshotStore) *BackupService {
	return &BackupService{snapshots: snapshots}
}

// Export returns the whole data set stamped with the current time and the
// snapshot schema version.
func (s *BackupService) Export() (*models.Snapshot, error) {
	snapshot, err := s.snapshots.Export()
	if err != nil {
		return nil, err
	}
	normalizeSnapshot(snapshot)
	snapshot.Timestamp = time.Now().UTC().Format(time.RFC3339)
	snapshot.Version = utils.SnapshotVersion
	return snapshot, nil
}

// Import replaces the whole data set with the snapshot contents, in one
// transaction. Hand-edited or truncated backup files are common, so missing
// sections restore as empty instead of failing, but a snapshot with no
// recognizable content at all is rejected.
func (s *BackupService) Import(snapshot *models.Snapshot) error {
	if snapshot == nil {
		return utils.NewBadRequestError("snapshot is empty")
	}
	if snapshot.Properties == nil && snapshot.Reservations == nil && snapshot.Payments == nil {
		return utils.NewBadRequestError("snapshot has no data sections")
	}
	normalizeSnapshot(snapshot)
	return s.snapshots.Import(snapshot)
}

// normalizeSnapshot replaces nil sections with empty slices so both export
// JSON and restore writes see consistent shapes.
func normalizeSnapshot(snapshot *models.Snapshot) {
	if snapshot.Properties == nil {
		snapshot.Properties = []models.Property{}
	}
	if snapshot.Reservations == nil {
		snapshot.Reservations = []models.Reservation{}
	}
	if snapshot.Payments == nil {
		snapshot.Payments = []models.OwnerPayment{}
	}
	for i := range snapshot.Payments {
		if snapshot.Payments[i].ReservationIDs == nil {
			snapshot.Payments[i].ReservationIDs = []string{}
		}
	}
}
