package services

import "github.com/odihna/balance-backend/models"

//go:generate mockgen -source=interface.go -destination=mocks/mock_stores.go -package=mock_services

// PropertyStore persists properties.
type PropertyStore interface {
	List() ([]models.Property, error)
	Get(id string) (*models.Property, error)
	Create(property *models.Property) error
	Update(property *models.Property) error
	Delete(id string) error
}

// ReservationStore persists reservations.
type ReservationStore interface {
	List() ([]models.Reservation, error)
	Get(id string) (*models.Reservation, error)
	GetBatch(ids []string) ([]models.Reservation, error)
	Create(reservation *models.Reservation) error
	Update(reservation *models.Reservation) error
	Delete(id string) error
}

// PaymentStore persists owner payments. Creation and deletion are atomic
// with the payment-ID stamps on the covered reservations.
type PaymentStore interface {
	List() ([]models.OwnerPayment, error)
	Get(id string) (*models.OwnerPayment, error)
	// CreateWithStamps inserts the payment and stamps its ID onto every
	// reservation in payment.ReservationIDs, in one transaction.
	CreateWithStamps(payment *models.OwnerPayment) error
	// DeleteWithStamps deletes the payment and clears the stamp from its
	// reservations, in one transaction. Returns ErrNotFound-style miss as
	// (false, nil) so a double reversal is harmless.
	DeleteWithStamps(id string) (bool, error)
}

// RateStore persists the two global USD->COP rates.
type RateStore interface {
	Get() (models.Rates, error)
	Update(rates models.Rates) error
}

// SnapshotStore reads and replaces the whole data set for backup/restore.
// Import swaps everything in one transaction.
type SnapshotStore interface {
	Export() (*models.Snapshot, error)
	Import(snapshot *models.Snapshot) error
}
