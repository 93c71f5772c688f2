package repository

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/odihna/balance-backend/models"
)

// SnapshotRepository reads and replaces the whole data set for
// backup/restore.
type SnapshotRepository struct {
	db           *sql.DB
	properties   *PropertyRepository
	reservations *ReservationRepository
	payments     *PaymentRepository
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{
		db:           db,
		properties:   NewPropertyRepository(db),
		reservations: NewReservationRepository(db),
		payments:     NewPaymentRepository(db),
	}
}

// Export reads every table into one snapshot
func (r *SnapshotRepository) Export() (*models.Snapshot, error) {
	properties, err := r.properties.List()
	if err != nil {
		return nil, err
	}
	reservations, err := r.reservations.List()
	if err != nil {
		return nil, err
	}
	payments, err := r.payments.List()
	if err != nil {
		return nil, err
	}
	return &models.Snapshot{
		Properties:   properties,
		Reservations: reservations,
		Payments:     payments,
	}, nil
}

// Import replaces every table with the snapshot contents in one
// transaction; a failed restore leaves the previous data untouched.
func (r *SnapshotRepository) Import(snapshot *models.Snapshot) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"payments", "reservations", "properties"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return err
		}
	}

	for i := range snapshot.Properties {
		property := &snapshot.Properties[i]
		_, err := tx.Exec(`
			INSERT INTO properties (id, name, owner_name, city, commission_rate)
			VALUES ($1, $2, $3, $4, $5)
		`, property.ID, property.Name, property.OwnerName, property.City, property.CommissionRate)
		if err != nil {
			return err
		}
	}

	for i := range snapshot.Reservations {
		query := `
			INSERT INTO reservations (` + reservationColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		`
		if _, err := tx.Exec(query, reservationArgs(&snapshot.Reservations[i])...); err != nil {
			return err
		}
	}

	for i := range snapshot.Payments {
		payment := &snapshot.Payments[i]
		_, err := tx.Exec(`
			INSERT INTO payments (id, owner_name, payment_date, amount_paid,
				expected_amount, reservation_ids, notes, exchange_rate, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, payment.ID, payment.OwnerName, payment.Date, payment.AmountPaid,
			payment.ExpectedAmount, pq.Array(payment.ReservationIDs),
			payment.Notes, payment.ExchangeRate, payment.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
