package repository

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/odihna/balance-backend/models"
	"github.com/odihna/balance-backend/utils"
)

// PaymentRepository handles owner payment data operations. Creating and
// deleting a payment also stamps or clears payment_id on the covered
// reservations, in the same transaction, so the pending pool and the
// payment history can never disagree.
type PaymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// List retrieves all payments, newest first
func (r *PaymentRepository) List() ([]models.OwnerPayment, error) {
	query := `
		SELECT id, owner_name, payment_date, amount_paid, expected_amount,
			reservation_ids, notes, exchange_rate, created_at
		FROM payments
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.OwnerPayment
	for rows.Next() {
		var payment models.OwnerPayment
		err := rows.Scan(&payment.ID, &payment.OwnerName, &payment.Date,
			&payment.AmountPaid, &payment.ExpectedAmount,
			pq.Array(&payment.ReservationIDs), &payment.Notes,
			&payment.ExchangeRate, &payment.CreatedAt)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

// Get retrieves a payment by its ID
func (r *PaymentRepository) Get(id string) (*models.OwnerPayment, error) {
	query := `
		SELECT id, owner_name, payment_date, amount_paid, expected_amount,
			reservation_ids, notes, exchange_rate, created_at
		FROM payments
		WHERE id = $1
	`
	var payment models.OwnerPayment
	err := r.db.QueryRow(query, id).Scan(&payment.ID, &payment.OwnerName,
		&payment.Date, &payment.AmountPaid, &payment.ExpectedAmount,
		pq.Array(&payment.ReservationIDs), &payment.Notes,
		&payment.ExchangeRate, &payment.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, utils.NewNotFoundError("payment")
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// CreateWithStamps inserts the payment and stamps its ID onto the covered
// reservations in one transaction. It fails if any reservation is already
// stamped, so two concurrent confirmations cannot double-pay.
func (r *PaymentRepository) CreateWithStamps(payment *models.OwnerPayment) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO payments (id, owner_name, payment_date, amount_paid,
			expected_amount, reservation_ids, notes, exchange_rate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = tx.Exec(query, payment.ID, payment.OwnerName, payment.Date,
		payment.AmountPaid, payment.ExpectedAmount,
		pq.Array(payment.ReservationIDs), payment.Notes,
		payment.ExchangeRate, payment.CreatedAt)
	if err != nil {
		return err
	}

	result, err := tx.Exec(`
		UPDATE reservations
		SET payment_id = $1
		WHERE id = ANY($2) AND payment_id = ''
	`, payment.ID, pq.Array(payment.ReservationIDs))
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected != int64(len(payment.ReservationIDs)) {
		return utils.NewValidationError("some reservations are missing or already paid")
	}

	return tx.Commit()
}

// DeleteWithStamps deletes the payment and clears the stamp from its
// reservations in one transaction. Returns false when the payment does not
// exist.
func (r *PaymentRepository) DeleteWithStamps(id string) (bool, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE reservations SET payment_id = '' WHERE payment_id = $1`, id); err != nil {
		return false, err
	}

	result, err := tx.Exec(`DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, tx.Commit()
	}

	return true, tx.Commit()
}
