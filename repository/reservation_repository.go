package repository

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/odihna/balance-backend/models"
	"github.com/odihna/balance-backend/utils"
)

const reservationColumns = `
	id, property_id, guest_name, check_in_date, check_out_date, platform,
	reservation_type, total_amount, usd_amount, exchange_rate, entered_as,
	monthly_expenses_and_owner_pay, months_count, notes, payment_id
`

// ReservationRepository handles reservation data operations
type ReservationRepository struct {
	db *sql.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// List retrieves all reservations, newest check-in first
func (r *ReservationRepository) List() ([]models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY check_in_date DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Get retrieves a reservation by its ID
func (r *ReservationRepository) Get(id string) (*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	reservation, err := scanReservation(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, utils.NewNotFoundError("reservation")
	}
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

// GetBatch retrieves the reservations matching the given IDs. Missing IDs
// are simply absent from the result; the caller decides whether that is an
// error.
func (r *ReservationRepository) GetBatch(ids []string) ([]models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ANY($1)`
	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Create inserts a new reservation
func (r *ReservationRepository) Create(reservation *models.Reservation) error {
	query := `
		INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.Exec(query, reservationArgs(reservation)...)
	return err
}

// Update stores changed reservation fields
func (r *ReservationRepository) Update(reservation *models.Reservation) error {
	query := `
		UPDATE reservations
		SET property_id = $2, guest_name = $3, check_in_date = $4,
			check_out_date = $5, platform = $6, reservation_type = $7,
			total_amount = $8, usd_amount = $9, exchange_rate = $10,
			entered_as = $11, monthly_expenses_and_owner_pay = $12,
			months_count = $13, notes = $14, payment_id = $15
		WHERE id = $1
	`
	result, err := r.db.Exec(query, reservationArgs(reservation)...)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return utils.NewNotFoundError("reservation")
	}
	return nil
}

// Delete removes a reservation by ID
func (r *ReservationRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return utils.NewNotFoundError("reservation")
	}
	return nil
}

func reservationArgs(reservation *models.Reservation) []interface{} {
	return []interface{}{
		reservation.ID, reservation.PropertyID, reservation.GuestName,
		reservation.CheckInDate, reservation.CheckOutDate, reservation.Platform,
		reservation.Type, reservation.TotalAmount, reservation.USDAmount,
		reservation.ExchangeRate, reservation.EnteredAs,
		reservation.MonthlyExpensesAndOwnerPay, reservation.MonthsCount,
		reservation.Notes, reservation.PaymentID,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*models.Reservation, error) {
	var reservation models.Reservation
	err := row.Scan(&reservation.ID, &reservation.PropertyID, &reservation.GuestName,
		&reservation.CheckInDate, &reservation.CheckOutDate, &reservation.Platform,
		&reservation.Type, &reservation.TotalAmount, &reservation.USDAmount,
		&reservation.ExchangeRate, &reservation.EnteredAs,
		&reservation.MonthlyExpensesAndOwnerPay, &reservation.MonthsCount,
		&reservation.Notes, &reservation.PaymentID)
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func scanReservations(rows *sql.Rows) ([]models.Reservation, error) {
	var reservations []models.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *reservation)
	}
	return reservations, rows.Err()
}
