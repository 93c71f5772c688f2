package repository

import (
	"database/sql"

	"github.com/odihna/balance-backend/models"
)

// RateRepository persists the global rate settings as a single settings row.
type RateRepository struct {
	db *sql.DB
}

// NewRateRepository creates a new rate repository
func NewRateRepository(db *sql.DB) *RateRepository {
	return &RateRepository{db: db}
}

// Get retrieves the stored rates. The settings row is seeded at schema
// creation, so a miss just means zero rates.
func (r *RateRepository) Get() (models.Rates, error) {
	var rates models.Rates
	err := r.db.QueryRow(`SELECT manual_rate, market_rate FROM settings WHERE id = 1`).
		Scan(&rates.ManualRate, &rates.MarketRate)
	if err == sql.ErrNoRows {
		return models.Rates{}, nil
	}
	if err != nil {
		return models.Rates{}, err
	}
	return rates, nil
}

// Update stores new rates
func (r *RateRepository) Update(rates models.Rates) error {
	_, err := r.db.Exec(`
		INSERT INTO settings (id, manual_rate, market_rate)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET manual_rate = $1, market_rate = $2
	`, rates.ManualRate, rates.MarketRate)
	return err
}
