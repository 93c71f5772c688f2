// repository/db.go
package repository

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

var db *sql.DB

// InitDB initializes the database connection
func InitDB() error {
	// Get database connection details from environment variables
	host := getEnvOrDefault("DB_HOST", "localhost")
	port := getEnvOrDefault("DB_PORT", "5432")
	user := getEnvOrDefault("DB_USER", "postgres")
	password := getEnvOrDefault("DB_PASSWORD", "postgres")
	dbname := getEnvOrDefault("DB_NAME", "odihna_balance")

	// Create connection string
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	// Connect to database
	var err error
	db, err = sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %v", err)
	}

	// Test the connection
	err = db.Ping()
	if err != nil {
		return fmt.Errorf("failed to ping database: %v", err)
	}

	if err := ensureSchema(db); err != nil {
		return fmt.Errorf("failed to ensure schema: %v", err)
	}

	log.Println("Successfully connected to the database")
	return nil
}

// ensureSchema creates the tables on first boot. Dates are stored as
// YYYY-MM-DD text so SQL comparisons match the string comparisons the
// services do.
func ensureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS properties (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			owner_name TEXT NOT NULL,
			city TEXT NOT NULL DEFAULT '',
			commission_rate DOUBLE PRECISION NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS reservations (
			id TEXT PRIMARY KEY,
			property_id TEXT NOT NULL,
			guest_name TEXT NOT NULL,
			check_in_date TEXT NOT NULL,
			check_out_date TEXT NOT NULL,
			platform TEXT NOT NULL,
			reservation_type TEXT NOT NULL DEFAULT '',
			total_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
			usd_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
			exchange_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
			entered_as TEXT NOT NULL DEFAULT '',
			monthly_expenses_and_owner_pay DOUBLE PRECISION NOT NULL DEFAULT 0,
			months_count INTEGER NOT NULL DEFAULT 0,
			notes TEXT NOT NULL DEFAULT '',
			payment_id TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_check_in ON reservations (check_in_date)`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_payment ON reservations (payment_id)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id TEXT PRIMARY KEY,
			owner_name TEXT NOT NULL,
			payment_date TEXT NOT NULL,
			amount_paid DOUBLE PRECISION NOT NULL DEFAULT 0,
			expected_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
			reservation_ids TEXT[] NOT NULL DEFAULT '{}',
			notes TEXT NOT NULL DEFAULT '',
			exchange_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			manual_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
			market_rate DOUBLE PRECISION NOT NULL DEFAULT 0
		)`,
		`INSERT INTO settings (id, manual_rate, market_rate)
			VALUES (1, 0, 0) ON CONFLICT (id) DO NOTHING`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// CloseDB closes the database connection
func CloseDB() {
	if db != nil {
		db.Close()
	}
}

// GetDB returns the database instance
func GetDB() *sql.DB {
	return db
}

// Helper function to get environment variable with default value
func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
