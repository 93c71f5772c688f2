package repository

import (
	"database/sql"

	"github.com/odihna/balance-backend/models"
	"github.com/odihna/balance-backend/utils"
)

// PropertyRepository handles property data operations
type PropertyRepository struct {
	db *sql.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// List retrieves all properties ordered by name
func (r *PropertyRepository) List() ([]models.Property, error) {
	query := `
		SELECT id, name, owner_name, city, commission_rate
		FROM properties
		ORDER BY name
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		var property models.Property
		err := rows.Scan(&property.ID, &property.Name, &property.OwnerName,
			&property.City, &property.CommissionRate)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}

	return properties, rows.Err()
}

// Get retrieves a property by its ID
func (r *PropertyRepository) Get(id string) (*models.Property, error) {
	query := `
		SELECT id, name, owner_name, city, commission_rate
		FROM properties
		WHERE id = $1
	`
	var property models.Property
	err := r.db.QueryRow(query, id).Scan(&property.ID, &property.Name,
		&property.OwnerName, &property.City, &property.CommissionRate)
	if err == sql.ErrNoRows {
		return nil, utils.NewNotFoundError("property")
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// Create inserts a new property
func (r *PropertyRepository) Create(property *models.Property) error {
	query := `
		INSERT INTO properties (id, name, owner_name, city, commission_rate)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(query, property.ID, property.Name, property.OwnerName,
		property.City, property.CommissionRate)
	return err
}

// Update stores changed property fields
func (r *PropertyRepository) Update(property *models.Property) error {
	query := `
		UPDATE properties
		SET name = $2, owner_name = $3, city = $4, commission_rate = $5
		WHERE id = $1
	`
	result, err := r.db.Exec(query, property.ID, property.Name, property.OwnerName,
		property.City, property.CommissionRate)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return utils.NewNotFoundError("property")
	}
	return nil
}

// Delete removes a property by ID. Reservations keep their property_id and
// become orphans.
func (r *PropertyRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return utils.NewNotFoundError("property")
	}
	return nil
}
