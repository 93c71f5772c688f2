package services

import (
	"github.com/odihna/balance-backend/models"
	"github.com/odihna/balance-backend/utils"
)

// PropertyService handles property CRUD and validation.
type PropertyService struct {
	properties PropertyStore
}

// NewPropertyService creates a new property service
func NewPropertyService(properties PropertyStore) *PropertyService {
	return &PropertyService{properties: properties}
}

// ListProperties returns all properties
func (s *PropertyService) ListProperties() ([]models.Property, error) {
	return s.properties.List()
}

// GetProperty returns one property by ID
func (s *PropertyService) GetProperty(id string) (*models.Property, error) {
	return s.properties.Get(id)
}

// CreateProperty validates and stores a new property
func (s *PropertyService) CreateProperty(req *models.CreatePropertyRequest) (*models.Property, error) {
	if err := validatePropertyFields(req.Name, req.OwnerName, req.CommissionRate); err != nil {
		return nil, err
	}

	property := &models.Property{
		ID:             utils.GenerateID(),
		Name:           req.Name,
		OwnerName:      req.OwnerName,
		City:           req.City,
		CommissionRate: req.CommissionRate,
	}
	if err := s.properties.Create(property); err != nil {
		return nil, err
	}
	return property, nil
}

// UpdateProperty validates and stores changed property fields
func (s *PropertyService) UpdateProperty(id string, req *models.CreatePropertyRequest) (*models.Property, error) {
	if err := validatePropertyFields(req.Name, req.OwnerName, req.CommissionRate); err != nil {
		return nil, err
	}

	property, err := s.properties.Get(id)
	if err != nil {
		return nil, err
	}
	property.Name = req.Name
	property.OwnerName = req.OwnerName
	property.City = req.City
	property.CommissionRate = req.CommissionRate

	if err := s.properties.Update(property); err != nil {
		return nil, err
	}
	return property, nil
}

// DeleteProperty removes a property. Its reservations are kept and become
// orphans: reports skip them and payments against them fail loudly, so no
// history is silently lost.
func (s *PropertyService) DeleteProperty(id string) error {
	if _, err := s.properties.Get(id); err != nil {
		return err
	}
	return s.properties.Delete(id)
}

func validatePropertyFields(name, ownerName string, commissionRate float64) error {
	if err := utils.ValidateRequired(name, "name"); err != nil {
		return err
	}
	if err := utils.ValidateRequired(ownerName, "ownerName"); err != nil {
		return err
	}
	return utils.ValidateCommissionRate(commissionRate)
}
