package utils

import (
	"fmt"
	"strings"
	"time"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositive checks if a number is positive
func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateNonNegative checks if a number is non-negative
func ValidateNonNegative(value float64, fieldName string) error {
	if value < 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateNotEmpty checks if a slice is not empty
func ValidateNotEmpty[T any](slice []T, fieldName string) error {
	if len(slice) == 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be empty", fieldName))
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD date string
func ValidateDate(value, fieldName string) error {
	if _, err := time.Parse(DateLayout, value); err != nil {
		return NewValidationError(fmt.Sprintf("%s must be a YYYY-MM-DD date", fieldName))
	}
	return nil
}

// ValidateMonth checks a YYYY-MM month string
func ValidateMonth(value, fieldName string) error {
	if _, err := time.Parse(MonthLayout, value); err != nil {
		return NewValidationError(fmt.Sprintf("%s must be a YYYY-MM month", fieldName))
	}
	return nil
}

// ValidateDateOrder checks that checkOut does not precede checkIn.
// Dates are YYYY-MM-DD so string comparison is date comparison.
func ValidateDateOrder(checkIn, checkOut string) error {
	if checkOut < checkIn {
		return NewValidationError("check-out date cannot be before check-in date")
	}
	return nil
}

// ValidateCommissionRate checks a commission percentage. 0 and 100 are both
// valid (full pass-through in either direction).
func ValidateCommissionRate(rate float64) error {
	if rate < 0 || rate > 100 {
		return NewValidationError("commission rate must be between 0 and 100")
	}
	return nil
}
