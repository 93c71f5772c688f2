package utils

import "math"

// Round rounds a COP amount to whole pesos
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// RoundCents rounds a USD amount to two decimals
func RoundCents(num float64) float64 {
	return math.Round(num*100) / 100
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	return math.Min(a, b)
}
