// Package rsp implements the fuel retail selling price (RSP) ingestion
// pipeline: CSV line tokenization, row normalization into PricePoints,
// monthly aggregation, and fallback dataset generation.
// This package has no transport or UI dependencies and can be used by any
// frontend.
package rsp

import "errors"

// FuelType is the product category a price observation belongs to.
type FuelType string

const (
	FuelPetrol FuelType = "petrol"
	FuelDiesel FuelType = "diesel"
)

// Valid reports whether the fuel type is one of the accepted products.
func (f FuelType) Valid() bool {
	return f == FuelPetrol || f == FuelDiesel
}

// ParseFuelType normalizes a raw product string to a FuelType.
// Returns false if the product is outside the accepted set.
func ParseFuelType(s string) (FuelType, bool) {
	f := FuelType(s)
	if !f.Valid() {
		return "", false
	}
	return f, true
}

// Year bounds for the dataset. Rows outside this range are dropped at
// ingestion and selections outside it degrade to an all-zero series.
const (
	MinYear = 2017
	MaxYear = 2025
)

// PricePoint is the canonical domain record: one city/fuel/month price
// observation. Every stored PricePoint satisfies all field constraints
// simultaneously; no partially-valid record is ever kept.
type PricePoint struct {
	City     string   `json:"city"`
	FuelType FuelType `json:"fuelType"`
	Year     int      `json:"year"`
	Month    int      `json:"month"` // 1 = January
	Price    float64  `json:"price"` // rupees per litre, rounded to 2 decimals
}

// Dataset is an ordered collection of PricePoints. Insertion order is
// irrelevant to queries. A Dataset is built once per load cycle and
// replaced wholesale on reload, never mutated in place.
type Dataset []PricePoint

// MonthlySeries is the aggregation unit the chart consumes: 12 values,
// index 0 = January. Months with no observations are 0, never null.
type MonthlySeries [12]float64

// ParseStats summarizes one ParseDataset run for observability.
// Skipped counts rows dropped by validation; blank lines are ignored
// silently and counted in neither Kept nor Skipped.
type ParseStats struct {
	TotalLines int `json:"totalLines"`
	DataRows   int `json:"dataRows"`
	Kept       int `json:"kept"`
	Skipped    int `json:"skipped"`
}

// Structural parse failures. Both are recovered at the load boundary by
// substituting the fallback dataset.
var (
	// ErrEmptySource indicates the input had fewer than 2 lines
	// (header plus at least one data row).
	ErrEmptySource = errors.New("empty source")

	// ErrNoValidRows indicates every data row was dropped by validation.
	ErrNoValidRows = errors.New("no valid rows")
)
