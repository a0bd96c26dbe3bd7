package rsp

import (
	"math"
	"testing"
)

func TestGenerateFallbackDatasetShape(t *testing.T) {
	ds := GenerateFallbackDataset()

	years := MaxYear - MinYear + 1
	want := len(fallbackCities) * 2 * years * 12
	if len(ds) != want {
		t.Fatalf("got %d records, want full cross-product of %d", len(ds), want)
	}

	// Shape must be identical across invocations even though values differ.
	if again := GenerateFallbackDataset(); len(again) != want {
		t.Errorf("second invocation produced %d records, want %d", len(again), want)
	}
}

func TestGenerateFallbackDatasetValidity(t *testing.T) {
	ds := GenerateFallbackDataset()

	for i, p := range ds {
		if p.City == "" {
			t.Fatalf("record %d: empty city", i)
		}
		if !p.FuelType.Valid() {
			t.Fatalf("record %d: invalid fuel type %q", i, p.FuelType)
		}
		if p.Year < MinYear || p.Year > MaxYear {
			t.Fatalf("record %d: year %d out of range", i, p.Year)
		}
		if p.Month < 1 || p.Month > 12 {
			t.Fatalf("record %d: month %d out of range", i, p.Month)
		}
		if p.Price < 0 {
			t.Fatalf("record %d: negative price %v", i, p.Price)
		}
		// Prices are rounded to 2 decimals.
		if scaled := p.Price * 100; math.Abs(scaled-math.Round(scaled)) > 1e-6 {
			t.Fatalf("record %d: price %v not rounded to 2 decimals", i, p.Price)
		}
	}
}

// The fallback dataset must be filterable: every city/fuel/year selection
// it covers yields a fully-populated series.
func TestGenerateFallbackDatasetAggregates(t *testing.T) {
	ds := GenerateFallbackDataset()

	series := MonthlyAverages(ds, "Mumbai", FuelPetrol, 2021)
	for i, v := range series {
		if v <= 0 {
			t.Errorf("month %d average = %v, want > 0", i+1, v)
		}
	}
}
