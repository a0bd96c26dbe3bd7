package rsp

import (
	"log/slog"
	"slices"
)

// MonthlyAverages computes the per-month mean price for the given
// city/fuel/year selection.
//
// This sits directly behind interactive UI input, so it never fails:
// an empty city, a fuel type outside the enum, or a year outside the
// dataset range all degrade to an all-zero series. An empty filter result
// is likewise a valid "no data for this selection" state, logged as a
// notice rather than raised.
//
// Matching is exact string equality on city and fuel type. Each month
// bucket with observations yields round(sum/count, 2); empty buckets
// yield 0. The function is pure: repeated calls over an unmodified
// dataset return bit-identical results.
func MonthlyAverages(ds Dataset, city string, fuel FuelType, year int) MonthlySeries {
	var series MonthlySeries

	if city == "" || !fuel.Valid() || year < MinYear || year > MaxYear {
		slog.Debug("invalid selection, returning zero series",
			"city", city, "fuel", string(fuel), "year", year)
		return series
	}

	var sums [12]float64
	var counts [12]int
	matched := 0

	for _, p := range ds {
		if p.City != city || p.FuelType != fuel || p.Year != year {
			continue
		}
		if p.Month < 1 || p.Month > 12 {
			continue
		}
		sums[p.Month-1] += p.Price
		counts[p.Month-1]++
		matched++
	}

	if matched == 0 {
		slog.Debug("no observations for selection",
			"city", city, "fuel", string(fuel), "year", year)
		return series
	}

	for i := range series {
		if counts[i] > 0 {
			series[i] = round2(sums[i] / float64(counts[i]))
		}
	}
	return series
}

// Cities returns the distinct city names in the dataset, sorted.
func Cities(ds Dataset) []string {
	seen := make(map[string]bool)
	var cities []string
	for _, p := range ds {
		if !seen[p.City] {
			seen[p.City] = true
			cities = append(cities, p.City)
		}
	}
	slices.Sort(cities)
	return cities
}

// Years returns the distinct years in the dataset, sorted ascending.
func Years(ds Dataset) []int {
	seen := make(map[int]bool)
	var years []int
	for _, p := range ds {
		if !seen[p.Year] {
			seen[p.Year] = true
			years = append(years, p.Year)
		}
	}
	slices.Sort(years)
	return years
}
