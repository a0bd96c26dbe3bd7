package rsp

import "math/rand"

// Metro cities the fallback dataset covers.
var fallbackCities = []string{
	"Bengaluru", "Chennai", "Delhi", "Hyderabad", "Kolkata", "Mumbai",
}

// Per-city price multiplier relative to the Delhi baseline. Unknown
// cities default to 1.0.
var cityMultiplier = map[string]float64{
	"Bengaluru": 1.05,
	"Chennai":   1.02,
	"Delhi":     1.00,
	"Hyderabad": 1.09,
	"Kolkata":   1.04,
	"Mumbai":    1.10,
}

// Base price per litre by fuel type.
var fuelBasePrice = map[FuelType]float64{
	FuelPetrol: 96.5,
	FuelDiesel: 88.0,
}

// Fixed seasonal offset per month, January first.
var seasonalOffset = [12]float64{
	0.6, 0.4, 0.2, -0.1, -0.3, -0.5, -0.4, -0.2, 0.1, 0.3, 0.5, 0.7,
}

// GenerateFallbackDataset builds a synthetic dataset covering the full
// cross-product of the metro city list, both fuel types, every year in
// [MinYear, MaxYear], and all 12 months.
//
// It exists purely so downstream consumers always receive a well-formed,
// filterable dataset when the real source is unavailable. Each price is
// base x city multiplier x linear year trend, plus a seasonal offset and
// a bounded random perturbation, floored at 0 and rounded to 2 decimals.
// The random component is not seeded: values differ per invocation, but
// the shape (record count, field validity) is always identical.
func GenerateFallbackDataset() Dataset {
	years := MaxYear - MinYear + 1
	ds := make(Dataset, 0, len(fallbackCities)*2*years*12)

	for _, city := range fallbackCities {
		mult := cityMultiplier[city]
		if mult == 0 {
			mult = 1.0
		}
		for _, fuel := range []FuelType{FuelPetrol, FuelDiesel} {
			base := fuelBasePrice[fuel]
			for year := MinYear; year <= MaxYear; year++ {
				trend := 1 + float64(year-2021)*0.05
				for month := 1; month <= 12; month++ {
					price := base*mult*trend + seasonalOffset[month-1] + jitter(1.5)
					if price < 0 {
						price = 0
					}
					ds = append(ds, PricePoint{
						City:     city,
						FuelType: fuel,
						Year:     year,
						Month:    month,
						Price:    round2(price),
					})
				}
			}
		}
	}
	return ds
}

// jitter returns a uniform random value in [-bound, bound].
func jitter(bound float64) float64 {
	return (rand.Float64()*2 - 1) * bound
}
