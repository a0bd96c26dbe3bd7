package rsp

import "testing"

func testDataset() Dataset {
	return Dataset{
		{City: "Mumbai", FuelType: FuelPetrol, Year: 2023, Month: 1, Price: 100},
		{City: "Mumbai", FuelType: FuelPetrol, Year: 2023, Month: 1, Price: 102},
	}
}

func TestMonthlyAverages(t *testing.T) {
	got := MonthlyAverages(testDataset(), "Mumbai", FuelPetrol, 2023)

	if got[0] != 101 {
		t.Errorf("January average = %v, want 101", got[0])
	}
	for i := 1; i < 12; i++ {
		if got[i] != 0 {
			t.Errorf("month %d = %v, want 0 (no observations)", i+1, got[i])
		}
	}
}

func TestMonthlyAveragesInvalidSelection(t *testing.T) {
	ds := testDataset()

	tests := []struct {
		name string
		city string
		fuel FuelType
		year int
	}{
		{"empty city", "", FuelPetrol, 2023},
		{"unknown fuel", "Mumbai", FuelType("lpg"), 2023},
		{"year below range", "Mumbai", FuelPetrol, 2016},
		{"year above range", "Mumbai", FuelPetrol, 2026},
		{"no data for selection", "Pune", FuelPetrol, 2023},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyAverages(ds, tt.city, tt.fuel, tt.year)
			if got != (MonthlySeries{}) {
				t.Errorf("got %v, want all-zero series", got)
			}
		})
	}
}

func TestMonthlyAveragesRounding(t *testing.T) {
	ds := Dataset{
		{City: "Delhi", FuelType: FuelDiesel, Year: 2022, Month: 3, Price: 100},
		{City: "Delhi", FuelType: FuelDiesel, Year: 2022, Month: 3, Price: 100},
		{City: "Delhi", FuelType: FuelDiesel, Year: 2022, Month: 3, Price: 101},
	}

	got := MonthlyAverages(ds, "Delhi", FuelDiesel, 2022)
	if got[2] != 100.33 {
		t.Errorf("March average = %v, want 100.33", got[2])
	}
}

func TestMonthlyAveragesExactCityMatch(t *testing.T) {
	ds := testDataset()

	// Case and whitespace differences must not match.
	for _, city := range []string{"mumbai", "Mumbai ", "MUMBAI"} {
		got := MonthlyAverages(ds, city, FuelPetrol, 2023)
		if got != (MonthlySeries{}) {
			t.Errorf("city %q matched, want exact byte equality only", city)
		}
	}
}

func TestMonthlyAveragesIdempotent(t *testing.T) {
	ds := testDataset()

	first := MonthlyAverages(ds, "Mumbai", FuelPetrol, 2023)
	second := MonthlyAverages(ds, "Mumbai", FuelPetrol, 2023)
	if first != second {
		t.Errorf("repeat call differs: %v vs %v", first, second)
	}
}

func TestCitiesAndYears(t *testing.T) {
	ds := Dataset{
		{City: "Mumbai", FuelType: FuelPetrol, Year: 2023, Month: 1, Price: 100},
		{City: "Delhi", FuelType: FuelDiesel, Year: 2021, Month: 2, Price: 90},
		{City: "Delhi", FuelType: FuelPetrol, Year: 2023, Month: 3, Price: 96},
	}

	cities := Cities(ds)
	if len(cities) != 2 || cities[0] != "Delhi" || cities[1] != "Mumbai" {
		t.Errorf("Cities = %v, want sorted distinct [Delhi Mumbai]", cities)
	}

	years := Years(ds)
	if len(years) != 2 || years[0] != 2021 || years[1] != 2023 {
		t.Errorf("Years = %v, want [2021 2023]", years)
	}
}
