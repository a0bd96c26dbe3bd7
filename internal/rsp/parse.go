package rsp

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Fixed 0-based column positions in the source schema. These are a
// contract with the external file format, not configurable.
const (
	columnDate    = 3
	columnProduct = 4
	columnCity    = 5
	columnPrice   = 6
	minColumns    = 7
)

// Placeholder price values that normalize to 0 instead of dropping the row.
var missingPriceValues = map[string]bool{
	"NA":  true,
	"N/A": true,
}

// ParseDataset normalizes raw CSV text into a Dataset.
//
// Line 1 is always treated as the header and skipped. Blank lines are
// ignored silently. Each remaining line is tokenized and validated; a row
// that fails any check is counted as skipped and never aborts the parse.
// The returned ParseStats lets the caller decide whether the skip count
// warrants a warning.
//
// Fails with ErrEmptySource when the input has fewer than 2 lines, and
// with ErrNoValidRows when zero rows survive validation.
func ParseDataset(raw string) (Dataset, ParseStats, error) {
	var stats ParseStats

	lines := strings.Split(raw, "\n")
	stats.TotalLines = len(lines)

	if len(lines) < 2 {
		return nil, stats, fmt.Errorf("%w: got %d line(s), need header plus at least one data row",
			ErrEmptySource, len(lines))
	}

	ds := make(Dataset, 0, len(lines)-1)
	for i, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		stats.DataRows++

		pt, err := normalizeRow(line)
		if err != nil {
			stats.Skipped++
			slog.Debug("row skipped", "line", i+2, "reason", err)
			continue
		}

		ds = append(ds, pt)
		stats.Kept++
	}

	if len(ds) == 0 {
		return nil, stats, fmt.Errorf("%w: all %d data row(s) failed validation",
			ErrNoValidRows, stats.Skipped)
	}

	return ds, stats, nil
}

// normalizeRow maps one tokenized line from the external schema to a
// PricePoint. The returned error is the skip reason; it is never
// propagated beyond the per-row loop.
func normalizeRow(line string) (PricePoint, error) {
	fields := TokenizeLine(line)
	if len(fields) < minColumns {
		return PricePoint{}, fmt.Errorf("row has %d column(s), expected at least %d", len(fields), minColumns)
	}

	dateStr := fields[columnDate]
	product := strings.ToLower(fields[columnProduct])
	city := fields[columnCity]
	priceStr := fields[columnPrice]

	if city == "" || product == "" || dateStr == "" || priceStr == "" {
		return PricePoint{}, fmt.Errorf("empty required field")
	}

	fuel, ok := ParseFuelType(product)
	if !ok {
		return PricePoint{}, fmt.Errorf("unknown product %q", product)
	}

	date, ok := parseDate(dateStr)
	if !ok {
		return PricePoint{}, fmt.Errorf("invalid date %q", dateStr)
	}

	year := date.Year()
	if year < MinYear || year > MaxYear {
		return PricePoint{}, fmt.Errorf("year %d outside [%d, %d]", year, MinYear, MaxYear)
	}

	price, err := parsePrice(priceStr)
	if err != nil {
		return PricePoint{}, err
	}

	return PricePoint{
		City:     city,
		FuelType: fuel,
		Year:     year,
		Month:    int(date.Month()),
		Price:    round2(price),
	}, nil
}

// parsePrice converts a price field to a non-negative finite number.
// The NA/N-A placeholders mean "no observation recorded" and normalize
// to 0 rather than dropping the row.
func parsePrice(s string) (float64, error) {
	if missingPriceValues[s] {
		return 0, nil
	}

	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("non-finite price %q", s)
	}
	if price < 0 {
		return 0, fmt.Errorf("negative price %q", s)
	}
	return price, nil
}

// round2 rounds to 2 fractional digits.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
