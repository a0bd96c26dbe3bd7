package rsp

import "time"

// TwoDigitYearPivot defines how 2-digit years are interpreted. Parsed
// years more than this many years in the future are assumed to be in the
// previous century.
var TwoDigitYearPivot = 20

// Date layouts split by year format for proper 2-digit year handling.
// The dataset is day-first, so day-first layouts come before ISO forms.
var (
	twoDigitYearLayouts = []string{
		"2-1-06", "02-01-06", "2/1/06", "2.1.06",
	}
	fourDigitYearLayouts = []string{
		"02-01-2006", "2-1-2006", "02/01/2006", "2/1/2006", "2.1.2006",
		"2006-01-02", "2006/01/02", "2006.01.02",
		"2 Jan 2006", "Jan 2, 2006",
		"20060102",
	}
)

// parseDate attempts each known layout in turn and reports whether the
// string is a valid calendar date.
func parseDate(s string) (time.Time, bool) {
	// 4-digit year layouts first (unambiguous)
	for _, layout := range fourDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	pivotYear := time.Now().Year() + TwoDigitYearPivot
	for _, layout := range twoDigitYearLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Year() > pivotYear {
			t = t.AddDate(-100, 0, 0)
		}
		return t, true
	}

	return time.Time{}, false
}
