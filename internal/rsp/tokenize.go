package rsp

import "strings"

// TokenizeLine splits one raw CSV line into trimmed string fields.
//
// A double quote toggles an "inside quoted field" flag and is not itself
// emitted, so a comma inside quotes is part of the field. This is
// deliberately simpler than RFC 4180: the doubled-quote escape ("") for a
// literal quote is NOT supported, matching the format of the bundled
// dataset. Do not "fix" this without verifying the dataset never uses
// escaped quotes.
//
// Each field is trimmed of leading/trailing whitespace. The final field is
// always emitted, even when empty. TokenizeLine never panics; on an
// unexpected internal error it returns nil, which callers count as an
// unparseable (skipped) line.
func TokenizeLine(line string) (fields []string) {
	defer func() {
		if recover() != nil {
			fields = nil
		}
	}()

	var buf strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(buf.String()))
			buf.Reset()
		default:
			buf.WriteRune(r)
		}
	}

	fields = append(fields, strings.TrimSpace(buf.String()))
	return fields
}
