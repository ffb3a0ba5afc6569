// Package money parses and formats the price strings used by the
// catalog source. Source rows carry prices as display strings
// ("$1,234.50"), not decimals.
package money

import (
	"strconv"
	"strings"
)

// Parse converts a price string to its numeric value.
// Currency symbols and thousands separators are stripped.
// Unparsable input yields 0.
func Parse(s string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '$', ',', ' ':
			return -1
		}
		return r
	}, s)

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// Format renders v as a US dollar amount with two decimal places
// and thousands separators, e.g. 1234.5 -> "$1,234.50".
func Format(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// Range renders the span from min to max, collapsing to a single
// value when they are equal.
func Range(min, max float64) string {
	if min == max {
		return Format(min)
	}
	return Format(min) + " - " + Format(max)
}
