// Package format renders values for display with fixed en-US conventions:
// US dollar amounts, comma-grouped numbers and short-month dates.
package format

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Placeholder is shown for missing dates.
const Placeholder = "-"

// InvalidDate is shown for date strings that cannot be parsed.
const InvalidDate = "Invalid Date"

// DateLayout is the display layout, e.g. "Mar 5, 2024".
const DateLayout = "Jan 2, 2006"

// Currency formats v as US dollars with two fraction digits:
// 1234.5 → "$1,234.50", -3 → "-$3.00".
func Currency(v float64) string {
	switch {
	case math.IsNaN(v):
		return "$NaN"
	case math.IsInf(v, 1):
		return "$∞"
	case math.IsInf(v, -1):
		return "-$∞"
	}
	s := grouped(v, 2)
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return "-$" + rest
	}
	return "$" + s
}

// Number formats v with thousands grouping and at most three fraction
// digits, trailing zeros dropped: 1234567.891 → "1,234,567.891",
// 42 → "42".
func Number(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	s := grouped(v, 3)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// exactLimit bounds the magnitudes humanize.FormatFloat handles; it goes
// through int64 for the integer part.
const exactLimit = 1e15

// grouped formats v with prec fraction digits and comma-grouped integer
// digits.
func grouped(v float64, prec int) string {
	if math.Abs(v) < exactLimit {
		return humanize.FormatFloat("#,###."+strings.Repeat("#", prec), v)
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	whole, frac, _ := strings.Cut(s, ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return s
	}
	return humanize.BigComma(n) + "." + frac
}

// inputLayouts are tried in order. Layouts without a zone yield a calendar
// date that is displayed as written.
var inputLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05Z07:00",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC1123,
	time.RFC1123Z,
}

// Date renders a date string as "Mon D, YYYY". Empty input yields "-",
// unparseable input yields "Invalid Date".
func Date(s string) string {
	return DateIn(s, nil)
}

// DateIn is Date with zoned timestamps converted to loc before the calendar
// date is taken. A nil loc keeps each timestamp's own zone.
func DateIn(s string, loc *time.Location) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Placeholder
	}
	t, ok := parseDate(s)
	if !ok {
		return InvalidDate
	}
	if loc != nil && hasZone(s) {
		t = t.In(loc)
	}
	return t.Format(DateLayout)
}

// DateValue is Date over loosely typed values as they arrive from decoded
// JSON: nil, "" and nil pointers render as "-".
func DateValue(v any) string {
	switch d := v.(type) {
	case nil:
		return Placeholder
	case string:
		return Date(d)
	case *string:
		if d == nil {
			return Placeholder
		}
		return Date(*d)
	case time.Time:
		if d.IsZero() {
			return Placeholder
		}
		return d.Format(DateLayout)
	case *time.Time:
		if d == nil || d.IsZero() {
			return Placeholder
		}
		return d.Format(DateLayout)
	default:
		return InvalidDate
	}
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// hasZone reports whether s carries an explicit offset or Z suffix.
func hasZone(s string) bool {
	if strings.HasSuffix(s, "Z") {
		return true
	}
	if i := strings.LastIndexAny(s, "+-"); i > 10 {
		return true
	}
	return strings.Contains(s, "GMT") || strings.Contains(s, "UTC")
}
