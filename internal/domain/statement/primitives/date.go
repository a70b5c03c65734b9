package primitives

import (
	"regexp"
	"strings"
	"time"
)

// Dialect date layout tables. Every layout parses in UTC; dialects with no
// time-of-day component land on midnight UTC.
var (
	// LayoutsDayMonthNameYear covers "02-Jan-2024" and "02-Jan-24".
	LayoutsDayMonthNameYear = []string{"2-Jan-2006", "02-Jan-2006", "2-Jan-06", "02-Jan-06"}
	// LayoutsDaySlashMonthYear covers "02/01/2024" with optional time.
	LayoutsDaySlashMonthYear = []string{"02/01/2006", "2/1/2006", "02/01/2006 15:04:05", "02/01/2006 15:04", "02/01/06"}
	// LayoutsDayMonthNameYearTime covers "02 Jan 2024 13:45:10".
	LayoutsDayMonthNameYearTime = []string{"2 Jan 2006 15:04:05", "02 Jan 2006 15:04:05", "2 Jan 2006", "02 Jan 2006"}
)

var monthToken = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*`)

// normalizeMonths collapses month names to the canonical three-letter,
// title-case abbreviation time.Parse expects ("JANUARY" -> "Jan").
func normalizeMonths(s string) string {
	return monthToken.ReplaceAllStringFunc(s, func(m string) string {
		abbr := strings.ToLower(m[:3])
		return strings.ToUpper(abbr[:1]) + abbr[1:]
	})
}

// ParseDate tries each layout in order against the trimmed, month-normalized
// input and returns the first match as a UTC instant. Two-digit years are
// read as 2000+YY. No layout matching is not an error, just a miss.
func ParseDate(s string, layouts []string) (time.Time, bool) {
	s = normalizeMonths(strings.TrimSpace(s))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err != nil {
			continue
		}
		// Go maps two-digit years 69-99 into the 1900s; statements are
		// always 2000+. Four-digit years pass through untouched.
		if t.Year() < 2000 && !strings.Contains(layout, "2006") {
			t = t.AddDate(100, 0, 0)
		}
		return t, true
	}
	return time.Time{}, false
}
