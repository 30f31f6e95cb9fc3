package normalize

import (
	"errors"
	"strings"
	"time"
)

// Date layouts accepted in raw EMR exports, in priority order: ISO-style
// year-first, then US month-first, then day-first. Each layout is listed
// with and without zero padding because exports carry both.
var dateLayouts = []string{
	"2006-01-02", "2006-1-2",
	"2006/01/02", "2006/1/2",
	"2006.01.02", "2006.1.2",
	"01/02/2006", "1/2/2006",
	"01.02.2006", "1.2.2006",
	"01-02-2006", "1-2-2006",
	"02-01-2006", "2-1-2006",
	"02/01/2006", "2/1/2006",
	"02.01.2006", "2.1.2006",
}

const canonicalDate = "2006-01-02"

// Date parses a raw date in the first matching layout and reformats it as
// YYYY-MM-DD. Out-of-range components (month 13, day 40) fail every
// layout and are rejected.
func Date(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(canonicalDate), nil
		}
	}
	return "", errors.New("unrecognized date format")
}

// ParseCanonicalDate parses a date already in canonical YYYY-MM-DD form,
// as written to staged files.
func ParseCanonicalDate(s string) (time.Time, error) {
	return time.Parse(canonicalDate, s)
}
