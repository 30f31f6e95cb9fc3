package normalize

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var rangePattern = regexp.MustCompile(`^\d+(\.\d+)?\s*-\s*\d+(\.\d+)?$`)

// Qualitative result terms accepted for lab values.
var labTerms = map[string]struct{}{
	"positive": {},
	"negative": {},
	"pending":  {},
}

// TestValue accepts a qualitative term, capitalized on output, or a
// numeric result rounded to two decimal places.
func TestValue(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)
	if _, ok := labTerms[lower]; ok {
		return strings.ToUpper(lower[:1]) + lower[1:], nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", errors.New("not numeric or a recognized term")
	}
	return d.Round(2).String(), nil
}

// ReferenceRange accepts a low-high numeric range like "11.0-14.0", or a
// qualitative term, which passes through trimmed but otherwise unchanged.
func ReferenceRange(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if _, ok := labTerms[strings.ToLower(s)]; ok {
		return s, nil
	}
	if !rangePattern.MatchString(s) {
		return "", errors.New("expected a range like 11.0-14.0 or a qualitative term")
	}
	return s, nil
}

// IsNumeric reports whether s parses as a plain number. Units are only
// required on lab rows whose test value is numeric.
func IsNumeric(s string) bool {
	_, err := decimal.NewFromString(strings.TrimSpace(s))
	return err == nil
}
