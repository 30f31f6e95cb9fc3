package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	addressStart     = regexp.MustCompile(`^[A-Za-z0-9]`)
	cityPattern      = regexp.MustCompile(`^[A-Za-z][A-Za-z\s\-]+$`)
	zipPattern       = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	zipFloatArtifact = regexp.MustCompile(`^\d+\.0$`)
	nonDigit         = regexp.MustCompile(`\D`)
)

// The 50 US state abbreviations.
var usStates = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {},
	"DE": {}, "FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {},
	"IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {}, "MA": {},
	"MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {},
	"NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {},
	"OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {},
	"TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {},
	"WY": {},
}

// Address accepts any value of at least five characters that starts with
// a letter or digit.
func Address(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if utf8.RuneCountInString(s) < 5 || !addressStart.MatchString(s) {
		return "", errors.New("must be at least five characters starting with a letter or digit")
	}
	return s, nil
}

// City accepts letters, spaces, and hyphens, starting with a letter. The
// placeholder token "unknown" is always rejected.
func City(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if strings.EqualFold(s, "unknown") {
		return "", errors.New("placeholder 'unknown'")
	}
	if !cityPattern.MatchString(s) {
		return "", errors.New("must start with a letter and contain only letters, spaces, or hyphens")
	}
	return s, nil
}

// State accepts a US state abbreviation in any case, stored uppercase.
func State(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if _, ok := usStates[s]; !ok {
		return "", errors.New("not a US state abbreviation")
	}
	return s, nil
}

// Zip normalizes 5-digit and ZIP+4 codes. A trailing ".0" artifact from
// spreadsheet numeric coercion is stripped first. Codes with fewer than
// five digits are rejected, never zero-padded.
func Zip(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if zipFloatArtifact.MatchString(s) {
		s = strings.TrimSuffix(s, ".0")
	}
	if isDigits(s) && len(s) < 5 {
		return "", errors.New("fewer than five digits")
	}
	if !zipPattern.MatchString(s) {
		return "", errors.New("must be 5 digits or ZIP+4")
	}
	return s, nil
}

// Phone reformats any input containing exactly ten digits to the
// canonical (XXX) XXX-XXXX form.
func Phone(raw string) (string, error) {
	digits := nonDigit.ReplaceAllString(strings.TrimSpace(raw), "")
	if len(digits) != 10 {
		return "", errors.New("does not contain exactly ten digits")
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:]), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
