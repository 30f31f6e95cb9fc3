package normalize

import (
	"errors"
	"regexp"
	"strings"
)

var namePattern = regexp.MustCompile(`^[A-ZÀ-ÖØ-Ý][A-Za-zà-öø-ÿĀ-ž]+$`)

// Placeholder tokens that show up in name columns of real exports.
var bannedNames = map[string]struct{}{
	"invalid":   {},
	"dob":       {},
	"name":      {},
	"firstname": {},
	"lastname":  {},
}

// PersonName accepts a single capitalized name of two or more letters,
// allowing accented Latin characters.
func PersonName(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if _, ok := bannedNames[strings.ToLower(s)]; ok {
		return "", errors.New("placeholder token, not a name")
	}
	if !namePattern.MatchString(s) {
		return "", errors.New("must be a capitalized word of letters only")
	}
	return s, nil
}
