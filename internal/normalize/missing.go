package normalize

import "strings"

// missingTokens are the string forms treated as an absent value in any
// column, compared case-insensitively after trimming.
var missingTokens = map[string]struct{}{
	"":     {},
	"nan":  {},
	"none": {},
	"null": {},
}

// IsMissing reports whether a raw cell is a missing-value marker rather
// than data. Every field rule checks this before its format check, so an
// absent value never produces a format rejection.
func IsMissing(s string) bool {
	_, ok := missingTokens[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsMissingOrInvalid is the stricter classifier used for identifier
// columns, where the literal token "invalid" appears as a placeholder.
func IsMissingOrInvalid(s string) bool {
	t := strings.ToLower(strings.TrimSpace(s))
	if _, ok := missingTokens[t]; ok {
		return true
	}
	return t == "invalid"
}
