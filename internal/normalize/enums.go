package normalize

import (
	"errors"
	"strings"
)

// Visit scheduling statuses accepted exactly as written.
var visitStatuses = map[string]struct{}{
	"Completed":   {},
	"Cancelled":   {},
	"In Progress": {},
	"Scheduled":   {},
	"Open":        {},
}

// Gender canonicalizes m/male to "M" and f/female to "F", any case.
func Gender(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "m", "male":
		return "M", nil
	case "f", "female":
		return "F", nil
	}
	return "", errors.New("must be M, F, male, or female")
}

// VisitStatus accepts one of the known scheduling statuses, exact case.
func VisitStatus(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if _, ok := visitStatuses[s]; !ok {
		return "", errors.New("not a recognized visit status")
	}
	return s, nil
}

// CodeStatus canonicalizes ICD reference statuses to Active or Inactive.
func CodeStatus(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "active":
		return "Active", nil
	case "inactive":
		return "Inactive", nil
	}
	return "", errors.New("must be active or inactive")
}

// Location passes any non-missing value except the placeholder "unknown".
func Location(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if strings.EqualFold(s, "unknown") {
		return "", errors.New("placeholder 'unknown'")
	}
	return s, nil
}
