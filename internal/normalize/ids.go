package normalize

import (
	"errors"
	"regexp"
	"strings"
)

var (
	patientIDPattern   = regexp.MustCompile(`^[A-Za-z]\d+$`)
	visitIDPattern     = regexp.MustCompile(`^V\d+$`)
	providerIDPattern  = regexp.MustCompile(`^PR\d+$`)
	labIDPattern       = regexp.MustCompile(`^L\d{4}$`)
	insuranceIDPattern = regexp.MustCompile(`^[A-Za-z]{3}\d{3}$`)
	icdPattern         = regexp.MustCompile(`^[A-Z]\d{2}(\.[0-9A-Za-z]{1,4})?$`)
)

// PatientID accepts a letter followed by one or more digits.
func PatientID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if !patientIDPattern.MatchString(s) {
		return "", errors.New("must be a letter followed by digits")
	}
	return s, nil
}

// VisitID accepts 'V' followed by one or more digits.
func VisitID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if !visitIDPattern.MatchString(s) {
		return "", errors.New("must start with 'V' followed by digits")
	}
	return s, nil
}

// ProviderID accepts 'PR' followed by one or more digits.
func ProviderID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if !providerIDPattern.MatchString(s) {
		return "", errors.New("must start with 'PR' followed by digits")
	}
	return s, nil
}

// LabID accepts 'L' followed by exactly four digits.
func LabID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if !labIDPattern.MatchString(s) {
		return "", errors.New("must be 'L' followed by four digits")
	}
	return s, nil
}

// InsuranceID accepts exactly three letters followed by three digits.
func InsuranceID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if !insuranceIDPattern.MatchString(s) {
		return "", errors.New("must be three letters followed by three digits")
	}
	return s, nil
}

// ICDCode accepts an uppercase letter, two digits, and an optional dot
// plus up to four alphanumerics (A12, B45.2, S72.001A).
func ICDCode(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if !icdPattern.MatchString(s) {
		return "", errors.New("not a valid ICD code format")
	}
	return s, nil
}
