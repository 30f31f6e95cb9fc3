package normalize

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Billing currency codes accepted on visit rows, exact case.
var currencyCodes = map[string]struct{}{
	"USD": {}, "MXN": {}, "JPY": {}, "CAD": {}, "EUR": {},
}

// Amount parses a numeric charge and reformats it as a fixed two-decimal
// string, e.g. "150" -> "150.00".
func Amount(raw string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", errors.New("not a numeric amount")
	}
	return d.StringFixed(2), nil
}

// Currency accepts one of the known billing currency codes.
func Currency(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if _, ok := currencyCodes[s]; !ok {
		return "", errors.New("not a recognized currency code")
	}
	return s, nil
}
