// Package currencyutils handles amount parsing and currency code checks.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ParseAmount parses an ISO 20022 amount string into a decimal, preserving
// the scale of the input text.
func ParseAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return amount, nil
}

// ValidCurrencyCode reports whether the value looks like an ISO 4217 code.
func ValidCurrencyCode(code string) bool {
	return currencyCodePattern.MatchString(code)
}
