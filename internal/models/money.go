package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount with its currency. The decimal keeps the exact
// scale of the source text, so "25.50" round-trips as "25.50".
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// NewMoney creates a Money from an already parsed decimal.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// ParseMoney parses an ISO 20022 amount text into a Money.
func ParseMoney(value, currency string) (Money, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// String formats the amount followed by the currency code.
func (m Money) String() string {
	return m.Amount.String() + " " + m.Currency
}

// Text returns the amount exactly as it will appear in the emitted document.
func (m Money) Text() string {
	return m.Amount.String()
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}
