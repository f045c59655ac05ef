package domain

import (
	"strings"

	"daes-settlement-engine/pkg/apperror"
)

// Currency is a member of the closed set of settlement currencies.
type Currency struct {
	code string
}

var supportedCurrencies = []string{"AED", "USD", "EUR"}

// NewCurrency normalizes the code to uppercase and validates it against the
// supported set.
func NewCurrency(code string) (Currency, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for _, c := range supportedCurrencies {
		if normalized == c {
			return Currency{code: normalized}, nil
		}
	}
	return Currency{}, apperror.ErrUnsupportedCurrency(code, SupportedCurrencies())
}

// Code returns the uppercase ISO 4217 code.
func (c Currency) Code() string {
	return c.code
}

// Equal reports whether two currencies carry the same code.
func (c Currency) Equal(other Currency) bool {
	return c.code == other.code
}

// SupportedCurrencies returns a copy of the supported currency codes.
func SupportedCurrencies() []string {
	out := make([]string, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}
