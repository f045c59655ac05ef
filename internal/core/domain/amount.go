package domain

import (
	"math"

	"daes-settlement-engine/pkg/apperror"

	"github.com/shopspring/decimal"
)

// Amount is a positive settlement amount, rounded half-up to 2 decimal places
// at construction. The zero value is not a valid Amount; NewAmount and
// NewAmountFromString are the only construction paths.
type Amount struct {
	value decimal.Decimal
}

// NewAmount validates and constructs an Amount from a float input.
func NewAmount(value float64) (Amount, error) {
	if math.IsNaN(value) {
		return Amount{}, apperror.ErrInvalidAmount("not a number")
	}
	if math.IsInf(value, 0) {
		return Amount{}, apperror.ErrInvalidAmount("must be finite")
	}
	if value <= 0 {
		return Amount{}, apperror.ErrInvalidAmount("must be greater than zero")
	}
	return Amount{value: decimal.NewFromFloat(value).Round(2)}, nil
}

// NewAmountFromString parses a decimal string into an Amount.
func NewAmountFromString(value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, apperror.ErrInvalidAmount("not a valid decimal")
	}
	if d.LessThanOrEqual(decimal.Zero) {
		return Amount{}, apperror.ErrInvalidAmount("must be greater than zero")
	}
	return Amount{value: d.Round(2)}, nil
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Float64 returns the amount as a float, for wire snapshots.
func (a Amount) Float64() float64 {
	f, _ := a.value.Float64()
	return f
}

// StringFixed renders the amount with exactly 2 decimal places.
func (a Amount) StringFixed() string {
	return a.value.StringFixed(2)
}

// Equal reports whether two amounts are numerically equal.
func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}
