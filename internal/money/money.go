// Package money holds monetary amounts as int64 minor units (cents, paise)
// with exactly two fractional digits. Intermediate multiplication runs at
// arbitrary precision via shopspring/decimal and is rounded half-up to two
// digits only when an Amount is produced.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a negative monetary value is supplied.
var ErrInvalidAmount = errors.New("money: amount must not be negative")

// Amount is a non-negative monetary value in minor units.
type Amount int64

var hundred = decimal.NewFromInt(100)

// New validates and converts a minor-unit value into an Amount.
func New(minorUnits int64) (Amount, error) {
	if minorUnits < 0 {
		return 0, ErrInvalidAmount
	}

	return Amount(minorUnits), nil
}

// Parse reads a decimal string like "12.50" into an Amount.
// Values with more than two fractional digits are rounded half-up.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("money: parsing %q: %w", s, err)
	}

	if d.IsNegative() {
		return 0, ErrInvalidAmount
	}

	return FromDecimal(d), nil
}

// FromDecimal rounds a non-negative decimal half-up to two digits and
// returns it as an Amount. decimal.Round rounds halves away from zero,
// which is half-up for the non-negative values handled here.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount(d.Mul(hundred).Round(0).IntPart())
}

// Decimal returns the amount as a full-precision decimal in major units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount { return a + b }

// Sub returns a - b clamped at zero. Receipt arithmetic never produces
// negative money; discounts and change are clamped by policy.
func (a Amount) Sub(b Amount) Amount {
	if b > a {
		return 0
	}

	return a - b
}

// MulQuantity multiplies the amount by a quantity (fractional allowed)
// and rounds the result half-up to two digits.
func (a Amount) MulQuantity(qty decimal.Decimal) Amount {
	return FromDecimal(a.Decimal().Mul(qty))
}

// Percent applies a percentage rate, e.g. a.Percent(18) is 18% of a,
// rounded half-up to two digits.
func (a Amount) Percent(rate decimal.Decimal) Amount {
	return FromDecimal(a.Decimal().Mul(rate).Div(hundred))
}

// MulRate converts the amount with an exchange rate, rounded half-up.
func (a Amount) MulRate(rate decimal.Decimal) Amount {
	return FromDecimal(a.Decimal().Mul(rate))
}

// String formats the amount with two fractional digits and no symbol.
func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}

// Format prefixes the two-digit representation with a currency symbol.
func (a Amount) Format(symbol string) string {
	return symbol + a.String()
}
