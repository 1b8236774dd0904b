// Package currency maps transaction currencies to the reference currency
// all cross-currency totals are reported in.
package currency

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dhruvbhat/kagaz/internal/money"
)

// ErrUnknownCurrency is returned when no rate entry exists for a code.
var ErrUnknownCurrency = errors.New("currency: no rate for code")

// Currency is one entry of the rate table. RateToReference is how many
// units of the reference currency one unit of this currency is worth.
type Currency struct {
	Code            string
	Symbol          string
	Name            string
	RateToReference decimal.Decimal
}

// Table is an immutable set of currencies keyed by code. A Table is never
// mutated after construction; refreshing rates builds a new Table.
type Table struct {
	reference string
	byCode    map[string]Currency
}

// NewTable builds a table around the given reference code. The reference
// currency must be present with a rate of exactly 1.
func NewTable(referenceCode string, currencies []Currency) (*Table, error) {
	byCode := make(map[string]Currency, len(currencies))

	for _, c := range currencies {
		if !c.RateToReference.IsPositive() {
			return nil, fmt.Errorf("currency %s: rate must be positive", c.Code)
		}

		byCode[c.Code] = c
	}

	ref, ok := byCode[referenceCode]
	if !ok {
		return nil, fmt.Errorf("reference currency %s missing from table", referenceCode)
	}

	if !ref.RateToReference.Equal(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("reference currency %s must have rate 1, got %s",
			referenceCode, ref.RateToReference)
	}

	return &Table{reference: referenceCode, byCode: byCode}, nil
}

// ReferenceCode returns the code of the reference currency.
func (t *Table) ReferenceCode() string {
	return t.reference
}

// Reference returns the reference currency entry.
func (t *Table) Reference() Currency {
	return t.byCode[t.reference]
}

// Lookup returns the currency for a code.
func (t *Table) Lookup(code string) (Currency, error) {
	c, ok := t.byCode[code]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
	}

	return c, nil
}

// All returns the table entries. Order is not guaranteed; callers that
// need a stable order sort by Code.
func (t *Table) All() []Currency {
	out := make([]Currency, 0, len(t.byCode))
	for _, c := range t.byCode {
		out = append(out, c)
	}

	return out
}

// Convert turns an amount in the given currency into the reference
// currency, rounded half-up to two digits.
func (t *Table) Convert(amount money.Amount, code string) (money.Amount, error) {
	c, err := t.Lookup(code)
	if err != nil {
		return 0, err
	}

	return amount.MulRate(c.RateToReference), nil
}
