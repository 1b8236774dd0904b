package receipt

import (
	"errors"
	"fmt"

	"github.com/dhruvbhat/kagaz/internal/currency"
)

var (
	// ErrEmptySale is returned when a sale has no item with a description.
	ErrEmptySale = errors.New("receipt: sale has no line items")

	// ErrInvalidTaxRate is returned for a negative tax rate.
	ErrInvalidTaxRate = errors.New("receipt: tax rate must not be negative")
)

// Compute turns a sale into its monetary totals. It is pure: no I/O, no
// shared state, safe to call concurrently against the same rate table.
//
// Each line total is rounded to two digits before summation; summing
// rounded line totals keeps the printed item rows and the subtotal
// consistent no matter how many items the sale has.
func Compute(sale Sale, rates *currency.Table) (Totals, error) {
	items := sale.ValidItems()
	if len(items) == 0 {
		return Totals{}, ErrEmptySale
	}

	if sale.TaxRatePct.IsNegative() {
		return Totals{}, ErrInvalidTaxRate
	}

	var t Totals

	for _, it := range items {
		t.Subtotal = t.Subtotal.Add(it.Total())
	}

	// Discount may never drive the after-discount amount negative.
	t.Discount = sale.Discount
	if t.Discount > t.Subtotal {
		t.Discount = t.Subtotal
	}

	afterDiscount := t.Subtotal.Sub(t.Discount)
	t.Tax = afterDiscount.Percent(sale.TaxRatePct)
	t.Total = afterDiscount.Add(t.Tax)

	// An omitted paid amount means paid in full.
	if sale.AmountPaid != nil {
		t.AmountPaid = *sale.AmountPaid
	} else {
		t.AmountPaid = t.Total
	}

	t.Change = t.AmountPaid.Sub(t.Total)

	ref, err := rates.Convert(t.Total, sale.CurrencyCode)
	if err != nil {
		return Totals{}, fmt.Errorf("converting total: %w", err)
	}

	t.TotalReference = ref

	return t, nil
}
