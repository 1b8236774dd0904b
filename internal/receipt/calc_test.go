package receipt_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvbhat/kagaz/internal/currency"
	"github.com/dhruvbhat/kagaz/internal/money"
	"github.com/dhruvbhat/kagaz/internal/receipt"
)

func amount(t *testing.T, s string) money.Amount {
	t.Helper()

	a, err := money.Parse(s)
	require.NoError(t, err)

	return a
}

func qty(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(t *testing.T, desc, quantity, price string) receipt.LineItem {
	t.Helper()

	return receipt.LineItem{
		Description: desc,
		Quantity:    qty(quantity),
		UnitPrice:   amount(t, price),
	}
}

func ratesTable(t *testing.T) *currency.Table {
	t.Helper()

	table, err := currency.NewTable("INR", []currency.Currency{
		{Code: "INR", Symbol: "₹", Name: "Indian Rupee", RateToReference: qty("1")},
		{Code: "USD", Symbol: "$", Name: "US Dollar", RateToReference: qty("83.0")},
	})
	require.NoError(t, err)

	return table
}

func TestCompute_EndToEnd(t *testing.T) {
	paid := amount(t, "15.00")
	sale := receipt.Sale{
		Items: []receipt.LineItem{
			item(t, "Coffee", "2", "3.50"),
			item(t, "Cake", "1", "5.00"),
		},
		CurrencyCode: "USD",
		Discount:     amount(t, "1.00"),
		TaxRatePct:   decimal.NewFromInt(18),
		AmountPaid:   &paid,
	}

	totals, err := receipt.Compute(sale, ratesTable(t))
	require.NoError(t, err)

	assert.Equal(t, "12.00", totals.Subtotal.String())
	assert.Equal(t, "1.00", totals.Discount.String())
	assert.Equal(t, "1.98", totals.Tax.String())
	assert.Equal(t, "12.98", totals.Total.String())
	assert.Equal(t, "15.00", totals.AmountPaid.String())
	assert.Equal(t, "2.02", totals.Change.String())
	assert.Equal(t, "1077.34", totals.TotalReference.String())
}

func TestCompute_RoundsPerLineBeforeSumming(t *testing.T) {
	// Each line is 0.5 x 0.01 = 0.005, which rounds half-up to 0.01.
	// Summing the rounded lines gives 0.03; rounding the raw sum (0.015)
	// would give 0.02 instead.
	sale := receipt.Sale{
		Items: []receipt.LineItem{
			item(t, "a", "0.5", "0.01"),
			item(t, "b", "0.5", "0.01"),
			item(t, "c", "0.5", "0.01"),
		},
		CurrencyCode: "INR",
		TaxRatePct:   decimal.Zero,
	}

	totals, err := receipt.Compute(sale, ratesTable(t))
	require.NoError(t, err)
	assert.Equal(t, "0.03", totals.Subtotal.String())
}

func TestCompute_DiscountClampedAtSubtotal(t *testing.T) {
	sale := receipt.Sale{
		Items:        []receipt.LineItem{item(t, "Tea", "1", "10.00")},
		CurrencyCode: "INR",
		Discount:     amount(t, "50.00"),
		TaxRatePct:   decimal.Zero,
	}

	totals, err := receipt.Compute(sale, ratesTable(t))
	require.NoError(t, err)

	assert.Equal(t, "10.00", totals.Subtotal.String())
	assert.Equal(t, "10.00", totals.Discount.String())
	assert.Equal(t, "0.00", totals.Total.String())
}

func TestCompute_ChangeNeverNegative(t *testing.T) {
	paid := amount(t, "5.00")
	sale := receipt.Sale{
		Items:        []receipt.LineItem{item(t, "Lunch", "1", "20.00")},
		CurrencyCode: "INR",
		TaxRatePct:   decimal.Zero,
		AmountPaid:   &paid,
	}

	totals, err := receipt.Compute(sale, ratesTable(t))
	require.NoError(t, err)
	assert.Equal(t, "0.00", totals.Change.String())
}

func TestCompute_OmittedPaymentMeansPaidInFull(t *testing.T) {
	sale := receipt.Sale{
		Items:        []receipt.LineItem{item(t, "Book", "1", "12.00")},
		CurrencyCode: "INR",
		TaxRatePct:   decimal.NewFromInt(5),
	}

	totals, err := receipt.Compute(sale, ratesTable(t))
	require.NoError(t, err)

	assert.Equal(t, "12.60", totals.Total.String())
	assert.Equal(t, "12.60", totals.AmountPaid.String())
	assert.Equal(t, "0.00", totals.Change.String())
}

func TestCompute_Errors(t *testing.T) {
	table := ratesTable(t)

	t.Run("EmptySale", func(t *testing.T) {
		sale := receipt.Sale{
			Items:        []receipt.LineItem{item(t, "   ", "1", "1.00")},
			CurrencyCode: "INR",
		}

		_, err := receipt.Compute(sale, table)
		assert.ErrorIs(t, err, receipt.ErrEmptySale)
	})

	t.Run("NegativeTaxRate", func(t *testing.T) {
		sale := receipt.Sale{
			Items:        []receipt.LineItem{item(t, "x", "1", "1.00")},
			CurrencyCode: "INR",
			TaxRatePct:   decimal.NewFromInt(-1),
		}

		_, err := receipt.Compute(sale, table)
		assert.ErrorIs(t, err, receipt.ErrInvalidTaxRate)
	})

	t.Run("UnknownCurrency", func(t *testing.T) {
		sale := receipt.Sale{
			Items:        []receipt.LineItem{item(t, "x", "1", "1.00")},
			CurrencyCode: "GBP",
		}

		_, err := receipt.Compute(sale, table)
		assert.ErrorIs(t, err, currency.ErrUnknownCurrency)
	})
}

func timeDate(y, m, d, hh, mm, ss int) time.Time {
	return time.Date(y, time.Month(m), d, hh, mm, ss, 0, time.UTC)
}

func TestNewNumber(t *testing.T) {
	n := receipt.NewNumber(timeDate(2024, 1, 1, 12, 0, 0))
	assert.Equal(t, "RCP-20240101-120000", n)
}
