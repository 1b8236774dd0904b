package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvbhat/kagaz/internal/currency"
	"github.com/dhruvbhat/kagaz/internal/money"
)

func rate(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testTable(t *testing.T) *currency.Table {
	t.Helper()

	table, err := currency.NewTable("INR", []currency.Currency{
		{Code: "INR", Symbol: "₹", Name: "Indian Rupee", RateToReference: rate("1")},
		{Code: "USD", Symbol: "$", Name: "US Dollar", RateToReference: rate("83.50")},
		{Code: "EUR", Symbol: "€", Name: "Euro", RateToReference: rate("90.25")},
	})
	require.NoError(t, err)

	return table
}

func TestNewTable(t *testing.T) {
	t.Run("MissingReference", func(t *testing.T) {
		_, err := currency.NewTable("INR", []currency.Currency{
			{Code: "USD", Symbol: "$", RateToReference: rate("83.50")},
		})
		assert.Error(t, err)
	})

	t.Run("ReferenceRateNotOne", func(t *testing.T) {
		_, err := currency.NewTable("INR", []currency.Currency{
			{Code: "INR", Symbol: "₹", RateToReference: rate("2")},
		})
		assert.Error(t, err)
	})

	t.Run("NonPositiveRate", func(t *testing.T) {
		_, err := currency.NewTable("INR", []currency.Currency{
			{Code: "INR", Symbol: "₹", RateToReference: rate("1")},
			{Code: "USD", Symbol: "$", RateToReference: rate("0")},
		})
		assert.Error(t, err)
	})
}

func TestTable_Convert(t *testing.T) {
	table := testTable(t)

	t.Run("ReferenceIsIdentity", func(t *testing.T) {
		amount, err := money.Parse("250.00")
		require.NoError(t, err)

		got, err := table.Convert(amount, "INR")
		require.NoError(t, err)
		assert.Equal(t, amount, got)
	})

	t.Run("AppliesRate", func(t *testing.T) {
		amount, err := money.Parse("100.00")
		require.NoError(t, err)

		got, err := table.Convert(amount, "USD")
		require.NoError(t, err)
		assert.Equal(t, "8350.00", got.String())
	})

	t.Run("UnknownCode", func(t *testing.T) {
		_, err := table.Convert(money.Amount(100), "GBP")
		assert.ErrorIs(t, err, currency.ErrUnknownCurrency)
	})
}

func TestTable_Lookup(t *testing.T) {
	table := testTable(t)

	c, err := table.Lookup("EUR")
	require.NoError(t, err)
	assert.Equal(t, "€", c.Symbol)

	_, err = table.Lookup("JPY")
	assert.ErrorIs(t, err, currency.ErrUnknownCurrency)

	assert.Equal(t, "INR", table.ReferenceCode())
	assert.Equal(t, "₹", table.Reference().Symbol)
}
