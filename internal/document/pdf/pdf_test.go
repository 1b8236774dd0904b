package pdf_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvbhat/kagaz/internal/business"
	"github.com/dhruvbhat/kagaz/internal/currency"
	"github.com/dhruvbhat/kagaz/internal/document"
	"github.com/dhruvbhat/kagaz/internal/document/pdf"
	"github.com/dhruvbhat/kagaz/internal/money"
	"github.com/dhruvbhat/kagaz/internal/receipt"
)

func TestEncode(t *testing.T) {
	table, err := currency.NewTable("INR", []currency.Currency{
		{Code: "INR", Symbol: "₹", Name: "Indian Rupee", RateToReference: decimal.NewFromInt(1)},
	})
	require.NoError(t, err)

	price, err := money.Parse("120.00")
	require.NoError(t, err)

	sale := receipt.Sale{
		Number:        "RCP-20240101-120000",
		Business:      business.Profile{Name: "Chai Point", Footer: "Thank you!"},
		Items:         []receipt.LineItem{{Description: "Masala Chai", Quantity: decimal.NewFromInt(2), UnitPrice: price}},
		CurrencyCode:  "INR",
		TaxRatePct:    decimal.NewFromInt(5),
		PaymentMethod: "UPI",
		IssuedAt:      time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	totals, err := receipt.Compute(sale, table)
	require.NoError(t, err)

	got, err := pdf.Encode(document.Render(sale, totals, table))
	require.NoError(t, err)

	assert.NotEmpty(t, got)
	assert.Equal(t, "%PDF", string(got[:4]))
}
