package document_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvbhat/kagaz/internal/business"
	"github.com/dhruvbhat/kagaz/internal/currency"
	"github.com/dhruvbhat/kagaz/internal/document"
	"github.com/dhruvbhat/kagaz/internal/money"
	"github.com/dhruvbhat/kagaz/internal/receipt"
)

func amount(t *testing.T, s string) money.Amount {
	t.Helper()

	a, err := money.Parse(s)
	require.NoError(t, err)

	return a
}

func ratesTable(t *testing.T) *currency.Table {
	t.Helper()

	table, err := currency.NewTable("INR", []currency.Currency{
		{Code: "INR", Symbol: "₹", Name: "Indian Rupee", RateToReference: decimal.NewFromInt(1)},
		{Code: "USD", Symbol: "$", Name: "US Dollar", RateToReference: decimal.RequireFromString("83.0")},
	})
	require.NoError(t, err)

	return table
}

func testSale(t *testing.T) receipt.Sale {
	t.Helper()

	paid := amount(t, "15.00")

	return receipt.Sale{
		Number: "RCP-20240101-120000",
		Business: business.Profile{
			Name:   "Chai Point",
			Phone:  "98765 43210",
			TaxID:  "29ABCDE1234F1Z5",
			Footer: "Thank you!\nVisit again",
		},
		CustomerName: "Asha Rao",
		Items: []receipt.LineItem{
			{Description: "Coffee", Quantity: decimal.NewFromInt(2), UnitPrice: amount(t, "3.50")},
			{Description: "Cake", Quantity: decimal.NewFromInt(1), UnitPrice: amount(t, "5.00")},
		},
		CurrencyCode:  "USD",
		CouponCode:    "SAVE10",
		Discount:      amount(t, "1.00"),
		TaxRatePct:    decimal.NewFromInt(18),
		PaymentMethod: "Cash",
		AmountPaid:    &paid,
		Cashier:       "Ravi",
		IssuedAt:      time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func computed(t *testing.T, sale receipt.Sale) receipt.Totals {
	t.Helper()

	totals, err := receipt.Compute(sale, ratesTable(t))
	require.NoError(t, err)

	return totals
}

func findSplit(d document.Document, left string) (document.Line, bool) {
	for _, l := range d.Lines {
		if l.Split && strings.HasPrefix(l.Left, left) {
			return l, true
		}
	}

	return document.Line{}, false
}

func TestRender_Order(t *testing.T) {
	sale := testSale(t)
	d := document.Render(sale, computed(t, sale), ratesTable(t))

	require.NotEmpty(t, d.Lines)

	// Bold centered business name first.
	assert.Equal(t, "Chai Point", d.Lines[0].Text)
	assert.Equal(t, document.AlignCenter, d.Lines[0].Align)
	assert.Equal(t, document.WeightBold, d.Lines[0].Weight)

	var texts []string
	for _, l := range d.Lines {
		if !l.Split {
			texts = append(texts, l.Text)
		}
	}

	assert.Contains(t, texts, "Tel: 98765 43210")
	assert.Contains(t, texts, "GST: 29ABCDE1234F1Z5")
	assert.Contains(t, texts, "Receipt #: RCP-20240101-120000")
	assert.Contains(t, texts, "Date: 01/01/2024")
	assert.Contains(t, texts, "Time: 12:00 PM")
	assert.Contains(t, texts, "Cashier: Ravi")
	assert.Contains(t, texts, "Customer: Asha Rao")
	assert.Contains(t, texts, "Payment: Cash")
	assert.Contains(t, texts, "Thank you!")
	assert.Contains(t, texts, "Visit again")
}

func TestRender_TotalsBlock(t *testing.T) {
	sale := testSale(t)
	d := document.Render(sale, computed(t, sale), ratesTable(t))

	subtotal, ok := findSplit(d, "Subtotal:")
	require.True(t, ok)
	assert.Equal(t, "$12.00", subtotal.Right)

	discount, ok := findSplit(d, "Discount (SAVE10):")
	require.True(t, ok)
	assert.Equal(t, "-$1.00", discount.Right)

	tax, ok := findSplit(d, "Tax (18%):")
	require.True(t, ok)
	assert.Equal(t, "$1.98", tax.Right)

	total, ok := findSplit(d, "TOTAL:")
	require.True(t, ok)
	assert.Equal(t, "$12.98", total.Right)
	assert.Equal(t, document.WeightBold, total.Weight)

	change, ok := findSplit(d, "Change:")
	require.True(t, ok)
	assert.Equal(t, "$2.02", change.Right)
}

func TestRender_DiscountRowHiddenWhenZero(t *testing.T) {
	sale := testSale(t)
	sale.Discount = 0
	sale.CouponCode = ""

	d := document.Render(sale, computed(t, sale), ratesTable(t))

	_, ok := findSplit(d, "Discount")
	assert.False(t, ok)
}

func TestRender_ReferenceRow(t *testing.T) {
	sale := testSale(t)
	d := document.Render(sale, computed(t, sale), ratesTable(t))

	var found bool

	for _, l := range d.Lines {
		if !l.Split && strings.HasPrefix(l.Text, "(INR Equivalent:") {
			found = true

			assert.Equal(t, "(INR Equivalent: ₹1077.34)", l.Text)
		}
	}

	assert.True(t, found)

	// INR sales show no equivalent row.
	sale.CurrencyCode = "INR"
	d = document.Render(sale, computed(t, sale), ratesTable(t))

	for _, l := range d.Lines {
		assert.NotContains(t, l.Text, "Equivalent")
	}
}

func TestRender_LongDescriptionKeepsAmountColumn(t *testing.T) {
	sale := testSale(t)
	sale.Items = []receipt.LineItem{{
		Description: "Extra large cold brew with oat milk and an unreasonable amount of caramel",
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   amount(t, "9.99"),
	}}
	sale.Discount = 0
	sale.CouponCode = ""

	d := document.Render(sale, computed(t, sale), ratesTable(t))

	for _, line := range strings.Split(d.Text(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), document.Width,
			"line overflows: %q", line)
	}

	// The amount stays glued to the right edge of its row.
	for _, l := range d.Lines {
		if l.Split {
			rendered := ""

			for _, s := range strings.Split(d.Text(), "\n") {
				if strings.HasSuffix(s, l.Right) {
					rendered = s
					break
				}
			}

			require.NotEmpty(t, rendered, "split row %q/%q missing", l.Left, l.Right)
		}
	}
}

func TestRender_WalkInCustomerOmitted(t *testing.T) {
	sale := testSale(t)
	sale.CustomerName = "Walk-in Customer"

	d := document.Render(sale, computed(t, sale), ratesTable(t))

	for _, l := range d.Lines {
		assert.NotContains(t, l.Text, "Customer:")
	}
}

func TestDocument_Text(t *testing.T) {
	sale := testSale(t)
	text := document.Render(sale, computed(t, sale), ratesTable(t)).Text()

	assert.Contains(t, text, "*RCP-20240101-120000*")
	assert.Contains(t, text, "================================")

	// Split rows end exactly at the column edge.
	for _, line := range strings.Split(text, "\n") {
		if strings.HasSuffix(line, "$12.98") {
			assert.Equal(t, document.Width, len([]rune(line)))
		}
	}
}
