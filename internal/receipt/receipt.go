// Package receipt computes and persists point-of-sale receipts. The totals
// calculation is a pure function shared by the save path, the PDF export
// and the terminal preview, so the three can never disagree.
package receipt

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dhruvbhat/kagaz/internal/business"
	"github.com/dhruvbhat/kagaz/internal/money"
)

// LineItem is one row of a sale. Quantity may be fractional (weighed goods).
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   money.Amount
}

// Total is the line total, rounded half-up to two digits before any
// summation happens.
func (li LineItem) Total() money.Amount {
	return li.UnitPrice.MulQuantity(li.Quantity)
}

// Sale is the caller-supplied input to the totals calculator. Item order is
// display order. Discount is an absolute amount, already resolved from any
// coupon; CouponCode is kept only for the printed label.
type Sale struct {
	Number        string
	Business      business.Profile
	CustomerName  string
	Items         []LineItem
	CurrencyCode  string
	CouponCode    string
	Discount      money.Amount
	TaxRatePct    decimal.Decimal
	PaymentMethod string
	AmountPaid    *money.Amount // nil means paid in full
	Cashier       string
	IssuedAt      time.Time
}

// ValidItems returns the items with a non-empty description, preserving
// order. Blank form rows are skipped everywhere: computation, rendering
// and persistence.
func (s Sale) ValidItems() []LineItem {
	out := make([]LineItem, 0, len(s.Items))

	for _, it := range s.Items {
		if strings.TrimSpace(it.Description) != "" {
			out = append(out, it)
		}
	}

	return out
}

// Totals is the computed monetary summary of a sale. Immutable once
// produced.
type Totals struct {
	Subtotal       money.Amount
	Discount       money.Amount
	Tax            money.Amount
	Total          money.Amount
	AmountPaid     money.Amount
	Change         money.Amount
	TotalReference money.Amount // total converted to the reference currency
}

// AsSale rebuilds the renderer input for a stored receipt, attaching the
// current business profile. AmountPaid is carried over as-is so rendering
// a saved receipt never re-derives payment figures.
func (r *Receipt) AsSale(profile business.Profile) Sale {
	paid := r.Totals.AmountPaid

	return Sale{
		Number:        r.Number,
		Business:      profile,
		CustomerName:  r.CustomerName,
		Items:         r.Items,
		CurrencyCode:  r.CurrencyCode,
		CouponCode:    r.CouponCode,
		Discount:      r.Totals.Discount,
		TaxRatePct:    r.TaxRatePct,
		PaymentMethod: r.PaymentMethod,
		AmountPaid:    &paid,
		Cashier:       r.Cashier,
		IssuedAt:      r.CreatedAt,
	}
}

// Receipt is a persisted sale together with its computed totals.
type Receipt struct {
	ID            uuid.UUID
	Number        string
	CustomerID    *uuid.UUID
	CustomerName  string
	CurrencyCode  string
	CouponCode    string
	TaxRatePct    decimal.Decimal
	PaymentMethod string
	Cashier       string
	Notes         string
	Items         []LineItem
	Totals        Totals
	CreatedAt     time.Time
}
