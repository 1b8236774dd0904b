package receipt

import (
	"time"

	"github.com/google/uuid"

	"github.com/dhruvbhat/kagaz/internal/receipt"
)

type lineItemResponse struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	Total       int64  `json:"total"`
}

type receiptResponse struct {
	ID             uuid.UUID          `json:"id"`
	Number         string             `json:"number"`
	CustomerID     *uuid.UUID         `json:"customer_id,omitempty"`
	CustomerName   string             `json:"customer_name,omitempty"`
	Currency       string             `json:"currency"`
	CouponCode     string             `json:"coupon_code,omitempty"`
	TaxRate        string             `json:"tax_rate"`
	PaymentMethod  string             `json:"payment_method"`
	Cashier        string             `json:"cashier,omitempty"`
	Notes          string             `json:"notes,omitempty"`
	Items          []lineItemResponse `json:"items,omitempty"`
	Subtotal       int64              `json:"subtotal"`
	Discount       int64              `json:"discount"`
	Tax            int64              `json:"tax"`
	Total          int64              `json:"total"`
	AmountPaid     int64              `json:"amount_paid"`
	Change         int64              `json:"change"`
	TotalReference int64              `json:"total_reference"`
	CreatedAt      time.Time          `json:"created_at"`
}

func toResponse(r *receipt.Receipt) receiptResponse {
	items := make([]lineItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, lineItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitPrice:   int64(it.UnitPrice),
			Total:       int64(it.Total()),
		})
	}

	return receiptResponse{
		ID:             r.ID,
		Number:         r.Number,
		CustomerID:     r.CustomerID,
		CustomerName:   r.CustomerName,
		Currency:       r.CurrencyCode,
		CouponCode:     r.CouponCode,
		TaxRate:        r.TaxRatePct.String(),
		PaymentMethod:  r.PaymentMethod,
		Cashier:        r.Cashier,
		Notes:          r.Notes,
		Items:          items,
		Subtotal:       int64(r.Totals.Subtotal),
		Discount:       int64(r.Totals.Discount),
		Tax:            int64(r.Totals.Tax),
		Total:          int64(r.Totals.Total),
		AmountPaid:     int64(r.Totals.AmountPaid),
		Change:         int64(r.Totals.Change),
		TotalReference: int64(r.Totals.TotalReference),
		CreatedAt:      r.CreatedAt,
	}
}

func toResponseList(receipts []*receipt.Receipt) []receiptResponse {
	resp := make([]receiptResponse, len(receipts))
	for i, r := range receipts {
		resp[i] = toResponse(r)
	}

	return resp
}
