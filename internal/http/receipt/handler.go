package receipt

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dhruvbhat/kagaz/internal/business"
	"github.com/dhruvbhat/kagaz/internal/currency"
	"github.com/dhruvbhat/kagaz/internal/document"
	"github.com/dhruvbhat/kagaz/internal/document/pdf"
	"github.com/dhruvbhat/kagaz/internal/money"
	"github.com/dhruvbhat/kagaz/internal/receipt"
)

type Handler struct {
	svc      *receipt.Service
	profiles *business.Service
	rates    *currency.Service
}

func NewHandler(svc *receipt.Service, profiles *business.Service, rates *currency.Service) *Handler {
	return &Handler{svc: svc, profiles: profiles, rates: rates}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Get("/{id}/pdf", h.exportPDF)
	r.Get("/{id}/text", h.exportText)
	r.Get("/number/{number}", h.getByNumber)
}

type lineItemDTO struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

type createReceiptRequest struct {
	Number        string        `json:"number,omitempty"`
	CustomerID    *uuid.UUID    `json:"customer_id,omitempty"`
	CustomerName  string        `json:"customer_name"`
	Items         []lineItemDTO `json:"items"`
	Currency      string        `json:"currency"`
	CouponCode    string        `json:"coupon_code,omitempty"`
	Discount      int64         `json:"discount"`
	TaxRate       string        `json:"tax_rate"`
	PaymentMethod string        `json:"payment_method"`
	AmountPaid    *int64        `json:"amount_paid,omitempty"`
	Cashier       string        `json:"cashier"`
	Notes         string        `json:"notes,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	taxRate, err := decimal.NewFromString(req.TaxRate)
	if err != nil {
		http.Error(w, "invalid tax_rate", http.StatusBadRequest)
		return
	}

	items := make([]receipt.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		qty, err := decimal.NewFromString(it.Quantity)
		if err != nil {
			http.Error(w, "invalid quantity", http.StatusBadRequest)
			return
		}

		items = append(items, receipt.LineItem{
			Description: it.Description,
			Quantity:    qty,
			UnitPrice:   money.Amount(it.UnitPrice),
		})
	}

	params := receipt.CreateParams{
		Number:        req.Number,
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		Items:         items,
		CurrencyCode:  req.Currency,
		CouponCode:    req.CouponCode,
		Discount:      money.Amount(req.Discount),
		TaxRatePct:    taxRate,
		PaymentMethod: req.PaymentMethod,
		Cashier:       req.Cashier,
		Notes:         req.Notes,
	}
	if req.AmountPaid != nil {
		paid := money.Amount(*req.AmountPaid)
		params.AmountPaid = &paid
	}

	rec, err := h.svc.Create(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, receipt.ErrDuplicateNumber):
			http.Error(w, "receipt number already exists", http.StatusConflict)
		case errors.Is(err, receipt.ErrEmptySale), errors.Is(err, receipt.ErrInvalidTaxRate),
			errors.Is(err, currency.ErrUnknownCurrency):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	receipts, err := h.svc.ListRecent(r.Context(), limit)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(receipts)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.fetch(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) getByNumber(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		if errors.Is(err, receipt.ErrNotFound) {
			http.Error(w, "receipt not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) exportPDF(w http.ResponseWriter, r *http.Request) {
	doc, rec, ok := h.render(w, r)
	if !ok {
		return
	}

	data, err := pdf.Encode(doc)
	if err != nil {
		slog.Error("failed to encode pdf", "receipt", rec.Number, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+rec.Number+`.pdf"`)

	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write pdf", "receipt", rec.Number, "error", err)
	}
}

func (h *Handler) exportText(w http.ResponseWriter, r *http.Request) {
	doc, rec, ok := h.render(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if _, err := w.Write([]byte(doc.Text())); err != nil {
		slog.Error("failed to write text receipt", "receipt", rec.Number, "error", err)
	}
}

// render loads the receipt and lays it out with the current business
// profile. Totals are taken from the stored row, never recomputed.
func (h *Handler) render(w http.ResponseWriter, r *http.Request) (document.Document, *receipt.Receipt, bool) {
	rec, ok := h.fetch(w, r)
	if !ok {
		return document.Document{}, nil, false
	}

	profile, err := h.profiles.Get(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return document.Document{}, nil, false
	}

	return document.Render(rec.AsSale(profile), rec.Totals, h.rates.Table()), rec, true
}

func (h *Handler) fetch(w http.ResponseWriter, r *http.Request) (*receipt.Receipt, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return nil, false
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, receipt.ErrNotFound) {
			http.Error(w, "receipt not found", http.StatusNotFound)
			return nil, false
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return nil, false
	}

	return rec, true
}
