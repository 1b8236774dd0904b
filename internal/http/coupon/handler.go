package coupon

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dhruvbhat/kagaz/internal/coupon"
	"github.com/dhruvbhat/kagaz/internal/money"
)

type Handler struct {
	svc *coupon.Service
}

func NewHandler(svc *coupon.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/validate", h.validate)
	r.Delete("/{id}", h.delete)
}

type couponResponse struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	Type          string    `json:"type"`
	DiscountValue string    `json:"discount_value"`
	MinPurchase   int64     `json:"min_purchase"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

func toResponse(c *coupon.Coupon) couponResponse {
	return couponResponse{
		ID:            c.ID,
		Code:          c.Code,
		Type:          string(c.Type),
		DiscountValue: c.DiscountValue.String(),
		MinPurchase:   int64(c.MinPurchase),
		Active:        c.Active,
		CreatedAt:     c.CreatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.svc.ListActive(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]couponResponse, len(coupons))
	for i, c := range coupons {
		resp[i] = toResponse(c)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createCouponRequest struct {
	Code          string `json:"code"`
	Type          string `json:"type"`
	DiscountValue string `json:"discount_value"`
	MinPurchase   int64  `json:"min_purchase"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), coupon.CreateParams{
		Code:          req.Code,
		Type:          coupon.Type(req.Type),
		DiscountValue: req.DiscountValue,
		MinPurchase:   money.Amount(req.MinPurchase),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type validateRequest struct {
	Code     string `json:"code"`
	Purchase int64  `json:"purchase"`
}

type validateResponse struct {
	Discount int64          `json:"discount"`
	Coupon   couponResponse `json:"coupon"`
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	discount, c, err := h.svc.Redeem(r.Context(), req.Code, money.Amount(req.Purchase))
	if err != nil {
		var belowMin *coupon.BelowMinimumError

		switch {
		case errors.Is(err, coupon.ErrNotFound):
			http.Error(w, "coupon not found or inactive", http.StatusNotFound)
		case errors.As(err, &belowMin):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := validateResponse{Discount: int64(discount), Coupon: toResponse(c)}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, coupon.ErrNotFound) {
			http.Error(w, "coupon not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
