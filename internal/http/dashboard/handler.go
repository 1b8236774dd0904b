package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dhruvbhat/kagaz/internal/dashboard"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/stats", h.stats)
}

type topCustomerDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	ReceiptCount int       `json:"receipt_count"`
	TotalSpent   int64     `json:"total_spent"`
}

type paymentBucketDTO struct {
	PaymentMethod string `json:"payment_method"`
	Count         int    `json:"count"`
	Total         int64  `json:"total"`
}

type currencyBucketDTO struct {
	Currency      string `json:"currency"`
	Symbol        string `json:"symbol,omitempty"`
	CurrencyName  string `json:"currency_name,omitempty"`
	Count         int    `json:"count"`
	TotalOriginal int64  `json:"total_original"`
	Total         int64  `json:"total"`
}

type recentReceiptDTO struct {
	ID             uuid.UUID `json:"id"`
	Number         string    `json:"number"`
	Total          int64     `json:"total"`
	Currency       string    `json:"currency"`
	Symbol         string    `json:"symbol,omitempty"`
	TotalReference int64     `json:"total_reference"`
	CustomerName   string    `json:"customer_name,omitempty"`
	IssuedAt       time.Time `json:"issued_at"`
}

type seriesPointDTO struct {
	Period       string `json:"period"`
	ReceiptCount int    `json:"receipt_count"`
	TotalSales   int64  `json:"total_sales"`
}

type statsResponse struct {
	TotalCustomers int   `json:"total_customers"`
	TotalReceipts  int   `json:"total_receipts"`
	TotalSales     int64 `json:"total_sales"`
	TodaySales     int64 `json:"today_sales"`
	WeekSales      int64 `json:"week_sales"`
	MonthSales     int64 `json:"month_sales"`
	YearSales      int64 `json:"year_sales"`

	TopCustomers    []topCustomerDTO    `json:"top_customers"`
	SalesByPayment  []paymentBucketDTO  `json:"sales_by_payment"`
	SalesByCurrency []currencyBucketDTO `json:"sales_by_currency"`
	RecentReceipts  []recentReceiptDTO  `json:"recent_receipts"`

	DailySales   []seriesPointDTO `json:"daily_sales"`
	WeeklySales  []seriesPointDTO `json:"weekly_sales"`
	MonthlySales []seriesPointDTO `json:"monthly_sales"`
	YearlySales  []seriesPointDTO `json:"yearly_sales"`
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		slog.Error("failed to build dashboard stats", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(stats)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toResponse(s *dashboard.Stats) statsResponse {
	resp := statsResponse{
		TotalCustomers:  s.TotalCustomers,
		TotalReceipts:   s.TotalReceipts,
		TotalSales:      int64(s.TotalSales),
		TodaySales:      int64(s.TodaySales),
		WeekSales:       int64(s.WeekSales),
		MonthSales:      int64(s.MonthSales),
		YearSales:       int64(s.YearSales),
		TopCustomers:    make([]topCustomerDTO, 0, len(s.TopCustomers)),
		SalesByPayment:  make([]paymentBucketDTO, 0, len(s.SalesByPayment)),
		SalesByCurrency: make([]currencyBucketDTO, 0, len(s.SalesByCurrency)),
		RecentReceipts:  make([]recentReceiptDTO, 0, len(s.RecentReceipts)),
		DailySales:      toSeries(s.DailySales),
		WeeklySales:     toSeries(s.WeeklySales),
		MonthlySales:    toSeries(s.MonthlySales),
		YearlySales:     toSeries(s.YearlySales),
	}

	for _, tc := range s.TopCustomers {
		resp.TopCustomers = append(resp.TopCustomers, topCustomerDTO{
			ID:           tc.ID,
			Name:         tc.Name,
			Phone:        tc.Phone,
			Email:        tc.Email,
			ReceiptCount: tc.ReceiptCount,
			TotalSpent:   int64(tc.TotalSpent),
		})
	}

	for _, b := range s.SalesByPayment {
		resp.SalesByPayment = append(resp.SalesByPayment, paymentBucketDTO{
			PaymentMethod: b.PaymentMethod,
			Count:         b.Count,
			Total:         int64(b.Total),
		})
	}

	for _, b := range s.SalesByCurrency {
		resp.SalesByCurrency = append(resp.SalesByCurrency, currencyBucketDTO{
			Currency:      b.CurrencyCode,
			Symbol:        b.Symbol,
			CurrencyName:  b.CurrencyName,
			Count:         b.Count,
			TotalOriginal: int64(b.TotalOriginal),
			Total:         int64(b.Total),
		})
	}

	for _, rr := range s.RecentReceipts {
		resp.RecentReceipts = append(resp.RecentReceipts, recentReceiptDTO{
			ID:             rr.ID,
			Number:         rr.Number,
			Total:          int64(rr.Total),
			Currency:       rr.CurrencyCode,
			Symbol:         rr.CurrencySymbol,
			TotalReference: int64(rr.TotalReference),
			CustomerName:   rr.CustomerName,
			IssuedAt:       rr.IssuedAt,
		})
	}

	return resp
}

func toSeries(points []dashboard.SeriesPoint) []seriesPointDTO {
	out := make([]seriesPointDTO, len(points))
	for i, p := range points {
		out[i] = seriesPointDTO{
			Period:       p.Period,
			ReceiptCount: p.ReceiptCount,
			TotalSales:   int64(p.TotalSales),
		}
	}

	return out
}
