package currency

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/dhruvbhat/kagaz/internal/currency"
)

type Handler struct {
	svc *currency.Service
}

func NewHandler(svc *currency.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/refresh", h.refresh)
}

type currencyResponse struct {
	Code            string `json:"code"`
	Symbol          string `json:"symbol"`
	Name            string `json:"name"`
	RateToReference string `json:"rate_to_reference"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	table := h.svc.Table()
	if table == nil {
		http.Error(w, "rates not loaded", http.StatusServiceUnavailable)
		return
	}

	currencies := table.All()
	sort.Slice(currencies, func(i, j int) bool { return currencies[i].Code < currencies[j].Code })

	resp := make([]currencyResponse, len(currencies))
	for i, c := range currencies {
		resp[i] = currencyResponse{
			Code:            c.Code,
			Symbol:          c.Symbol,
			Name:            c.Name,
			RateToReference: c.RateToReference.String(),
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// refresh swaps in a freshly loaded rate table. Receipts being computed
// concurrently keep the table they started with.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Refresh(r.Context()); err != nil {
		slog.Error("failed to refresh rates", "error", err)
		http.Error(w, "failed to refresh rates", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
