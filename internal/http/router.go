package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authdomain "github.com/dhruvbhat/kagaz/internal/auth"
	authv1 "github.com/dhruvbhat/kagaz/internal/http/auth"
	"github.com/dhruvbhat/kagaz/internal/http/business"
	"github.com/dhruvbhat/kagaz/internal/http/coupon"
	"github.com/dhruvbhat/kagaz/internal/http/currency"
	"github.com/dhruvbhat/kagaz/internal/http/customer"
	"github.com/dhruvbhat/kagaz/internal/http/dashboard"
	"github.com/dhruvbhat/kagaz/internal/http/receipt"
)

// New assembles the API router. A nil tokens manager disables
// authentication, which is how the terminal client runs against a local
// instance.
func New(
	tokens *authdomain.TokenManager,
	authV1 *authv1.Handler,
	receiptsV1 *receipt.Handler,
	customersV1 *customer.Handler,
	couponsV1 *coupon.Handler,
	currenciesV1 *currency.Handler,
	businessV1 *business.Handler,
	dashboardV1 *dashboard.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			if tokens != nil {
				r.Use(RequireAuth(tokens))
			}

			r.Route("/receipts", receiptsV1.Routes)
			r.Route("/customers", customersV1.Routes)

			r.Route("/coupons", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				couponsV1.Routes(r)
			})

			r.Route("/currencies", currenciesV1.Routes)

			r.Route("/business-profile", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				businessV1.Routes(r)
			})

			r.Route("/dashboard", dashboardV1.Routes)
		})
	})

	return router
}
