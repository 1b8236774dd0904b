package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/dhruvbhat/kagaz/internal/auth"
	authStore "github.com/dhruvbhat/kagaz/internal/auth/store"
	"github.com/dhruvbhat/kagaz/internal/business"
	businessStore "github.com/dhruvbhat/kagaz/internal/business/store"
	"github.com/dhruvbhat/kagaz/internal/config"
	"github.com/dhruvbhat/kagaz/internal/coupon"
	couponStore "github.com/dhruvbhat/kagaz/internal/coupon/store"
	"github.com/dhruvbhat/kagaz/internal/currency"
	currencyStore "github.com/dhruvbhat/kagaz/internal/currency/store"
	"github.com/dhruvbhat/kagaz/internal/customer"
	customerStore "github.com/dhruvbhat/kagaz/internal/customer/store"
	"github.com/dhruvbhat/kagaz/internal/dashboard"
	dashboardStore "github.com/dhruvbhat/kagaz/internal/dashboard/store"
	"github.com/dhruvbhat/kagaz/internal/database"
	kagazHttp "github.com/dhruvbhat/kagaz/internal/http"
	authHandler "github.com/dhruvbhat/kagaz/internal/http/auth"
	businessHandler "github.com/dhruvbhat/kagaz/internal/http/business"
	couponHandler "github.com/dhruvbhat/kagaz/internal/http/coupon"
	currencyHandler "github.com/dhruvbhat/kagaz/internal/http/currency"
	customerHandler "github.com/dhruvbhat/kagaz/internal/http/customer"
	dashboardHandler "github.com/dhruvbhat/kagaz/internal/http/dashboard"
	receiptHandler "github.com/dhruvbhat/kagaz/internal/http/receipt"
	"github.com/dhruvbhat/kagaz/internal/receipt"
	receiptStore "github.com/dhruvbhat/kagaz/internal/receipt/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	currencyService := currency.NewService(currencyStore.New(db), cfg.Receipt.ReferenceCurrency)
	if err := currencyService.Load(ctx); err != nil {
		slog.Error("failed to load currency table", "error", err)
		os.Exit(1)
	}

	var tokens *auth.TokenManager
	if cfg.Auth.Secret != "" {
		tokens = auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	} else {
		slog.Warn("AUTH_SECRET not set, API authentication disabled")
	}

	var (
		authService     = auth.NewService(authStore.New(db), tokens)
		businessService = business.NewService(businessStore.New(db))
		couponService   = coupon.NewService(couponStore.New(db))
		customerService = customer.NewService(customerStore.New(db))
		receiptService  = receipt.NewService(receiptStore.New(db), currencyService)
		statsService    = dashboard.NewService(dashboardStore.New(db))
	)

	var (
		authH      = authHandler.NewHandler(authService)
		receiptH   = receiptHandler.NewHandler(receiptService, businessService, currencyService)
		customerH  = customerHandler.NewHandler(customerService, receiptService)
		couponH    = couponHandler.NewHandler(couponService)
		currencyH  = currencyHandler.NewHandler(currencyService)
		businessH  = businessHandler.NewHandler(businessService)
		dashboardH = dashboardHandler.NewHandler(statsService)
	)

	router := kagazHttp.New(tokens, authH, receiptH, customerH, couponH, currencyH, businessH, dashboardH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
