package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/dhruvbhat/kagaz/cmd/pos/internal/view"
	"github.com/dhruvbhat/kagaz/internal/business"
	businessStore "github.com/dhruvbhat/kagaz/internal/business/store"
	"github.com/dhruvbhat/kagaz/internal/config"
	"github.com/dhruvbhat/kagaz/internal/coupon"
	couponStore "github.com/dhruvbhat/kagaz/internal/coupon/store"
	"github.com/dhruvbhat/kagaz/internal/currency"
	currencyStore "github.com/dhruvbhat/kagaz/internal/currency/store"
	"github.com/dhruvbhat/kagaz/internal/dashboard"
	dashboardStore "github.com/dhruvbhat/kagaz/internal/dashboard/store"
	"github.com/dhruvbhat/kagaz/internal/database"
	"github.com/dhruvbhat/kagaz/internal/receipt"
	receiptStore "github.com/dhruvbhat/kagaz/internal/receipt/store"
)

type model struct {
	receiptSvc  *receipt.Service
	couponSvc   *coupon.Service
	businessSvc *business.Service
	ratesSvc    *currency.Service
	statsSvc    *dashboard.Service

	currentView View

	saleView     view.SaleModel
	receiptsView view.ReceiptsModel
	statsView    view.StatsModel
}

type View int

const (
	ViewMenu     View = 0
	ViewSale     View = 1
	ViewReceipts View = 2
	ViewStats    View = 3
)

func initialModel() model {
	_ = godotenv.Load()

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

	ratesSvc := currency.NewService(currencyStore.New(db), cfg.Receipt.ReferenceCurrency)
	if err := ratesSvc.Load(ctx); err != nil {
		slog.Error("failed to load currency table", "error", err)
		os.Exit(1)
	}

	receiptSvc := receipt.NewService(receiptStore.New(db), ratesSvc)
	couponSvc := coupon.NewService(couponStore.New(db))
	businessSvc := business.NewService(businessStore.New(db))
	statsSvc := dashboard.NewService(dashboardStore.New(db))

	return model{
		receiptSvc:  receiptSvc,
		couponSvc:   couponSvc,
		businessSvc: businessSvc,
		ratesSvc:    ratesSvc,
		statsSvc:    statsSvc,
		currentView: ViewMenu,
		saleView:    view.NewSaleModel(receiptSvc, couponSvc, businessSvc, ratesSvc),
		receiptsView: view.NewReceiptsModel(
			receiptSvc, businessSvc, ratesSvc,
		),
		statsView: view.NewStatsModel(statsSvc, ratesSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewSale
				m.saleView = view.NewSaleModel(m.receiptSvc, m.couponSvc, m.businessSvc, m.ratesSvc)

				return m, m.saleView.Init()
			case "2":
				m.currentView = ViewReceipts
				m.receiptsView = view.NewReceiptsModel(m.receiptSvc, m.businessSvc, m.ratesSvc)

				return m, m.receiptsView.Init()
			case "3":
				m.currentView = ViewStats
				m.statsView = view.NewStatsModel(m.statsSvc, m.ratesSvc)

				return m, m.statsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewSale:
		var newModel tea.Model
		newModel, cmd = m.saleView.Update(msg)
		m.saleView = newModel.(view.SaleModel)
	case ViewReceipts:
		var newModel tea.Model
		newModel, cmd = m.receiptsView.Update(msg)
		m.receiptsView = newModel.(view.ReceiptsModel)
	case ViewStats:
		var newModel tea.Model
		newModel, cmd = m.statsView.Update(msg)
		m.statsView = newModel.(view.StatsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Kagaz POS\n\n" +
				"1. New Sale\n" +
				"2. Receipts\n" +
				"3. Dashboard\n\n" +
				"q. Quit",
		)
	case ViewSale:
		return m.saleView.View()
	case ViewReceipts:
		return m.receiptsView.View()
	case ViewStats:
		return m.statsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
