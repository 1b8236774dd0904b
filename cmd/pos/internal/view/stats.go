package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dhruvbhat/kagaz/internal/currency"
	"github.com/dhruvbhat/kagaz/internal/dashboard"
)

type StatsModel struct {
	CommonModel
	statsSvc *dashboard.Service
	ratesSvc *currency.Service

	stats   *dashboard.Stats
	loading bool
	err     error
}

func NewStatsModel(statsSvc *dashboard.Service, ratesSvc *currency.Service) StatsModel {
	return StatsModel{statsSvc: statsSvc, ratesSvc: ratesSvc, loading: true}
}

func (m StatsModel) Title() string     { return "Dashboard" }
func (m StatsModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m StatsModel) Init() tea.Cmd {
	return m.loadCmd()
}

type loadStatsMsg struct {
	stats *dashboard.Stats
	err   error
}

func (m StatsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		stats, err := m.statsSvc.Stats(ctx)

		return loadStatsMsg{stats: stats, err: err}
	}
}

func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadStatsMsg:
		m.loading = false
		m.stats = msg.stats
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m StatsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	symbol := ""
	if table := m.ratesSvc.Table(); table != nil {
		symbol = table.Reference().Symbol
	}

	s := m.stats

	figures := fmt.Sprintf(
		"Customers: %d    Receipts: %d\n\n"+
			"Today:      %s\n"+
			"This week:  %s\n"+
			"This month: %s\n"+
			"This year:  %s\n"+
			"All time:   %s",
		s.TotalCustomers, s.TotalReceipts,
		FormatAmount(s.TodaySales, symbol),
		FormatAmount(s.WeekSales, symbol),
		FormatAmount(s.MonthSales, symbol),
		FormatAmount(s.YearSales, symbol),
		FormatAmount(s.TotalSales, symbol),
	)

	if len(s.TopCustomers) > 0 {
		figures += "\n\nTop customers:"
		for _, tc := range s.TopCustomers {
			figures += fmt.Sprintf("\n  %-24s %3d  %s", tc.Name, tc.ReceiptCount, FormatAmount(tc.TotalSpent, symbol))
		}
	}

	if len(s.SalesByPayment) > 0 {
		figures += "\n\nBy payment method:"
		for _, b := range s.SalesByPayment {
			figures += fmt.Sprintf("\n  %-24s %3d  %s", b.PaymentMethod, b.Count, FormatAmount(b.Total, symbol))
		}
	}

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(figures)

	return lipgloss.NewStyle().Padding(1).Render(panel)
}
