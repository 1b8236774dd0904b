package view

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dhruvbhat/kagaz/internal/business"
	"github.com/dhruvbhat/kagaz/internal/currency"
	"github.com/dhruvbhat/kagaz/internal/document"
	"github.com/dhruvbhat/kagaz/internal/document/pdf"
	"github.com/dhruvbhat/kagaz/internal/receipt"
)

type receiptsState int

const (
	receiptsStateBrowse receiptsState = iota
	receiptsStatePreview
)

type ReceiptsModel struct {
	CommonModel
	receiptSvc  *receipt.Service
	businessSvc *business.Service
	ratesSvc    *currency.Service

	state    receiptsState
	table    table.Model
	receipts []*receipt.Receipt
	preview  string

	loading bool
	status  string
	err     error
}

func NewReceiptsModel(receiptSvc *receipt.Service, businessSvc *business.Service, ratesSvc *currency.Service) ReceiptsModel {
	columns := []table.Column{
		{Title: "Number", Width: 22},
		{Title: "Date", Width: 12},
		{Title: "Customer", Width: 20},
		{Title: "Total", Width: 12},
		{Title: "Currency", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ReceiptsModel{
		receiptSvc:  receiptSvc,
		businessSvc: businessSvc,
		ratesSvc:    ratesSvc,
		table:       t,
	}
}

func (m ReceiptsModel) Title() string { return "Receipts" }

func (m ReceiptsModel) ShortHelp() string {
	if m.state == receiptsStatePreview {
		return "Esc: back to list"
	}

	return "Esc: back | Enter: preview | p: save PDF | r: refresh"
}

func (m ReceiptsModel) Init() tea.Cmd {
	return m.loadCmd()
}

type loadReceiptsMsg struct {
	receipts []*receipt.Receipt
	err      error
}

func (m ReceiptsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		receipts, err := m.receiptSvc.ListRecent(ctx, 100)

		return loadReceiptsMsg{receipts: receipts, err: err}
	}
}

type previewReadyMsg struct {
	text string
	err  error
}

type pdfSavedMsg struct {
	path string
	err  error
}

// render fetches the full receipt (the list carries summaries without
// items) and lays it out with the current business profile.
func (m ReceiptsModel) render(idx int) (document.Document, *receipt.Receipt, error) {
	ctx, cancel := DbCtx()
	defer cancel()

	rec, err := m.receiptSvc.Get(ctx, m.receipts[idx].ID)
	if err != nil {
		return document.Document{}, nil, err
	}

	profile, err := m.businessSvc.Get(ctx)
	if err != nil {
		return document.Document{}, nil, err
	}

	return document.Render(rec.AsSale(profile), rec.Totals, m.ratesSvc.Table()), rec, nil
}

func (m ReceiptsModel) previewCmd(idx int) tea.Cmd {
	return func() tea.Msg {
		doc, _, err := m.render(idx)
		if err != nil {
			return previewReadyMsg{err: err}
		}

		return previewReadyMsg{text: doc.Text()}
	}
}

func (m ReceiptsModel) savePDFCmd(idx int) tea.Cmd {
	return func() tea.Msg {
		doc, rec, err := m.render(idx)
		if err != nil {
			return pdfSavedMsg{err: err}
		}

		data, err := pdf.Encode(doc)
		if err != nil {
			return pdfSavedMsg{err: err}
		}

		path := rec.Number + ".pdf"
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return pdfSavedMsg{err: err}
		}

		return pdfSavedMsg{path: path}
	}
}

func (m ReceiptsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadReceiptsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.receipts = msg.receipts
		m.refreshTable()

		return m, nil

	case previewReadyMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.preview = msg.text
		m.state = receiptsStatePreview

		return m, nil

	case pdfSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving PDF: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Saved %s.", msg.path)
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		if m.state == receiptsStatePreview {
			if msg.Type == tea.KeyEsc {
				m.state = receiptsStateBrowse
				m.preview = ""
			}

			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "enter":
			if idx := m.table.Cursor(); idx >= 0 && idx < len(m.receipts) {
				return m, m.previewCmd(idx)
			}
		case "p":
			if idx := m.table.Cursor(); idx >= 0 && idx < len(m.receipts) {
				return m, m.savePDFCmd(idx)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *ReceiptsModel) refreshTable() {
	rows := make([]table.Row, len(m.receipts))
	for i, rec := range m.receipts {
		rows[i] = table.Row{
			rec.Number,
			FormatDate(rec.CreatedAt),
			rec.CustomerName,
			rec.Totals.Total.String(),
			rec.CurrencyCode,
		}
	}

	m.table.SetRows(rows)
}

func (m ReceiptsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading receipts...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == receiptsStatePreview {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Render(m.preview)

		return lipgloss.NewStyle().Padding(1).Render(panel + "\n\nEsc: back")
	}

	content := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}
