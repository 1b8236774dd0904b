package view

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/dhruvbhat/kagaz/internal/business"
	"github.com/dhruvbhat/kagaz/internal/coupon"
	"github.com/dhruvbhat/kagaz/internal/currency"
	"github.com/dhruvbhat/kagaz/internal/document"
	"github.com/dhruvbhat/kagaz/internal/money"
	"github.com/dhruvbhat/kagaz/internal/receipt"
)

type saleState int

const (
	saleStateItem saleState = iota
	saleStateDetails
	saleStatePreview
	saleStateDone
)

type SaleModel struct {
	CommonModel
	receiptSvc  *receipt.Service
	couponSvc   *coupon.Service
	businessSvc *business.Service
	ratesSvc    *currency.Service

	state saleState
	form  *huh.Form

	items []receipt.LineItem

	// Item form bindings
	formDesc  string
	formQty   string
	formPrice string
	addMore   bool

	// Details form bindings
	formCustomer string
	formCurrency string
	formCoupon   string
	formTaxRate  string
	formPayment  string
	formPaid     string

	// Preview
	sale     receipt.Sale
	totals   receipt.Totals
	discount money.Amount
	preview  string

	status string
	err    error
}

func NewSaleModel(receiptSvc *receipt.Service, couponSvc *coupon.Service, businessSvc *business.Service, ratesSvc *currency.Service) SaleModel {
	m := SaleModel{
		receiptSvc:  receiptSvc,
		couponSvc:   couponSvc,
		businessSvc: businessSvc,
		ratesSvc:    ratesSvc,
		formQty:     "1",
		formTaxRate: "18",
		formPayment: "Cash",
	}
	if table := ratesSvc.Table(); table != nil {
		m.formCurrency = table.ReferenceCode()
	}

	m.form = m.buildItemForm()

	return m
}

func (m SaleModel) Title() string { return "New Sale" }

func (m SaleModel) ShortHelp() string {
	switch m.state {
	case saleStatePreview:
		return "Enter: save receipt | Esc: back to details"
	case saleStateDone:
		return "Esc: back to menu"
	}

	return "Navigate form | Esc: cancel"
}

func (m SaleModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *SaleModel) buildItemForm() *huh.Form {
	m.formDesc = ""
	m.formQty = "1"
	m.formPrice = ""
	m.addMore = false

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("description").
				Title("Item").
				Value(&m.formDesc).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("item description cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("quantity").
				Title("Quantity").
				Value(&m.formQty).
				Validate(func(s string) error {
					qty, err := decimal.NewFromString(strings.TrimSpace(s))
					if err != nil || qty.Sign() <= 0 {
						return fmt.Errorf("quantity must be a positive number")
					}
					return nil
				}),

			huh.NewInput().
				Key("unit_price").
				Title("Unit price").
				Placeholder("3.50").
				Value(&m.formPrice).
				Validate(func(s string) error {
					if _, err := money.Parse(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("invalid price")
					}
					return nil
				}),

			huh.NewConfirm().
				Key("add_more").
				Title("Add another item?").
				Value(&m.addMore),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m *SaleModel) buildDetailsForm() *huh.Form {
	codes := []string{m.formCurrency}
	if table := m.ratesSvc.Table(); table != nil {
		codes = codes[:0]
		for _, c := range table.All() {
			codes = append(codes, c.Code)
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("customer").
				Title("Customer").
				Placeholder("Walk-in").
				Value(&m.formCustomer),

			huh.NewSelect[string]().
				Key("currency").
				Title("Currency").
				Options(huh.NewOptions(codes...)...).
				Value(&m.formCurrency),

			huh.NewInput().
				Key("coupon").
				Title("Coupon code").
				Value(&m.formCoupon),

			huh.NewInput().
				Key("tax_rate").
				Title("Tax rate %").
				Value(&m.formTaxRate).
				Validate(func(s string) error {
					rate, err := decimal.NewFromString(strings.TrimSpace(s))
					if err != nil || rate.Sign() < 0 {
						return fmt.Errorf("tax rate must be zero or positive")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("payment_method").
				Title("Payment method").
				Options(huh.NewOptions("Cash", "Card", "UPI", "Bank Transfer")...).
				Value(&m.formPayment),

			huh.NewInput().
				Key("amount_paid").
				Title("Amount paid").
				Placeholder("blank = exact").
				Value(&m.formPaid).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, err := money.Parse(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("invalid amount")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)
}

type previewMsg struct {
	sale     receipt.Sale
	totals   receipt.Totals
	discount money.Amount
	err      error
}

// previewCmd resolves the coupon, computes the totals and lays out the
// receipt exactly as saving would.
func (m SaleModel) previewCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var discount money.Amount

		subtotal := money.Amount(0)
		for _, it := range m.items {
			subtotal = subtotal.Add(it.Total())
		}

		code := strings.ToUpper(strings.TrimSpace(m.formCoupon))
		if code != "" {
			var err error

			discount, _, err = m.couponSvc.Redeem(ctx, code, subtotal)
			if err != nil {
				return previewMsg{err: err}
			}
		}

		profile, err := m.businessSvc.Get(ctx)
		if err != nil {
			return previewMsg{err: err}
		}

		taxRate, err := decimal.NewFromString(strings.TrimSpace(m.formTaxRate))
		if err != nil {
			return previewMsg{err: err}
		}

		sale := receipt.Sale{
			Business:      profile,
			CustomerName:  strings.TrimSpace(m.formCustomer),
			Items:         m.items,
			CurrencyCode:  m.formCurrency,
			CouponCode:    code,
			Discount:      discount,
			TaxRatePct:    taxRate,
			PaymentMethod: m.formPayment,
		}

		if paid := strings.TrimSpace(m.formPaid); paid != "" {
			amount, err := money.Parse(paid)
			if err != nil {
				return previewMsg{err: err}
			}

			sale.AmountPaid = &amount
		}

		totals, err := receipt.Compute(sale, m.ratesSvc.Table())
		if err != nil {
			return previewMsg{err: err}
		}

		return previewMsg{sale: sale, totals: totals, discount: discount}
	}
}

type saleSavedMsg struct {
	rec *receipt.Receipt
	err error
}

func (m SaleModel) saveCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rec, err := m.receiptSvc.Create(ctx, receipt.CreateParams{
			CustomerName:  m.sale.CustomerName,
			Items:         m.sale.Items,
			CurrencyCode:  m.sale.CurrencyCode,
			CouponCode:    m.sale.CouponCode,
			Discount:      m.sale.Discount,
			TaxRatePct:    m.sale.TaxRatePct,
			PaymentMethod: m.sale.PaymentMethod,
			AmountPaid:    m.sale.AmountPaid,
		})

		return saleSavedMsg{rec: rec, err: err}
	}
}

func (m SaleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == saleStatePreview && msg.Type == tea.KeyEnter {
			return m, m.saveCmd()
		}

	case previewMsg:
		if msg.err != nil {
			var belowMin *coupon.BelowMinimumError

			switch {
			case errors.Is(msg.err, coupon.ErrNotFound):
				m.status = "Coupon not found or inactive."
			case errors.As(msg.err, &belowMin):
				m.status = fmt.Sprintf("Coupon requires a minimum purchase of %s.", belowMin.Minimum)
			default:
				m.status = fmt.Sprintf("Error: %v", msg.err)
			}

			m.state = saleStateDetails
			m.form = m.buildDetailsForm()

			return m, m.form.Init()
		}

		m.sale = msg.sale
		m.totals = msg.totals
		m.discount = msg.discount
		m.preview = document.Render(msg.sale, msg.totals, m.ratesSvc.Table()).Text()
		m.status = ""
		m.state = saleStatePreview

		return m, nil

	case saleSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			m.state = saleStatePreview

			return m, nil
		}

		m.status = fmt.Sprintf("Saved receipt %s.", msg.rec.Number)
		m.state = saleStateDone

		return m, nil
	}

	if m.state != saleStateItem && m.state != saleStateDetails {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == saleStateItem {
		return m.completeItemForm()
	}

	m.state = saleStatePreview

	return m, m.previewCmd()
}

func (m SaleModel) completeItemForm() (tea.Model, tea.Cmd) {
	qty, _ := decimal.NewFromString(strings.TrimSpace(m.formQty))
	price, _ := money.Parse(strings.TrimSpace(m.formPrice))

	m.items = append(m.items, receipt.LineItem{
		Description: strings.TrimSpace(m.formDesc),
		Quantity:    qty,
		UnitPrice:   price,
	})

	if m.addMore {
		m.form = m.buildItemForm()
		return m, m.form.Init()
	}

	m.state = saleStateDetails
	m.form = m.buildDetailsForm()

	return m, m.form.Init()
}

func (m SaleModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case saleStatePreview:
		m.state = saleStateDetails
		m.form = m.buildDetailsForm()

		return m, m.form.Init()
	default:
		return m, Back
	}
}

func (m SaleModel) View() string {
	switch m.state {
	case saleStateItem, saleStateDetails:
		header := "New Sale"
		if len(m.items) > 0 {
			var lines []string
			for _, it := range m.items {
				lines = append(lines, fmt.Sprintf("%s x %s  %s", it.Quantity, it.Description, it.Total()))
			}

			header += "\n\n" + strings.Join(lines, "\n")
		}

		content := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			m.form.View(),
		)
		if m.status != "" {
			content = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(m.status) + "\n" + content
		}

		return lipgloss.NewStyle().Padding(1).Render(content)

	case saleStatePreview:
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Render(m.preview)

		content := panel
		if m.status != "" {
			content = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(m.status) + "\n" + content
		}

		return lipgloss.NewStyle().Padding(1).Render(content + "\n\nEnter: save | Esc: edit")

	case saleStateDone:
		return lipgloss.NewStyle().Padding(2).Render(m.status + "\n\nEsc: back to menu")
	}

	return ""
}
