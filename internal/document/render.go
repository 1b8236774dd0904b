package document

import (
	"fmt"

	"github.com/dhruvbhat/kagaz/internal/barcode"
	"github.com/dhruvbhat/kagaz/internal/currency"
	"github.com/dhruvbhat/kagaz/internal/receipt"
)

const walkInCustomer = "Walk-in Customer"

// Render lays out a computed receipt. It never fails: overly long text is
// wrapped or truncated, and an unknown currency code falls back to the code
// itself as the symbol.
func Render(sale receipt.Sale, totals receipt.Totals, rates *currency.Table) Document {
	symbol := symbolFor(rates, sale.CurrencyCode)

	d := Document{
		Width:  Width,
		Bars:   barcode.Generate(sale.Number),
		Number: sale.Number,
	}

	d.header(sale)
	d.divider()
	d.metadata(sale)
	d.divider()
	d.items(sale, symbol)
	d.divider()
	d.totals(sale, totals, symbol)
	d.referenceRow(sale, totals, rates)
	d.divider()
	d.payment(sale, totals, symbol)
	d.footer(sale)

	return d
}

func symbolFor(rates *currency.Table, code string) string {
	c, err := rates.Lookup(code)
	if err != nil {
		return code + " "
	}

	return c.Symbol
}

func (d *Document) add(l Line) {
	d.Lines = append(d.Lines, l)
}

// addText appends a centered or left line, skipping empty text.
func (d *Document) addText(text string, align Align, weight Weight) {
	if text == "" {
		return
	}

	d.add(Line{Text: text, Align: align, Weight: weight})
}

// addSplit appends a two-column row. The right column owns its full width;
// the label is truncated to whatever is left rather than pushing the
// amount out of its column.
func (d *Document) addSplit(left, right string, weight Weight) {
	maxLeft := d.Width - displayWidth(right) - 1
	d.add(Line{
		Split:  true,
		Left:   truncate(left, maxLeft),
		Right:  right,
		Weight: weight,
	})
}

func (d *Document) divider() {
	d.add(Line{Text: "================================", Align: AlignCenter})
}

func (d *Document) thinDivider() {
	d.add(Line{Text: "--------------------------------", Align: AlignCenter})
}

func (d *Document) header(sale receipt.Sale) {
	b := sale.Business

	name := b.Name
	if name == "" {
		name = "BUSINESS"
	}

	d.addText(name, AlignCenter, WeightBold)
	d.addText(b.Address, AlignCenter, WeightNormal)

	if b.Phone != "" {
		d.addText("Tel: "+b.Phone, AlignCenter, WeightNormal)
	}

	if b.TaxID != "" {
		d.addText("GST: "+b.TaxID, AlignCenter, WeightNormal)
	}
}

func (d *Document) metadata(sale receipt.Sale) {
	cashier := sale.Cashier
	if cashier == "" {
		cashier = "-"
	}

	d.addText("Receipt #: "+sale.Number, AlignLeft, WeightNormal)
	d.addText("Date: "+sale.IssuedAt.Format("02/01/2006"), AlignLeft, WeightNormal)
	d.addText("Time: "+sale.IssuedAt.Format("3:04 PM"), AlignLeft, WeightNormal)
	d.addText("Cashier: "+cashier, AlignLeft, WeightNormal)

	if sale.CustomerName != "" && sale.CustomerName != walkInCustomer {
		d.addText("Customer: "+sale.CustomerName, AlignLeft, WeightNormal)
	}
}

func (d *Document) items(sale receipt.Sale, symbol string) {
	d.addText("ITEM", AlignLeft, WeightBold)

	for _, it := range sale.ValidItems() {
		for _, line := range wrap(it.Description, d.Width) {
			d.addText(line, AlignLeft, WeightNormal)
		}

		qty := fmt.Sprintf("  %s x %s", it.Quantity, it.UnitPrice.Format(symbol))
		d.addSplit(qty, it.Total().Format(symbol), WeightNormal)
	}
}

func (d *Document) totals(sale receipt.Sale, totals receipt.Totals, symbol string) {
	d.addSplit("Subtotal:", totals.Subtotal.Format(symbol), WeightNormal)

	if totals.Discount > 0 {
		label := "Discount:"
		if sale.CouponCode != "" {
			label = fmt.Sprintf("Discount (%s):", sale.CouponCode)
		}

		d.addSplit(label, "-"+totals.Discount.Format(symbol), WeightNormal)
	}

	d.addSplit(fmt.Sprintf("Tax (%s%%):", sale.TaxRatePct), totals.Tax.Format(symbol), WeightNormal)
	d.thinDivider()
	d.addSplit("TOTAL:", totals.Total.Format(symbol), WeightBold)
}

func (d *Document) referenceRow(sale receipt.Sale, totals receipt.Totals, rates *currency.Table) {
	if sale.CurrencyCode == rates.ReferenceCode() {
		return
	}

	ref := rates.Reference()
	text := fmt.Sprintf("(%s Equivalent: %s)", ref.Code, totals.TotalReference.Format(ref.Symbol))
	d.addText(text, AlignCenter, WeightNormal)
}

func (d *Document) payment(sale receipt.Sale, totals receipt.Totals, symbol string) {
	if sale.PaymentMethod != "" {
		d.addText("Payment: "+sale.PaymentMethod, AlignLeft, WeightNormal)
	}

	d.addSplit("Paid:", totals.AmountPaid.Format(symbol), WeightNormal)
	// Change was clamped non-negative by the calculator; never re-derived.
	d.addSplit("Change:", totals.Change.Format(symbol), WeightNormal)
}

func (d *Document) footer(sale receipt.Sale) {
	lines := sale.Business.FooterLines()
	if len(lines) == 0 {
		return
	}

	d.divider()

	for _, line := range lines {
		d.addText(line, AlignCenter, WeightNormal)
	}
}
