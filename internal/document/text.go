package document

import "strings"

// Text encodes the document as fixed-width plain text, the form shown in
// the terminal preview and served by the text endpoint.
func (d Document) Text() string {
	var b strings.Builder

	for _, l := range d.Lines {
		b.WriteString(strings.TrimRight(d.formatLine(l), " "))
		b.WriteByte('\n')
	}

	b.WriteString(d.barStrip())
	b.WriteByte('\n')
	b.WriteString(strings.TrimRight(pad("*"+d.Number+"*", d.Width, AlignCenter), " "))
	b.WriteByte('\n')

	return b.String()
}

func (d Document) formatLine(l Line) string {
	if !l.Split {
		return pad(l.Text, d.Width, l.Align)
	}

	gap := d.Width - displayWidth(l.Left) - displayWidth(l.Right)
	if gap < 1 {
		gap = 1
	}

	return l.Left + strings.Repeat(" ", gap) + l.Right
}

// barStrip draws one character per bar cell, truncated to the document
// width. Widths are preserved only by richer media such as the PDF
// exporter; in plain text the strip is purely decorative anyway.
func (d Document) barStrip() string {
	var b strings.Builder

	for _, bar := range d.Bars {
		if bar.Ink {
			b.WriteByte('|')
		} else {
			b.WriteByte(' ')
		}
	}

	return strings.TrimRight(truncate(b.String(), d.Width), " ")
}
