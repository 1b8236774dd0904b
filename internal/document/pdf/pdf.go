// Package pdf serializes a rendered receipt document into an 80mm-style
// PDF. It is a pure consumer of document.Document; all layout decisions
// (ordering, wrapping, truncation) were already made by the renderer.
package pdf

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/dhruvbhat/kagaz/internal/document"
)

const (
	pageWidth  = 80.0 // mm, thermal receipt paper
	pageHeight = 220.0

	rowHeight     = 4.0
	boldRowHeight = 5.0
)

// Encode renders the document into PDF bytes.
func Encode(d document.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithDimensions(pageWidth, pageHeight).
		WithLeftMargin(6).
		WithTopMargin(8).
		WithRightMargin(6).
		WithDefaultFont(&props.Font{Family: fontfamily.Courier}).
		Build()

	m := maroto.New(cfg)

	for _, l := range d.Lines {
		addLine(m, l)
	}

	addBarcode(m, d)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func addLine(m core.Maroto, l document.Line) {
	if l.Split {
		m.AddRow(rowHeightFor(l.Weight),
			col.New(7).Add(text.New(l.Left, textProps(l.Weight, align.Left))),
			col.New(5).Add(text.New(l.Right, textProps(l.Weight, align.Right))),
		)

		return
	}

	m.AddRow(rowHeightFor(l.Weight),
		col.New(12).Add(text.New(l.Text, textProps(l.Weight, alignFor(l.Align)))),
	)
}

// addBarcode draws the cosmetic bar strip, one character per cell, with
// the human-readable number beneath it.
func addBarcode(m core.Maroto, d document.Document) {
	var strip strings.Builder

	for _, bar := range d.Bars {
		if bar.Ink {
			strip.WriteByte('|')
		} else {
			strip.WriteByte(' ')
		}
	}

	m.AddRow(rowHeight+2,
		col.New(12).Add(text.New(strip.String(), props.Text{
			Size:  5,
			Top:   2,
			Align: align.Center,
		})),
	)
	m.AddRow(rowHeight,
		col.New(12).Add(text.New("*"+d.Number+"*", props.Text{
			Size:  8,
			Align: align.Center,
		})),
	)
}

func rowHeightFor(w document.Weight) float64 {
	if w == document.WeightBold {
		return boldRowHeight
	}

	return rowHeight
}

func textProps(w document.Weight, a align.Type) props.Text {
	p := props.Text{Size: 8, Align: a}
	if w == document.WeightBold {
		p.Size = 10
		p.Style = fontstyle.Bold
	}

	return p
}

func alignFor(a document.Align) align.Type {
	switch a {
	case document.AlignCenter:
		return align.Center
	case document.AlignRight:
		return align.Right
	default:
		return align.Left
	}
}
