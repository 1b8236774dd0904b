// Package document lays out a receipt as a fixed-width sequence of styled
// text lines. The layout is medium-agnostic: the plain-text encoder and the
// PDF exporter both consume the same Document, so preview and print can
// never drift apart.
package document

import "github.com/dhruvbhat/kagaz/internal/barcode"

// Width is the character width of the output medium, the usual 80mm
// thermal-paper budget.
const Width = 32

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type Weight int

const (
	WeightNormal Weight = iota
	WeightBold
)

// Line is one printable row. Split rows carry a left label and a
// right-aligned amount instead of Text.
type Line struct {
	Text   string
	Align  Align
	Weight Weight
	Split  bool
	Left   string
	Right  string
}

// Document is the rendered receipt: ordered lines plus the bar pattern and
// the human-readable number printed beneath it.
type Document struct {
	Width  int
	Lines  []Line
	Bars   []barcode.Bar
	Number string
}
