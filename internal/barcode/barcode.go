// Package barcode derives a decorative bar pattern from a receipt number.
//
// The pattern is cosmetic, not a scannable symbology: the human-readable
// number printed beneath the bars is the actual downstream lookup key. The
// scheme is deterministic so reprints of the same receipt look identical.
package barcode

import "strings"

// cellCount is the fixed number of bar cells per pattern.
const cellCount = 50

// placeholder feeds the width derivation when the identifier has no
// alphanumeric characters at all.
const placeholder = 'A'

// Bar is one cell of the pattern: Width units of either ink or gap.
type Bar struct {
	Width int
	Ink   bool
}

// Generate builds the bar pattern for an identifier. Non-alphanumeric
// characters are ignored; cell widths cycle through the remaining
// characters, width = charcode mod 3 + 1, ink on even cells.
func Generate(identifier string) []Bar {
	stripped := strip(identifier)
	if stripped == "" {
		stripped = string(placeholder)
	}

	bars := make([]Bar, cellCount)
	for i := range bars {
		c := stripped[i%len(stripped)]
		bars[i] = Bar{
			Width: int(c)%3 + 1,
			Ink:   i%2 == 0,
		}
	}

	return bars
}

func strip(s string) string {
	var b strings.Builder

	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}
