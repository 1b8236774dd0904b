package document

import (
	"strings"

	"golang.org/x/text/width"
)

// displayWidth counts terminal cells, treating East Asian wide and
// fullwidth runes as two cells. Receipt printers and terminals agree on
// this; byte or rune counts do not.
func displayWidth(s string) int {
	var n int

	for _, r := range s {
		n += runeWidth(r)
	}

	return n
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// truncate cuts s so it fits max display cells.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}

	var (
		b strings.Builder
		n int
	)

	for _, r := range s {
		w := runeWidth(r)
		if n+w > max {
			break
		}

		b.WriteRune(r)
		n += w
	}

	return b.String()
}

// wrap breaks s into lines of at most max display cells, preferring word
// boundaries and hard-breaking words longer than a whole line.
func wrap(s string, max int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var (
		lines []string
		cur   string
	)

	flush := func() {
		if cur != "" {
			lines = append(lines, cur)
			cur = ""
		}
	}

	for _, word := range words {
		for displayWidth(word) > max {
			flush()

			head := truncate(word, max)
			lines = append(lines, head)
			word = word[len(head):]
		}

		switch {
		case cur == "":
			cur = word
		case displayWidth(cur)+1+displayWidth(word) <= max:
			cur += " " + word
		default:
			flush()
			cur = word
		}
	}

	flush()

	return lines
}

// pad returns s aligned within max cells using spaces. Text wider than max
// is returned truncated.
func pad(s string, max int, align Align) string {
	w := displayWidth(s)
	if w >= max {
		return truncate(s, max)
	}

	gap := max - w

	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}
