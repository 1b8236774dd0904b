package barcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvbhat/kagaz/internal/barcode"
)

func TestGenerate_Deterministic(t *testing.T) {
	a := barcode.Generate("RCP-20240101-120000")
	b := barcode.Generate("RCP-20240101-120000")

	assert.Equal(t, a, b)
	assert.Len(t, a, 50)
}

func TestGenerate_IgnoresSeparators(t *testing.T) {
	// Dashes and spaces do not contribute to the pattern.
	assert.Equal(t, barcode.Generate("RCP-001"), barcode.Generate("RCP 001"))
}

func TestGenerate_Shape(t *testing.T) {
	bars := barcode.Generate("RCP-20240101-120000")

	for i, bar := range bars {
		assert.Equal(t, i%2 == 0, bar.Ink, "cell %d ink parity", i)
		assert.GreaterOrEqual(t, bar.Width, 1, "cell %d", i)
		assert.LessOrEqual(t, bar.Width, 3, "cell %d", i)
	}

	// First cell derives from 'R' (82): 82 mod 3 + 1 = 2.
	require.Equal(t, 2, bars[0].Width)
}

func TestGenerate_EmptyIdentifierUsesPlaceholder(t *testing.T) {
	bars := barcode.Generate("---")
	require.Len(t, bars, 50)

	// 'A' (65): 65 mod 3 + 1 = 3 for every cell.
	for _, bar := range bars {
		assert.Equal(t, 3, bar.Width)
	}

	assert.Equal(t, bars, barcode.Generate(""))
}
