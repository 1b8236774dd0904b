package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvbhat/kagaz/internal/money"
)

func TestNew(t *testing.T) {
	a, err := money.New(1250)
	require.NoError(t, err)
	assert.Equal(t, "12.50", a.String())

	_, err = money.New(-1)
	assert.ErrorIs(t, err, money.ErrInvalidAmount)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr error
	}{
		{name: "Plain", in: "12.50", want: 1250},
		{name: "Whole", in: "5", want: 500},
		{name: "Zero", in: "0", want: 0},
		{name: "RoundsHalfUp", in: "0.005", want: 1},
		{name: "RoundsDown", in: "0.004", want: 0},
		{name: "Whitespace", in: " 3.10 ", want: 310},
		{name: "Negative", in: "-1.00", wantErr: money.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := money.Parse(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, money.Amount(tt.want), a)
		})
	}

	_, err := money.Parse("not-a-number")
	assert.Error(t, err)
}

func TestAmount_MulQuantity(t *testing.T) {
	price, err := money.Parse("3.50")
	require.NoError(t, err)

	got := price.MulQuantity(decimal.NewFromInt(2))
	assert.Equal(t, "7.00", got.String())

	// Fractional quantity rounds half-up at the final two digits.
	got = price.MulQuantity(decimal.RequireFromString("0.333"))
	assert.Equal(t, "1.17", got.String()) // 1.1655 -> 1.17
}

func TestAmount_Percent(t *testing.T) {
	base, err := money.Parse("11.00")
	require.NoError(t, err)

	got := base.Percent(decimal.NewFromInt(18))
	assert.Equal(t, "1.98", got.String())

	// 10.05 * 5% = 0.5025 -> 0.50 (exact half rounds the third digit up:
	// 0.5025 has a 2 in the half position, so it stays down).
	base, err = money.Parse("10.05")
	require.NoError(t, err)
	assert.Equal(t, "0.50", base.Percent(decimal.NewFromInt(5)).String())

	// 0.50 * 1% = 0.005 -> rounds half-up to 0.01.
	base, err = money.Parse("0.50")
	require.NoError(t, err)
	assert.Equal(t, "0.01", base.Percent(decimal.NewFromInt(1)).String())
}

func TestAmount_Sub_ClampsAtZero(t *testing.T) {
	a, _ := money.New(500)
	b, _ := money.New(2000)

	assert.Equal(t, money.Amount(0), a.Sub(b))
	assert.Equal(t, money.Amount(1500), b.Sub(a))
}

func TestAmount_Format(t *testing.T) {
	a, _ := money.New(12098)
	assert.Equal(t, "₹120.98", a.Format("₹"))
	assert.Equal(t, "$120.98", a.Format("$"))
}
