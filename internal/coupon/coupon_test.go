package coupon_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvbhat/kagaz/internal/coupon"
	"github.com/dhruvbhat/kagaz/internal/money"
)

func amount(t *testing.T, s string) money.Amount {
	t.Helper()

	a, err := money.Parse(s)
	require.NoError(t, err)

	return a
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		c        coupon.Coupon
		purchase string
		want     string
		wantMin  string
	}{
		{
			name: "PercentageTen",
			c: coupon.Coupon{
				Code:          "SAVE10",
				Type:          coupon.TypePercentage,
				DiscountValue: decimal.NewFromInt(10),
			},
			purchase: "250.00",
			want:     "25.00",
		},
		{
			name: "FixedIgnoresAmount",
			c: coupon.Coupon{
				Code:          "FLAT30",
				Type:          coupon.TypeFixed,
				DiscountValue: decimal.NewFromInt(30),
			},
			purchase: "9.00",
			want:     "30.00",
		},
		{
			name: "PercentageRoundsHalfUp",
			c: coupon.Coupon{
				Code:          "SAVE15",
				Type:          coupon.TypePercentage,
				DiscountValue: decimal.NewFromInt(15),
			},
			purchase: "0.10", // 0.015 -> 0.02
			want:     "0.02",
		},
		{
			name: "BelowMinimum",
			c: coupon.Coupon{
				Code:          "BIG",
				Type:          coupon.TypePercentage,
				DiscountValue: decimal.NewFromInt(20),
				MinPurchase:   money.Amount(50000),
			},
			purchase: "100.00",
			wantMin:  "500.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coupon.Validate(tt.c, amount(t, tt.purchase))
			if tt.wantMin != "" {
				var belowMin *coupon.BelowMinimumError
				require.ErrorAs(t, err, &belowMin)
				assert.Equal(t, tt.wantMin, belowMin.Minimum.String())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestValidate_DiscountNotCapped(t *testing.T) {
	// The validator reports the raw discount even when it exceeds the
	// purchase; the totals calculator clamps it.
	c := coupon.Coupon{Code: "FLAT50", Type: coupon.TypeFixed, DiscountValue: decimal.NewFromInt(50)}

	got, err := coupon.Validate(c, amount(t, "10.00"))
	require.NoError(t, err)
	assert.Equal(t, "50.00", got.String())
}
