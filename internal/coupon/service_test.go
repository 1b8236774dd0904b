package coupon_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dhruvbhat/kagaz/internal/coupon"
	"github.com/dhruvbhat/kagaz/internal/money"
)

func TestService_Redeem(t *testing.T) {
	type testCase struct {
		name      string
		code      string
		purchase  string
		setupMock func(m *coupon.MockRepository)
		want      string
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "NormalizesCodeToUppercase",
			code:     "  save10 ",
			purchase: "250.00",
			setupMock: func(m *coupon.MockRepository) {
				m.EXPECT().
					FindActiveByCode(gomock.Any(), "SAVE10").
					Return(&coupon.Coupon{
						Code:          "SAVE10",
						Type:          coupon.TypePercentage,
						DiscountValue: decimal.NewFromInt(10),
					}, nil)
			},
			want: "25.00",
		},
		{
			name:      "EmptyCode",
			code:      "   ",
			purchase:  "10.00",
			setupMock: func(m *coupon.MockRepository) {},
			wantErr:   coupon.ErrNotFound,
		},
		{
			name:     "UnknownCode",
			code:     "NOPE",
			purchase: "10.00",
			setupMock: func(m *coupon.MockRepository) {
				m.EXPECT().
					FindActiveByCode(gomock.Any(), "NOPE").
					Return(nil, coupon.ErrNotFound)
			},
			wantErr: coupon.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := coupon.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := coupon.NewService(repo)

			discount, _, err := svc.Redeem(context.Background(), tt.code, amount(t, tt.purchase))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, discount.String())
		})
	}
}

func TestService_Redeem_BelowMinimum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := coupon.NewMockRepository(ctrl)
	repo.EXPECT().
		FindActiveByCode(gomock.Any(), "BIG").
		Return(&coupon.Coupon{
			Code:          "BIG",
			Type:          coupon.TypeFixed,
			DiscountValue: decimal.NewFromInt(30),
			MinPurchase:   money.Amount(50000),
		}, nil)

	svc := coupon.NewService(repo)

	_, _, err := svc.Redeem(context.Background(), "BIG", amount(t, "100.00"))

	var belowMin *coupon.BelowMinimumError
	require.ErrorAs(t, err, &belowMin)
	assert.Equal(t, "500.00", belowMin.Minimum.String())
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := coupon.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateCoupon(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *coupon.Coupon) error {
			assert.Equal(t, "WELCOME", c.Code)
			assert.True(t, c.Active)
			return nil
		})

	svc := coupon.NewService(repo)

	c, err := svc.Create(context.Background(), coupon.CreateParams{
		Code:          "welcome",
		Type:          coupon.TypePercentage,
		DiscountValue: "10",
	})
	require.NoError(t, err)
	assert.Equal(t, "WELCOME", c.Code)

	_, err = svc.Create(context.Background(), coupon.CreateParams{
		Code:          "BAD",
		Type:          coupon.Type("HALF"),
		DiscountValue: "10",
	})
	assert.Error(t, err)
}
