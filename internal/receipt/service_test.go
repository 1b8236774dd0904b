package receipt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dhruvbhat/kagaz/internal/currency"
	"github.com/dhruvbhat/kagaz/internal/receipt"
)

func ratesService(t *testing.T, ctrl *gomock.Controller) *currency.Service {
	t.Helper()

	repo := currency.NewMockRepository(ctrl)
	repo.EXPECT().ListCurrencies(gomock.Any()).Return([]currency.Currency{
		{Code: "INR", Symbol: "₹", Name: "Indian Rupee", RateToReference: qty("1")},
		{Code: "USD", Symbol: "$", Name: "US Dollar", RateToReference: qty("83.0")},
	}, nil)

	svc := currency.NewService(repo, "INR")
	require.NoError(t, svc.Load(context.Background()))

	return svc
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rates := ratesService(t, ctrl)

	repo := receipt.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *receipt.Receipt) error {
			r.ID = uuid.New()
			return nil
		})

	svc := receipt.NewService(repo, rates)

	got, err := svc.Create(context.Background(), receipt.CreateParams{
		Items: []receipt.LineItem{
			item(t, "Coffee", "2", "3.50"),
			item(t, "", "1", "99.00"), // blank row, must be dropped
		},
		CurrencyCode:  "USD",
		TaxRatePct:    decimal.NewFromInt(18),
		PaymentMethod: "Cash",
		Cashier:       "Asha",
	})
	require.NoError(t, err)

	// Totals are recomputed server-side, blank rows filtered out.
	assert.Len(t, got.Items, 1)
	assert.Equal(t, "7.00", got.Totals.Subtotal.String())
	assert.Equal(t, "8.26", got.Totals.Total.String())
	assert.Equal(t, "685.58", got.Totals.TotalReference.String())
	assert.NotEmpty(t, got.Number)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestService_Create_EmptySale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := receipt.NewService(receipt.NewMockRepository(ctrl), ratesService(t, ctrl))

	_, err := svc.Create(context.Background(), receipt.CreateParams{
		CurrencyCode: "INR",
	})
	assert.ErrorIs(t, err, receipt.ErrEmptySale)
}

func TestService_Create_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := receipt.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateReceipt(gomock.Any(), gomock.Any()).
		Return(errors.New("db down"))

	svc := receipt.NewService(repo, ratesService(t, ctrl))

	_, err := svc.Create(context.Background(), receipt.CreateParams{
		Items:        []receipt.LineItem{item(t, "Tea", "1", "2.00")},
		CurrencyCode: "INR",
	})
	assert.Error(t, err)
}

func TestService_GetByNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := receipt.NewMockRepository(ctrl)
	repo.EXPECT().
		GetReceiptByNumber(gomock.Any(), "RCP-20240101-120000").
		Return(nil, receipt.ErrNotFound)

	svc := receipt.NewService(repo, ratesService(t, ctrl))

	_, err := svc.GetByNumber(context.Background(), "RCP-20240101-120000")
	assert.ErrorIs(t, err, receipt.ErrNotFound)
}
