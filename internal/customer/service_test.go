package customer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dhruvbhat/kagaz/internal/customer"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := customer.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateCustomer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *customer.Customer) error {
			assert.Equal(t, "Asha Rao", c.Name)
			assert.Equal(t, "98765", c.Phone)
			return nil
		})

	svc := customer.NewService(repo)

	c, err := svc.Create(context.Background(), customer.CreateParams{
		Name:  "  Asha Rao ",
		Phone: "98765",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", c.Name)

	_, err = svc.Create(context.Background(), customer.CreateParams{Name: "   "})
	assert.ErrorIs(t, err, customer.ErrNameRequired)
}

func TestService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := customer.NewMockRepository(ctrl)
	repo.EXPECT().
		SearchCustomers(gomock.Any(), "asha", 10).
		Return([]*customer.Customer{{Name: "Asha Rao"}}, nil)

	svc := customer.NewService(repo)

	got, err := svc.Search(context.Background(), " asha ")
	require.NoError(t, err)
	require.Len(t, got, 1)

	// Blank queries never hit the store.
	got, err = svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_ImportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := customer.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateCustomers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cs []*customer.Customer) error {
			require.Len(t, cs, 2)
			assert.Equal(t, "Asha Rao", cs[0].Name)
			assert.Equal(t, "Vikram Shah", cs[1].Name)
			return nil
		})

	svc := customer.NewService(repo)

	created, err := svc.ImportCSV(context.Background(), []customer.CreateParams{
		{Name: "Asha Rao", Phone: "98765"},
		{Name: "  "}, // skipped
		{Name: "Vikram Shah"},
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)
}

func TestService_ImportCSV_AllRowsNameless(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := customer.NewMockRepository(ctrl)

	svc := customer.NewService(repo)

	created, err := svc.ImportCSV(context.Background(), []customer.CreateParams{{Name: ""}})
	require.NoError(t, err)
	assert.Empty(t, created)
}
