package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Wednesday 2024-05-15 10:30 UTC.
	now := time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)

	repo := NewMockRepository(ctrl)
	repo.EXPECT().CountCustomers(gomock.Any()).Return(42, nil)
	repo.EXPECT().CountReceipts(gomock.Any()).Return(120, nil)

	sums := map[time.Time]int64{
		{}: 500000,
		time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC): 1200,  // today
		time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC): 4300,  // Monday of this week
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC):  20000, // this month
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC):  90000, // this year
	}
	repo.EXPECT().
		SumSales(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, since time.Time) (int64, error) {
			sum, ok := sums[since]
			require.True(t, ok, "unexpected window start %v", since)
			return sum, nil
		}).
		Times(5)

	repo.EXPECT().TopCustomers(gomock.Any(), 10).Return([]TopCustomer{{Name: "Asha Rao"}}, nil)
	repo.EXPECT().SalesByPayment(gomock.Any()).Return(nil, nil)
	repo.EXPECT().SalesByCurrency(gomock.Any()).Return(nil, nil)
	repo.EXPECT().RecentReceipts(gomock.Any(), 10).Return(nil, nil)
	repo.EXPECT().
		SalesSeries(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]SeriesPoint{}, nil).
		Times(4)

	svc := NewService(repo)
	svc.now = func() time.Time { return now }

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 42, stats.TotalCustomers)
	assert.Equal(t, 120, stats.TotalReceipts)
	assert.Equal(t, "5000.00", stats.TotalSales.String())
	assert.Equal(t, "12.00", stats.TodaySales.String())
	assert.Equal(t, "43.00", stats.WeekSales.String())
	assert.Equal(t, "200.00", stats.MonthSales.String())
	assert.Equal(t, "900.00", stats.YearSales.String())
	require.Len(t, stats.TopCustomers, 1)
	assert.Equal(t, "Asha Rao", stats.TopCustomers[0].Name)
}

func TestService_Stats_SundayWeekStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Sunday belongs to the week that started the previous Monday.
	now := time.Date(2024, 5, 19, 23, 0, 0, 0, time.UTC)

	repo := NewMockRepository(ctrl)
	repo.EXPECT().CountCustomers(gomock.Any()).Return(0, nil)
	repo.EXPECT().CountReceipts(gomock.Any()).Return(0, nil)

	var weekStart time.Time
	repo.EXPECT().
		SumSales(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, since time.Time) (int64, error) {
			if since.Equal(time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC)) {
				weekStart = since
			}
			return 0, nil
		}).
		Times(5)

	repo.EXPECT().TopCustomers(gomock.Any(), 10).Return(nil, nil)
	repo.EXPECT().SalesByPayment(gomock.Any()).Return(nil, nil)
	repo.EXPECT().SalesByCurrency(gomock.Any()).Return(nil, nil)
	repo.EXPECT().RecentReceipts(gomock.Any(), 10).Return(nil, nil)
	repo.EXPECT().SalesSeries(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(4)

	svc := NewService(repo)
	svc.now = func() time.Time { return now }

	_, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.False(t, weekStart.IsZero(), "week window should start on Monday the 13th")
}
