package dashboard

import (
	"context"
	"fmt"
	"time"
)

// Granularity selects the bucket size of a sales series.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=dashboard
type Repository interface {
	CountCustomers(ctx context.Context) (int, error)
	CountReceipts(ctx context.Context) (int, error)
	SumSales(ctx context.Context, since time.Time) (int64, error)
	TopCustomers(ctx context.Context, limit int) ([]TopCustomer, error)
	SalesByPayment(ctx context.Context) ([]PaymentBucket, error)
	SalesByCurrency(ctx context.Context) ([]CurrencyBucket, error)
	RecentReceipts(ctx context.Context, limit int) ([]RecentReceipt, error)
	SalesSeries(ctx context.Context, granularity Granularity, since time.Time) ([]SeriesPoint, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Stats assembles the whole dashboard in one call. The week boundary is
// Monday, matching how receipts were grouped historically.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	now := s.now()
	stats := &Stats{}

	var err error

	if stats.TotalCustomers, err = s.repo.CountCustomers(ctx); err != nil {
		return nil, fmt.Errorf("counting customers: %w", err)
	}

	if stats.TotalReceipts, err = s.repo.CountReceipts(ctx); err != nil {
		return nil, fmt.Errorf("counting receipts: %w", err)
	}

	sums := []struct {
		dest  *int64
		since time.Time
	}{
		{(*int64)(&stats.TotalSales), time.Time{}},
		{(*int64)(&stats.TodaySales), startOfDay(now)},
		{(*int64)(&stats.WeekSales), startOfWeek(now)},
		{(*int64)(&stats.MonthSales), startOfMonth(now)},
		{(*int64)(&stats.YearSales), startOfYear(now)},
	}
	for _, sum := range sums {
		if *sum.dest, err = s.repo.SumSales(ctx, sum.since); err != nil {
			return nil, fmt.Errorf("summing sales: %w", err)
		}
	}

	if stats.TopCustomers, err = s.repo.TopCustomers(ctx, 10); err != nil {
		return nil, fmt.Errorf("ranking customers: %w", err)
	}

	if stats.SalesByPayment, err = s.repo.SalesByPayment(ctx); err != nil {
		return nil, fmt.Errorf("grouping by payment method: %w", err)
	}

	if stats.SalesByCurrency, err = s.repo.SalesByCurrency(ctx); err != nil {
		return nil, fmt.Errorf("grouping by currency: %w", err)
	}

	if stats.RecentReceipts, err = s.repo.RecentReceipts(ctx, 10); err != nil {
		return nil, fmt.Errorf("listing recent receipts: %w", err)
	}

	series := []struct {
		dest        *[]SeriesPoint
		granularity Granularity
		since       time.Time
	}{
		{&stats.DailySales, GranularityDay, startOfDay(now).AddDate(0, 0, -7)},
		{&stats.WeeklySales, GranularityWeek, startOfDay(now).AddDate(0, 0, -12*7)},
		{&stats.MonthlySales, GranularityMonth, startOfDay(now).AddDate(0, -12, 0)},
		{&stats.YearlySales, GranularityYear, time.Time{}},
	}
	for _, sp := range series {
		if *sp.dest, err = s.repo.SalesSeries(ctx, sp.granularity, sp.since); err != nil {
			return nil, fmt.Errorf("building %s series: %w", sp.granularity, err)
		}
	}

	return stats, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)

	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}

	return day.AddDate(0, 0, -offset)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
}
