package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dhruvbhat/kagaz/internal/dashboard"
	"github.com/dhruvbhat/kagaz/internal/money"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CountCustomers(ctx context.Context) (int, error) {
	var n int

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting customers: %w", err)
	}

	return n, nil
}

func (s *Store) CountReceipts(ctx context.Context) (int, error) {
	var n int

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM receipts`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting receipts: %w", err)
	}

	return n, nil
}

// SumSales totals total_reference over receipts issued at or after since.
// A zero since means all time.
func (s *Store) SumSales(ctx context.Context, since time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(total_reference), 0) FROM receipts`

	var (
		row *sql.Row
		sum int64
	)

	if since.IsZero() {
		row = s.db.QueryRowContext(ctx, query)
	} else {
		row = s.db.QueryRowContext(ctx, query+` WHERE created_at >= $1`, since)
	}

	if err := row.Scan(&sum); err != nil {
		return 0, fmt.Errorf("summing sales: %w", err)
	}

	return sum, nil
}

func (s *Store) TopCustomers(ctx context.Context, limit int) ([]dashboard.TopCustomer, error) {
	query := `
		SELECT c.id, c.name, c.phone, c.email,
		       COUNT(r.id), COALESCE(SUM(r.total_reference), 0)
		FROM customers c
		INNER JOIN receipts r ON r.customer_id = c.id
		GROUP BY c.id, c.name, c.phone, c.email
		ORDER BY COALESCE(SUM(r.total_reference), 0) DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ranking customers: %w", err)
	}
	defer rows.Close()

	var out []dashboard.TopCustomer

	for rows.Next() {
		var (
			tc    dashboard.TopCustomer
			spent int64
		)

		if err := rows.Scan(&tc.ID, &tc.Name, &tc.Phone, &tc.Email, &tc.ReceiptCount, &spent); err != nil {
			return nil, fmt.Errorf("scanning top customer: %w", err)
		}

		tc.TotalSpent = money.Amount(spent)
		out = append(out, tc)
	}

	return out, rows.Err()
}

func (s *Store) SalesByPayment(ctx context.Context) ([]dashboard.PaymentBucket, error) {
	query := `
		SELECT payment_method, COUNT(*), COALESCE(SUM(total_reference), 0)
		FROM receipts
		GROUP BY payment_method
		ORDER BY COALESCE(SUM(total_reference), 0) DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("grouping by payment method: %w", err)
	}
	defer rows.Close()

	var out []dashboard.PaymentBucket

	for rows.Next() {
		var (
			b     dashboard.PaymentBucket
			total int64
		)

		if err := rows.Scan(&b.PaymentMethod, &b.Count, &total); err != nil {
			return nil, fmt.Errorf("scanning payment bucket: %w", err)
		}

		b.Total = money.Amount(total)
		out = append(out, b)
	}

	return out, rows.Err()
}

func (s *Store) SalesByCurrency(ctx context.Context) ([]dashboard.CurrencyBucket, error) {
	query := `
		SELECT r.currency, COALESCE(cur.symbol, ''), COALESCE(cur.name, ''),
		       COUNT(*), COALESCE(SUM(r.total), 0), COALESCE(SUM(r.total_reference), 0)
		FROM receipts r
		LEFT JOIN currencies cur ON cur.code = r.currency
		GROUP BY r.currency, cur.symbol, cur.name
		ORDER BY COALESCE(SUM(r.total_reference), 0) DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("grouping by currency: %w", err)
	}
	defer rows.Close()

	var out []dashboard.CurrencyBucket

	for rows.Next() {
		var (
			b                 dashboard.CurrencyBucket
			original, overall int64
		)

		if err := rows.Scan(&b.CurrencyCode, &b.Symbol, &b.CurrencyName, &b.Count, &original, &overall); err != nil {
			return nil, fmt.Errorf("scanning currency bucket: %w", err)
		}

		b.TotalOriginal = money.Amount(original)
		b.Total = money.Amount(overall)
		out = append(out, b)
	}

	return out, rows.Err()
}

func (s *Store) RecentReceipts(ctx context.Context, limit int) ([]dashboard.RecentReceipt, error) {
	query := `
		SELECT r.id, r.number, r.total, r.currency, COALESCE(cur.symbol, ''),
		       r.total_reference, COALESCE(c.name, ''), r.created_at
		FROM receipts r
		LEFT JOIN customers c ON c.id = r.customer_id
		LEFT JOIN currencies cur ON cur.code = r.currency
		ORDER BY r.created_at DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent receipts: %w", err)
	}
	defer rows.Close()

	var out []dashboard.RecentReceipt

	for rows.Next() {
		var (
			rr               dashboard.RecentReceipt
			total, reference int64
		)

		if err := rows.Scan(
			&rr.ID, &rr.Number, &total, &rr.CurrencyCode, &rr.CurrencySymbol,
			&reference, &rr.CustomerName, &rr.IssuedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning recent receipt: %w", err)
		}

		rr.Total = money.Amount(total)
		rr.TotalReference = money.Amount(reference)
		out = append(out, rr)
	}

	return out, rows.Err()
}

// seriesFormats maps a granularity to the to_char pattern producing the
// bucket label.
var seriesFormats = map[dashboard.Granularity]string{
	dashboard.GranularityDay:   "YYYY-MM-DD",
	dashboard.GranularityWeek:  "IYYY-IW",
	dashboard.GranularityMonth: "YYYY-MM",
	dashboard.GranularityYear:  "YYYY",
}

func (s *Store) SalesSeries(ctx context.Context, granularity dashboard.Granularity, since time.Time) ([]dashboard.SeriesPoint, error) {
	format, ok := seriesFormats[granularity]
	if !ok {
		return nil, fmt.Errorf("unknown granularity %q", granularity)
	}

	query := `
		SELECT to_char(created_at, '` + format + `'), COUNT(*), COALESCE(SUM(total_reference), 0)
		FROM receipts
		WHERE created_at >= $1
		GROUP BY 1
		ORDER BY 1
	`

	if since.IsZero() {
		since = time.Unix(0, 0)
	}

	rows, err := s.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("building %s series: %w", granularity, err)
	}
	defer rows.Close()

	var out []dashboard.SeriesPoint

	for rows.Next() {
		var (
			p     dashboard.SeriesPoint
			total int64
		)

		if err := rows.Scan(&p.Period, &p.ReceiptCount, &total); err != nil {
			return nil, fmt.Errorf("scanning series point: %w", err)
		}

		p.TotalSales = money.Amount(total)
		out = append(out, p)
	}

	return out, rows.Err()
}
