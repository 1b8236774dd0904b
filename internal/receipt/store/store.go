package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/dhruvbhat/kagaz/internal/money"
	"github.com/dhruvbhat/kagaz/internal/receipt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectReceiptColumns = `
	r.id, r.number, r.customer_id, COALESCE(c.name, ''), r.currency, r.coupon_code,
	r.tax_rate, r.payment_method, r.cashier, r.notes,
	r.subtotal, r.discount, r.tax_amount, r.total, r.amount_paid, r.change_amount, r.total_reference,
	r.created_at
`

func scanReceipt(s scanner) (*receipt.Receipt, error) {
	var (
		r       receipt.Receipt
		taxRate string
		minor   struct{ subtotal, discount, tax, total, paid, change, reference int64 }
	)

	if err := s.Scan(
		&r.ID, &r.Number, &r.CustomerID, &r.CustomerName, &r.CurrencyCode, &r.CouponCode,
		&taxRate, &r.PaymentMethod, &r.Cashier, &r.Notes,
		&minor.subtotal, &minor.discount, &minor.tax, &minor.total, &minor.paid, &minor.change, &minor.reference,
		&r.CreatedAt,
	); err != nil {
		return nil, err
	}

	var err error

	r.TaxRatePct, err = decimal.NewFromString(taxRate)
	if err != nil {
		return nil, fmt.Errorf("receipt %s: bad tax rate %q: %w", r.Number, taxRate, err)
	}

	r.Totals = receipt.Totals{
		Subtotal:       money.Amount(minor.subtotal),
		Discount:       money.Amount(minor.discount),
		Tax:            money.Amount(minor.tax),
		Total:          money.Amount(minor.total),
		AmountPaid:     money.Amount(minor.paid),
		Change:         money.Amount(minor.change),
		TotalReference: money.Amount(minor.reference),
	}

	return &r, nil
}

func (s *Store) CreateReceipt(ctx context.Context, r *receipt.Receipt) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO receipts (
			number, customer_id, currency, coupon_code, tax_rate, payment_method, cashier, notes,
			subtotal, discount, tax_amount, total, amount_paid, change_amount, total_reference,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		RETURNING id, created_at
	`

	err = tx.QueryRowContext(ctx, query,
		r.Number, r.CustomerID, r.CurrencyCode, r.CouponCode,
		r.TaxRatePct.String(), r.PaymentMethod, r.Cashier, r.Notes,
		int64(r.Totals.Subtotal), int64(r.Totals.Discount), int64(r.Totals.Tax),
		int64(r.Totals.Total), int64(r.Totals.AmountPaid), int64(r.Totals.Change),
		int64(r.Totals.TotalReference),
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return receipt.ErrDuplicateNumber
		}

		return fmt.Errorf("creating receipt: %w", err)
	}

	itemQuery := `
		INSERT INTO receipt_items (receipt_id, position, description, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)
	`

	for i, it := range r.Items {
		if _, err := tx.ExecContext(ctx, itemQuery,
			r.ID, i, it.Description, it.Quantity.String(), int64(it.UnitPrice),
		); err != nil {
			return fmt.Errorf("creating receipt item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing receipt: %w", err)
	}

	return nil
}

func (s *Store) GetReceipt(ctx context.Context, id uuid.UUID) (*receipt.Receipt, error) {
	query := `SELECT ` + selectReceiptColumns + `
		FROM receipts r
		LEFT JOIN customers c ON r.customer_id = c.id
		WHERE r.id = $1`

	return s.getOne(ctx, query, id)
}

func (s *Store) GetReceiptByNumber(ctx context.Context, number string) (*receipt.Receipt, error) {
	query := `SELECT ` + selectReceiptColumns + `
		FROM receipts r
		LEFT JOIN customers c ON r.customer_id = c.id
		WHERE r.number = $1`

	return s.getOne(ctx, query, number)
}

func (s *Store) getOne(ctx context.Context, query string, arg any) (*receipt.Receipt, error) {
	r, err := scanReceipt(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, receipt.ErrNotFound
		}

		return nil, fmt.Errorf("getting receipt: %w", err)
	}

	items, err := s.listItems(ctx, r.ID)
	if err != nil {
		return nil, err
	}

	r.Items = items

	return r, nil
}

func (s *Store) listItems(ctx context.Context, receiptID uuid.UUID) ([]receipt.LineItem, error) {
	query := `
		SELECT description, quantity, unit_price
		FROM receipt_items
		WHERE receipt_id = $1
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("listing receipt items: %w", err)
	}
	defer rows.Close()

	var items []receipt.LineItem

	for rows.Next() {
		var (
			it    receipt.LineItem
			qty   string
			price int64
		)

		if err := rows.Scan(&it.Description, &qty, &price); err != nil {
			return nil, fmt.Errorf("scanning receipt item: %w", err)
		}

		it.Quantity, err = decimal.NewFromString(qty)
		if err != nil {
			return nil, fmt.Errorf("receipt item: bad quantity %q: %w", qty, err)
		}

		it.UnitPrice = money.Amount(price)
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating receipt items: %w", err)
	}

	return items, nil
}

func (s *Store) ListRecent(ctx context.Context, limit int) ([]*receipt.Receipt, error) {
	query := `SELECT ` + selectReceiptColumns + `
		FROM receipts r
		LEFT JOIN customers c ON r.customer_id = c.id
		ORDER BY r.created_at DESC
		LIMIT $1`

	return s.list(ctx, query, limit)
}

func (s *Store) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*receipt.Receipt, error) {
	query := `SELECT ` + selectReceiptColumns + `
		FROM receipts r
		LEFT JOIN customers c ON r.customer_id = c.id
		WHERE r.customer_id = $1
		ORDER BY r.created_at DESC`

	return s.list(ctx, query, customerID)
}

// list returns receipt summaries without their line items; callers that
// need items fetch a single receipt.
func (s *Store) list(ctx context.Context, query string, arg any) ([]*receipt.Receipt, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("listing receipts: %w", err)
	}
	defer rows.Close()

	var out []*receipt.Receipt

	for rows.Next() {
		r, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning receipt: %w", err)
		}

		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating receipts: %w", err)
	}

	return out, nil
}
