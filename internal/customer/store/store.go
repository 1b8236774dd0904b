package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dhruvbhat/kagaz/internal/customer"
	"github.com/dhruvbhat/kagaz/internal/money"
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

const selectCustomerColumns = `
	c.id, c.name, c.phone, c.email, c.address, c.created_at, c.updated_at,
	COUNT(r.id) AS total_receipts,
	COALESCE(SUM(r.total_reference), 0) AS total_sales
`

const customerGroupBy = ` GROUP BY c.id, c.name, c.phone, c.email, c.address, c.created_at, c.updated_at`

func scanCustomer(s scanner) (*customer.Customer, error) {
	var (
		c     customer.Customer
		sales int64
	)

	if err := s.Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt, &c.UpdatedAt,
		&c.TotalReceipts, &sales,
	); err != nil {
		return nil, err
	}

	c.TotalSales = money.Amount(sales)

	return &c, nil
}

func (s *Store) CreateCustomer(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (name, phone, email, address, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, c.Name, c.Phone, c.Email, c.Address).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating customer: %w", err)
	}

	return nil
}

func (s *Store) CreateCustomers(ctx context.Context, cs []*customer.Customer) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO customers (name, phone, email, address, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	for _, c := range cs {
		if err := tx.QueryRowContext(ctx, query, c.Name, c.Phone, c.Email, c.Address).
			Scan(&c.ID, &c.CreatedAt); err != nil {
			return fmt.Errorf("creating customer %q: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing customers: %w", err)
	}

	return nil
}

func (s *Store) GetCustomer(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + `
		FROM customers c
		LEFT JOIN receipts r ON r.customer_id = c.id
		WHERE c.id = $1` + customerGroupBy

	c, err := scanCustomer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, customer.ErrNotFound
		}

		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return c, nil
}

func (s *Store) UpdateCustomer(ctx context.Context, c *customer.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, phone = $2, email = $3, address = $4, updated_at = NOW()
		WHERE id = $5
	`

	res, err := s.db.ExecContext(ctx, query, c.Name, c.Phone, c.Email, c.Address, c.ID)
	if err != nil {
		return fmt.Errorf("updating customer: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return customer.ErrNotFound
	}

	return nil
}

func (s *Store) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + `
		FROM customers c
		LEFT JOIN receipts r ON r.customer_id = c.id` +
		customerGroupBy + `
		ORDER BY c.name`

	return s.list(ctx, query)
}

func (s *Store) SearchCustomers(ctx context.Context, q string, limit int) ([]*customer.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + `
		FROM customers c
		LEFT JOIN receipts r ON r.customer_id = c.id
		WHERE c.name ILIKE $1 OR c.phone ILIKE $1 OR c.email ILIKE $1` +
		customerGroupBy + `
		ORDER BY c.name
		LIMIT $2`

	return s.list(ctx, query, "%"+q+"%", limit)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*customer.Customer, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var out []*customer.Customer

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}

		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customers: %w", err)
	}

	return out, nil
}
