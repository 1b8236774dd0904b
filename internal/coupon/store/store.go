package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dhruvbhat/kagaz/internal/coupon"
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

func scanCoupon(s scanner) (*coupon.Coupon, error) {
	var (
		c        coupon.Coupon
		typeStr  string
		value    string
		minMinor int64
	)

	if err := s.Scan(&c.ID, &c.Code, &typeStr, &value, &minMinor, &c.Active, &c.CreatedAt); err != nil {
		return nil, err
	}

	c.Type = coupon.Type(typeStr)
	c.MinPurchase = money.Amount(minMinor)

	var err error

	c.DiscountValue, err = decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("coupon %s: bad discount value %q: %w", c.Code, value, err)
	}

	return &c, nil
}

const selectCouponColumns = `id, code, discount_type, discount_value, min_purchase, active, created_at`

func (s *Store) FindActiveByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	query := `SELECT ` + selectCouponColumns + ` FROM coupons WHERE code = $1 AND active = TRUE`

	c, err := scanCoupon(s.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, coupon.ErrNotFound
		}

		return nil, fmt.Errorf("finding coupon: %w", err)
	}

	return c, nil
}

func (s *Store) ListActive(ctx context.Context) ([]*coupon.Coupon, error) {
	query := `SELECT ` + selectCouponColumns + ` FROM coupons WHERE active = TRUE ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing coupons: %w", err)
	}
	defer rows.Close()

	var out []*coupon.Coupon

	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning coupon: %w", err)
		}

		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating coupons: %w", err)
	}

	return out, nil
}

func (s *Store) CreateCoupon(ctx context.Context, c *coupon.Coupon) error {
	query := `
		INSERT INTO coupons (code, discount_type, discount_value, min_purchase, active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Code,
		string(c.Type),
		c.DiscountValue.String(),
		int64(c.MinPurchase),
		c.Active,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating coupon: %w", err)
	}

	return nil
}

func (s *Store) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM coupons WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting coupon: %w", err)
	}

	return nil
}
