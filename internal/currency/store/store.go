package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dhruvbhat/kagaz/internal/currency"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListCurrencies(ctx context.Context) ([]currency.Currency, error) {
	query := `SELECT code, symbol, name, rate_to_reference FROM currencies ORDER BY code`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing currencies: %w", err)
	}
	defer rows.Close()

	var out []currency.Currency

	for rows.Next() {
		var (
			c    currency.Currency
			rate string
		)

		if err := rows.Scan(&c.Code, &c.Symbol, &c.Name, &rate); err != nil {
			return nil, fmt.Errorf("scanning currency: %w", err)
		}

		c.RateToReference, err = decimal.NewFromString(rate)
		if err != nil {
			return nil, fmt.Errorf("currency %s: bad rate %q: %w", c.Code, rate, err)
		}

		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating currencies: %w", err)
	}

	return out, nil
}
