package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dhruvbhat/kagaz/internal/business"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetProfile(ctx context.Context) (business.Profile, error) {
	query := `
		SELECT business_name, address, phone, email, tax_id, website, footer_message
		FROM business_profile
		LIMIT 1
	`

	var p business.Profile

	err := s.db.QueryRowContext(ctx, query).Scan(
		&p.Name, &p.Address, &p.Phone, &p.Email, &p.TaxID, &p.Website, &p.Footer,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return business.Profile{}, business.ErrNotFound
		}

		return business.Profile{}, fmt.Errorf("getting business profile: %w", err)
	}

	return p, nil
}

// SaveProfile upserts the single profile row.
func (s *Store) SaveProfile(ctx context.Context, p business.Profile) error {
	query := `
		INSERT INTO business_profile (id, business_name, address, phone, email, tax_id, website, footer_message)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			tax_id = EXCLUDED.tax_id,
			website = EXCLUDED.website,
			footer_message = EXCLUDED.footer_message
	`

	if _, err := s.db.ExecContext(ctx, query,
		p.Name, p.Address, p.Phone, p.Email, p.TaxID, p.Website, p.Footer,
	); err != nil {
		return fmt.Errorf("saving business profile: %w", err)
	}

	return nil
}
