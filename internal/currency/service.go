package currency

import (
	"context"
	"fmt"
	"sync/atomic"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=currency
type Repository interface {
	ListCurrencies(ctx context.Context) ([]Currency, error)
}

// Service holds the process-wide rate table. The table itself is immutable;
// Refresh builds a replacement and swaps the pointer, so computations that
// already hold a *Table keep reading a consistent snapshot.
type Service struct {
	repo      Repository
	reference string
	table     atomic.Pointer[Table]
}

func NewService(repo Repository, referenceCode string) *Service {
	return &Service{repo: repo, reference: referenceCode}
}

// Load fetches the rate table. Must succeed once at startup before Table
// is used.
func (s *Service) Load(ctx context.Context) error {
	return s.Refresh(ctx)
}

// Refresh rebuilds the table from the repository and atomically replaces
// the one served to subsequent callers.
func (s *Service) Refresh(ctx context.Context) error {
	currencies, err := s.repo.ListCurrencies(ctx)
	if err != nil {
		return fmt.Errorf("listing currencies: %w", err)
	}

	table, err := NewTable(s.reference, currencies)
	if err != nil {
		return fmt.Errorf("building rate table: %w", err)
	}

	s.table.Store(table)

	return nil
}

// Table returns the current immutable rate table snapshot.
func (s *Service) Table() *Table {
	return s.table.Load()
}
