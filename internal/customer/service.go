package customer

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a customer does not exist.
var ErrNotFound = errors.New("customer: not found")

// ErrNameRequired is returned when a customer has no name.
var ErrNameRequired = errors.New("customer: name is required")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=customer
type Repository interface {
	CreateCustomer(ctx context.Context, c *Customer) error
	CreateCustomers(ctx context.Context, cs []*Customer) error
	GetCustomer(ctx context.Context, id uuid.UUID) (*Customer, error)
	UpdateCustomer(ctx context.Context, c *Customer) error
	ListCustomers(ctx context.Context) ([]*Customer, error)
	SearchCustomers(ctx context.Context, query string, limit int) ([]*Customer, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Customer, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	c := &Customer{
		Name:    name,
		Phone:   strings.TrimSpace(params.Phone),
		Email:   strings.TrimSpace(params.Email),
		Address: strings.TrimSpace(params.Address),
	}
	if err := s.repo.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return s.repo.GetCustomer(ctx, id)
}

func (s *Service) Update(ctx context.Context, c *Customer) error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}

	return s.repo.UpdateCustomer(ctx, c)
}

func (s *Service) List(ctx context.Context) ([]*Customer, error) {
	return s.repo.ListCustomers(ctx)
}

// Search matches name, phone or email, capped at 10 results for the
// autocomplete widget.
func (s *Service) Search(ctx context.Context, query string) ([]*Customer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	return s.repo.SearchCustomers(ctx, query, 10)
}

// ImportCSV bulk-creates customers from an uploaded file. Rows without a
// name are skipped rather than failing the whole batch.
func (s *Service) ImportCSV(ctx context.Context, params []CreateParams) ([]*Customer, error) {
	customers := make([]*Customer, 0, len(params))

	for _, p := range params {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}

		customers = append(customers, &Customer{
			Name:    name,
			Phone:   strings.TrimSpace(p.Phone),
			Email:   strings.TrimSpace(p.Email),
			Address: strings.TrimSpace(p.Address),
		})
	}

	if len(customers) == 0 {
		return nil, nil
	}

	if err := s.repo.CreateCustomers(ctx, customers); err != nil {
		return nil, err
	}

	return customers, nil
}
