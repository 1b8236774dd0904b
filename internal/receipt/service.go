package receipt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dhruvbhat/kagaz/internal/currency"
	"github.com/dhruvbhat/kagaz/internal/money"
)

// ErrNotFound is returned when a receipt does not exist.
var ErrNotFound = errors.New("receipt: not found")

// ErrDuplicateNumber is returned when a receipt number is already taken.
var ErrDuplicateNumber = errors.New("receipt: number already exists")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=receipt
type Repository interface {
	CreateReceipt(ctx context.Context, r *Receipt) error
	GetReceipt(ctx context.Context, id uuid.UUID) (*Receipt, error)
	GetReceiptByNumber(ctx context.Context, number string) (*Receipt, error)
	ListRecent(ctx context.Context, limit int) ([]*Receipt, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Receipt, error)
}

// Service computes totals server-side at save time with the same calculator
// the preview uses, then persists the result.
type Service struct {
	repo  Repository
	rates *currency.Service
	now   func() time.Time
}

func NewService(repo Repository, rates *currency.Service) *Service {
	return &Service{repo: repo, rates: rates, now: time.Now}
}

type CreateParams struct {
	Number        string // empty means generate
	CustomerID    *uuid.UUID
	CustomerName  string
	Items         []LineItem
	CurrencyCode  string
	CouponCode    string
	Discount      money.Amount
	TaxRatePct    decimal.Decimal
	PaymentMethod string
	AmountPaid    *money.Amount
	Cashier       string
	Notes         string
}

// Create recomputes the totals from the raw sale data and stores the
// receipt. Client-supplied totals are never trusted.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Receipt, error) {
	number := params.Number
	if number == "" {
		number = NewNumber(s.now())
	}

	sale := Sale{
		Number:        number,
		CustomerName:  params.CustomerName,
		Items:         params.Items,
		CurrencyCode:  params.CurrencyCode,
		CouponCode:    params.CouponCode,
		Discount:      params.Discount,
		TaxRatePct:    params.TaxRatePct,
		PaymentMethod: params.PaymentMethod,
		AmountPaid:    params.AmountPaid,
		Cashier:       params.Cashier,
	}

	totals, err := Compute(sale, s.rates.Table())
	if err != nil {
		return nil, err
	}

	r := &Receipt{
		Number:        number,
		CustomerID:    params.CustomerID,
		CustomerName:  params.CustomerName,
		CurrencyCode:  params.CurrencyCode,
		CouponCode:    params.CouponCode,
		TaxRatePct:    params.TaxRatePct,
		PaymentMethod: params.PaymentMethod,
		Cashier:       params.Cashier,
		Notes:         params.Notes,
		Items:         sale.ValidItems(),
		Totals:        totals,
	}
	if err := s.repo.CreateReceipt(ctx, r); err != nil {
		return nil, fmt.Errorf("storing receipt: %w", err)
	}

	return r, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Receipt, error) {
	return s.repo.GetReceipt(ctx, id)
}

func (s *Service) GetByNumber(ctx context.Context, number string) (*Receipt, error) {
	return s.repo.GetReceiptByNumber(ctx, number)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]*Receipt, error) {
	if limit <= 0 {
		limit = 100
	}

	return s.repo.ListRecent(ctx, limit)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Receipt, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}
