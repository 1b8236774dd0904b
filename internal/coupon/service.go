package coupon

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dhruvbhat/kagaz/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=coupon
type Repository interface {
	FindActiveByCode(ctx context.Context, code string) (*Coupon, error)
	ListActive(ctx context.Context) ([]*Coupon, error)
	CreateCoupon(ctx context.Context, c *Coupon) error
	DeleteCoupon(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Redeem looks up an active coupon by code and validates it against the
// purchase amount. Codes are normalized to uppercase before lookup.
func (s *Service) Redeem(ctx context.Context, code string, purchase money.Amount) (money.Amount, *Coupon, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return 0, nil, ErrNotFound
	}

	c, err := s.repo.FindActiveByCode(ctx, normalized)
	if err != nil {
		return 0, nil, err
	}

	discount, err := Validate(*c, purchase)
	if err != nil {
		return 0, nil, err
	}

	return discount, c, nil
}

func (s *Service) ListActive(ctx context.Context) ([]*Coupon, error) {
	return s.repo.ListActive(ctx)
}

type CreateParams struct {
	Code          string
	Type          Type
	DiscountValue string
	MinPurchase   money.Amount
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Coupon, error) {
	value, err := money.Parse(params.DiscountValue)
	if err != nil {
		return nil, fmt.Errorf("parsing discount value: %w", err)
	}

	if params.Type != TypePercentage && params.Type != TypeFixed {
		return nil, fmt.Errorf("unknown discount type: %s", params.Type)
	}

	c := &Coupon{
		Code:          strings.ToUpper(strings.TrimSpace(params.Code)),
		Type:          params.Type,
		DiscountValue: value.Decimal(),
		MinPurchase:   params.MinPurchase,
		Active:        true,
	}
	if err := s.repo.CreateCoupon(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCoupon(ctx, id)
}
