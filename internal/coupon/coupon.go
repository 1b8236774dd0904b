// Package coupon evaluates discount codes against a purchase amount.
package coupon

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dhruvbhat/kagaz/internal/money"
)

// Type selects how DiscountValue is interpreted.
type Type string

const (
	TypePercentage Type = "PERCENTAGE"
	TypeFixed      Type = "FIXED"
)

// ErrNotFound is returned when no active coupon matches a code.
var ErrNotFound = errors.New("coupon: not found")

// BelowMinimumError reports that the purchase does not reach the coupon's
// minimum, carrying the minimum for display.
type BelowMinimumError struct {
	Minimum money.Amount
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("coupon: minimum purchase of %s required", e.Minimum)
}

// Coupon is a named discount rule. Immutable once issued.
type Coupon struct {
	ID            uuid.UUID
	Code          string
	Type          Type
	DiscountValue decimal.Decimal
	MinPurchase   money.Amount
	Active        bool
	CreatedAt     time.Time
}

// Validate evaluates the coupon against a purchase amount and returns the
// raw discount. The discount is not capped here; the totals calculator
// clamps it at the subtotal.
func Validate(c Coupon, purchase money.Amount) (money.Amount, error) {
	if purchase < c.MinPurchase {
		return 0, &BelowMinimumError{Minimum: c.MinPurchase}
	}

	if c.Type == TypePercentage {
		return purchase.Percent(c.DiscountValue), nil
	}

	return money.FromDecimal(c.DiscountValue), nil
}
