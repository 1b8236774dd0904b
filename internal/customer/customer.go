// Package customer manages the customer book and its sales aggregates.
package customer

import (
	"time"

	"github.com/google/uuid"

	"github.com/dhruvbhat/kagaz/internal/money"
)

// Customer is a buyer on record. TotalReceipts and TotalSales are
// aggregates computed by the store, in the reference currency.
type Customer struct {
	ID            uuid.UUID
	Name          string
	Phone         string
	Email         string
	Address       string
	TotalReceipts int
	TotalSales    money.Amount
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
