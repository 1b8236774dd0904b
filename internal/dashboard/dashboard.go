// Package dashboard aggregates sales figures for the overview screen.
// All monetary aggregates are in the reference currency.
package dashboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/dhruvbhat/kagaz/internal/money"
)

// Stats is the full dashboard payload.
type Stats struct {
	TotalCustomers int
	TotalReceipts  int
	TotalSales     money.Amount
	TodaySales     money.Amount
	WeekSales      money.Amount
	MonthSales     money.Amount
	YearSales      money.Amount

	TopCustomers    []TopCustomer
	SalesByPayment  []PaymentBucket
	SalesByCurrency []CurrencyBucket
	RecentReceipts  []RecentReceipt

	DailySales   []SeriesPoint
	WeeklySales  []SeriesPoint
	MonthlySales []SeriesPoint
	YearlySales  []SeriesPoint
}

// TopCustomer ranks a customer by lifetime spend.
type TopCustomer struct {
	ID           uuid.UUID
	Name         string
	Phone        string
	Email        string
	ReceiptCount int
	TotalSpent   money.Amount
}

// PaymentBucket groups receipts by payment method.
type PaymentBucket struct {
	PaymentMethod string
	Count         int
	Total         money.Amount
}

// CurrencyBucket groups receipts by the currency they were issued in.
// TotalOriginal is in that currency, Total in the reference currency.
type CurrencyBucket struct {
	CurrencyCode  string
	Symbol        string
	CurrencyName  string
	Count         int
	TotalOriginal money.Amount
	Total         money.Amount
}

// RecentReceipt is a row of the latest-receipts list.
type RecentReceipt struct {
	ID             uuid.UUID
	Number         string
	Total          money.Amount
	CurrencyCode   string
	CurrencySymbol string
	TotalReference money.Amount
	CustomerName   string
	IssuedAt       time.Time
}

// SeriesPoint is one bucket of a sales-over-time series. Period is the
// bucket label: "2006-01-02" for days, ISO year-week for weeks, "2006-01"
// for months, "2006" for years.
type SeriesPoint struct {
	Period       string
	ReceiptCount int
	TotalSales   money.Amount
}
