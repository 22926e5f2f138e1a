package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPaid, OrderShipped, OrderCancelled:
		return true
	}
	return false
}

type Customer struct {
	ID        string
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Order struct {
	ID          string
	CustomerID  string
	OrderDate   time.Time
	Status      OrderStatus
	TotalAmount decimal.Decimal
	Notes       *string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined field
	CustomerName *string
}
