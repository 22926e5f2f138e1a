package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContentsType string

const (
	ContentsProduct   ContentsType = "product"
	ContentsComponent ContentsType = "component"
)

func (c ContentsType) Valid() bool {
	return c == ContentsProduct || c == ContentsComponent
}

type BoxStatus string

const (
	BoxInStock     BoxStatus = "in_stock"
	BoxSold        BoxStatus = "sold"
	BoxDamaged     BoxStatus = "damaged"
	BoxQuarantined BoxStatus = "quarantined"
)

func (s BoxStatus) Valid() bool {
	switch s {
	case BoxInStock, BoxSold, BoxDamaged, BoxQuarantined:
		return true
	}
	return false
}

type TransactionType string

const (
	TransactionInbound  TransactionType = "inbound"
	TransactionOutbound TransactionType = "outbound"
)

type Product struct {
	ID            string
	SKU           string
	Name          string
	Description   *string
	UnitPrice     decimal.Decimal
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Component struct {
	ID            string
	SKU           string
	Name          string
	Description   *string
	UnitPrice     decimal.Decimal
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Supplier struct {
	ID          string
	Name        string
	ContactName *string
	Phone       *string
	Email       *string
	Address     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ImportBatch struct {
	ID          string
	BatchNumber string
	SupplierID  string
	ImportDate  time.Time
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined field
	SupplierName *string
}

// Box is the physical unit of inventory. Created in bulk per stock-in batch;
// quantity only ever decreases, status flips to sold when it hits zero.
type Box struct {
	ID            string
	ContentsType  ContentsType
	ContentsID    string
	BatchID       string
	QuantityInBox int
	Status        BoxStatus
	Location      string
	Barcode       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// StockTransaction records one inbound stock-in batch or one outbound sale
// batch. One row per batch, never per box.
type StockTransaction struct {
	ID         string
	Type       TransactionType
	BatchID    *string
	OrderID    *string
	TotalUnits int
	CreatedBy  string
	CreatedAt  time.Time
}
