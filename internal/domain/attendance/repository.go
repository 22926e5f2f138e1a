package attendance

import (
	"context"
	"time"
)

// TransactionRepository - interface for the attendance_transactions table
type TransactionRepository interface {
	Upsert(ctx context.Context, transaction Transaction) (Transaction, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Transaction, error)
	ListByEmployeeID(ctx context.Context, employeeID string, from, to time.Time) ([]Transaction, error)
	ListByDate(ctx context.Context, date time.Time) ([]Transaction, error)
}
