package employee

import (
	"context"
	"time"
)

// EmployeeRepository - interface for the employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	ListDueForPayment(ctx context.Context, asOf time.Time) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	SoftDelete(ctx context.Context, id string) error

	// DecrementLeaveBalance subtracts days atomically; the update only lands
	// when the stored balance covers it, otherwise ErrInsufficientBalance.
	DecrementLeaveBalance(ctx context.Context, id string, days int) error

	// SetNextDueDate records when the next payroll run should pick the
	// employee up.
	SetNextDueDate(ctx context.Context, id string, due time.Time) error
}

// DepartmentRepository - interface for the departments table
type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
}
