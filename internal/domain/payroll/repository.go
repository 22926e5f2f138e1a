package payroll

import "context"

// SalaryComponentRepository - interface for the salary_components table
type SalaryComponentRepository interface {
	Create(ctx context.Context, component SalaryComponent) (SalaryComponent, error)
	GetByID(ctx context.Context, id string) (SalaryComponent, error)
	GetActiveByEmployeeID(ctx context.Context, employeeID string) ([]SalaryComponent, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]SalaryComponent, error)
	Update(ctx context.Context, req UpdateSalaryComponentRequest) error
	Delete(ctx context.Context, id string) error
}

// DefaultChargeRepository - interface for the default_charges table
type DefaultChargeRepository interface {
	Create(ctx context.Context, charge DefaultCharge) (DefaultCharge, error)
	GetByID(ctx context.Context, id string) (DefaultCharge, error)
	List(ctx context.Context) ([]DefaultCharge, error)
	Update(ctx context.Context, req UpdateDefaultChargeRequest) error
	Delete(ctx context.Context, id string) error
}

// DeductionRepository - interface for the deductions table
type DeductionRepository interface {
	Create(ctx context.Context, deduction Deduction) (Deduction, error)
	GetByID(ctx context.Context, id string) (Deduction, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]Deduction, error)
	ListPendingByEmployeeID(ctx context.Context, employeeID string) ([]Deduction, error)
	GetPendingByEmployeeAndCharge(ctx context.Context, employeeID, chargeID string) (Deduction, error)
	ListByPaymentHistoryID(ctx context.Context, paymentHistoryID string) ([]Deduction, error)
	Update(ctx context.Context, req UpdateDeductionRequest) error
	MarkPaid(ctx context.Context, ids []string, paymentHistoryID string) error
	Delete(ctx context.Context, id string) error
}

// PaymentHistoryRepository - interface for the payment_history table
type PaymentHistoryRepository interface {
	Create(ctx context.Context, payment PaymentHistory) (PaymentHistory, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (PaymentHistory, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]PaymentHistory, error)
}
