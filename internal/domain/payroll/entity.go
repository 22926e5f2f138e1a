package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryComponent - one compensation row per employee per effective range.
// The row with a null EndDate is the active one; history stays behind it.
type SalaryComponent struct {
	ID         string
	EmployeeID string
	BaseSalary decimal.Decimal
	Bonus      decimal.Decimal
	Incentives decimal.Decimal
	StartDate  time.Time
	EndDate    *time.Time
	CreatedBy  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Gross is the component's contribution to gross pay.
func (s SalaryComponent) Gross() decimal.Decimal {
	return s.BaseSalary.Add(s.Bonus).Add(s.Incentives)
}

// DefaultCharge - master penalty definition deductions reference.
type DefaultCharge struct {
	ID          string
	ChargeName  string
	PenaltyFee  decimal.Decimal
	Description *string
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DeductionStatus string

const (
	DeductionStatusPending DeductionStatus = "pending"
	DeductionStatusPaid    DeductionStatus = "paid"
)

// Deduction - a pending or settled charge against an employee. At most one
// pending row may exist per (employee, charge); repeat offences bump
// Instances instead.
type Deduction struct {
	ID               string
	EmployeeID       string
	DefaultChargeID  string
	PardonedFee      decimal.Decimal
	Instances        int
	Status           DeductionStatus
	Reason           *string
	PaymentHistoryID *string
	CreatedBy        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	ChargeName *string
	PenaltyFee decimal.Decimal
}

// Amount owed for this deduction: instances x penalty minus whatever was
// pardoned.
func (d Deduction) Amount() decimal.Decimal {
	return decimal.NewFromInt(int64(d.Instances)).Mul(d.PenaltyFee).Sub(d.PardonedFee)
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// PaymentHistory - one settled payment per (employee, period). Generation is
// idempotent: a second call for the same period returns the stored row.
type PaymentHistory struct {
	ID              string
	EmployeeID      string
	PaymentDate     time.Time
	MonthYear       string // "YYYY-MM"
	GrossSalary     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	Status          PaymentStatus
	CreatedBy       *string
	CreatedAt       time.Time

	// Deductions consumed by this payment, attached on reads.
	Deductions []Deduction
}
