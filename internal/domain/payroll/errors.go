package payroll

import "errors"

var (
	ErrSalaryComponentNotFound = errors.New("salary component not found")
	ErrDefaultChargeNotFound   = errors.New("default charge not found")
	ErrDeductionNotFound       = errors.New("deduction not found")
	ErrPaymentNotFound         = errors.New("payment record not found")
	ErrPendingDeductionExists  = errors.New("a pending deduction for this charge already exists; update its instances instead")
	ErrNoCompensationData      = errors.New("no salary components or deductions found for employee")
	ErrDuplicatePeriod         = errors.New("a payment for this employee and period already exists")
)
