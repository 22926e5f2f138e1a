package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

// ========== SALARY COMPONENT DTOs ==========

type CreateSalaryComponentRequest struct {
	EmployeeID string           `json:"employee_id"`
	BaseSalary decimal.Decimal  `json:"base_salary"`
	Bonus      *decimal.Decimal `json:"bonus,omitempty"`
	Incentives *decimal.Decimal `json:"incentives,omitempty"`
	StartDate  string           `json:"start_date"`
	EndDate    *string          `json:"end_date,omitempty"`
}

func (r *CreateSalaryComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.Bonus != nil && r.Bonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonus", Message: "must be non-negative"})
	}
	if r.Incentives != nil && r.Incentives.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "incentives", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSalaryComponentRequest struct {
	ID         string           `json:"-"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
	Bonus      *decimal.Decimal `json:"bonus,omitempty"`
	Incentives *decimal.Decimal `json:"incentives,omitempty"`
	EndDate    *string          `json:"end_date,omitempty"`
}

func (r *UpdateSalaryComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.Bonus != nil && r.Bonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonus", Message: "must be non-negative"})
	}
	if r.Incentives != nil && r.Incentives.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "incentives", Message: "must be non-negative"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== DEFAULT CHARGE DTOs ==========

type CreateDefaultChargeRequest struct {
	ChargeName  string          `json:"charge_name"`
	PenaltyFee  decimal.Decimal `json:"penalty_fee"`
	Description *string         `json:"description,omitempty"`
}

func (r *CreateDefaultChargeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ChargeName) {
		errs = append(errs, validator.ValidationError{Field: "charge_name", Message: "is required"})
	}
	if len(r.ChargeName) > 100 {
		errs = append(errs, validator.ValidationError{Field: "charge_name", Message: "must be at most 100 characters"})
	}
	if r.PenaltyFee.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "penalty_fee", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDefaultChargeRequest struct {
	ID          string           `json:"-"`
	ChargeName  *string          `json:"charge_name,omitempty"`
	PenaltyFee  *decimal.Decimal `json:"penalty_fee,omitempty"`
	Description *string          `json:"description,omitempty"`
}

func (r *UpdateDefaultChargeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ChargeName != nil && validator.IsEmpty(*r.ChargeName) {
		errs = append(errs, validator.ValidationError{Field: "charge_name", Message: "must not be empty"})
	}
	if r.PenaltyFee != nil && r.PenaltyFee.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "penalty_fee", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== DEDUCTION DTOs ==========

type CreateDeductionRequest struct {
	EmployeeID      string           `json:"employee_id"`
	DefaultChargeID string           `json:"default_charge_id"`
	PardonedFee     *decimal.Decimal `json:"pardoned_fee,omitempty"`
	Instances       *int             `json:"instances,omitempty"`
	Reason          *string          `json:"reason,omitempty"`
}

func (r *CreateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if !validator.IsValidUUID(r.DefaultChargeID) {
		errs = append(errs, validator.ValidationError{Field: "default_charge_id", Message: "must be a valid UUID"})
	}
	if r.PardonedFee != nil && r.PardonedFee.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "pardoned_fee", Message: "must be non-negative"})
	}
	if r.Instances != nil && *r.Instances < 1 {
		errs = append(errs, validator.ValidationError{Field: "instances", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDeductionRequest struct {
	ID          string           `json:"-"`
	PardonedFee *decimal.Decimal `json:"pardoned_fee,omitempty"`
	Instances   *int             `json:"instances,omitempty"`
	Status      *string          `json:"status,omitempty"`
	Reason      *string          `json:"reason,omitempty"`
}

func (r *UpdateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PardonedFee != nil && r.PardonedFee.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "pardoned_fee", Message: "must be non-negative"})
	}
	if r.Instances != nil && *r.Instances < 1 {
		errs = append(errs, validator.ValidationError{Field: "instances", Message: "must be at least 1"})
	}
	if r.Status != nil && *r.Status != string(DeductionStatusPending) && *r.Status != string(DeductionStatusPaid) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'pending' or 'paid'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== PAYMENT DTOs ==========

type GeneratePaymentRequest struct {
	EmployeeID string `json:"employee_id"`
	Period     string `json:"period"` // "YYYY-MM"
}

func (r *GeneratePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be YYYY-MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerateAllPaymentsRequest struct {
	Period string `json:"period"`
}

func (r *GenerateAllPaymentsRequest) Validate() error {
	if !validator.IsValidPeriod(r.Period) {
		return validator.ValidationErrors{{Field: "period", Message: "must be YYYY-MM"}}
	}
	return nil
}

type PaymentResponse struct {
	ID              string              `json:"id"`
	EmployeeID      string              `json:"employee_id"`
	PaymentDate     string              `json:"payment_date"`
	MonthYear       string              `json:"month_year"`
	GrossSalary     decimal.Decimal     `json:"gross_salary"`
	TotalDeductions decimal.Decimal     `json:"total_deductions"`
	NetSalary       decimal.Decimal     `json:"net_salary"`
	Status          string              `json:"status"`
	NextDueDate     *string             `json:"next_due_date,omitempty"`
	Deductions      []DeductionResponse `json:"deductions,omitempty"`
}

type DeductionResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	DefaultChargeID  string          `json:"default_charge_id"`
	ChargeName       *string         `json:"charge_name,omitempty"`
	PenaltyFee       decimal.Decimal `json:"penalty_fee"`
	PardonedFee      decimal.Decimal `json:"pardoned_fee"`
	Instances        int             `json:"instances"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	Reason           *string         `json:"reason,omitempty"`
	PaymentHistoryID *string         `json:"payment_history_id,omitempty"`
}

func ToDeductionResponse(d Deduction) DeductionResponse {
	return DeductionResponse{
		ID:               d.ID,
		EmployeeID:       d.EmployeeID,
		DefaultChargeID:  d.DefaultChargeID,
		ChargeName:       d.ChargeName,
		PenaltyFee:       d.PenaltyFee,
		PardonedFee:      d.PardonedFee,
		Instances:        d.Instances,
		Amount:           d.Amount(),
		Status:           string(d.Status),
		Reason:           d.Reason,
		PaymentHistoryID: d.PaymentHistoryID,
	}
}

func ToPaymentResponse(p PaymentHistory, nextDueDate *string) PaymentResponse {
	deductions := make([]DeductionResponse, 0, len(p.Deductions))
	for _, d := range p.Deductions {
		deductions = append(deductions, ToDeductionResponse(d))
	}

	return PaymentResponse{
		ID:              p.ID,
		EmployeeID:      p.EmployeeID,
		PaymentDate:     p.PaymentDate.Format("2006-01-02"),
		MonthYear:       p.MonthYear,
		GrossSalary:     p.GrossSalary,
		TotalDeductions: p.TotalDeductions,
		NetSalary:       p.NetSalary,
		Status:          string(p.Status),
		NextDueDate:     nextDueDate,
		Deductions:      deductions,
	}
}
