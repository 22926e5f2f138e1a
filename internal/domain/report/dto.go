package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

type MonthlyReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceMatrix lists one row per employee with a cell per day of the
// month holding the attendance label set for that day.
type AttendanceMatrix struct {
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	Employees []AttendanceMatrixRow `json:"employees"`
}

type AttendanceMatrixRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`

	// Days is keyed "YYYY-MM-DD"; each value is the day's label set.
	Days map[string][]string `json:"days"`

	TotalPresent int `json:"total_present"`
	TotalLate    int `json:"total_late"`
	TotalAbsent  int `json:"total_absent"`
	TotalOnLeave int `json:"total_on_leave"`
}

// PayrollRegister lists every payment settled for a period.
type PayrollRegister struct {
	Period      string `json:"period"`
	GeneratedAt string `json:"generated_at"`

	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`

	Rows []PayrollRegisterRow `json:"rows"`
}

type PayrollRegisterRow struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	Department     string          `json:"department"`
	GrossSalary    decimal.Decimal `json:"gross_salary"`
	Deductions     decimal.Decimal `json:"deductions"`
	NetSalary      decimal.Decimal `json:"net_salary"`
	DeductionCount int             `json:"deduction_count"`
	PaidAt         string          `json:"paid_at"`
}
