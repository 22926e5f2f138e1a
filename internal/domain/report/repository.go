package report

import "context"

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	// Monthly attendance matrix
	GetAttendanceMatrix(ctx context.Context, month, year int) ([]AttendanceMatrixRow, error)

	// Payroll register for a "YYYY-MM" period
	GetPayrollRegister(ctx context.Context, period string) ([]PayrollRegisterRow, error)
}
