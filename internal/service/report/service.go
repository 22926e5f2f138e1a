package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/madison-jay/edike-backend/internal/domain/report"
	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

type Service struct {
	reportRepo report.ReportRepository
}

func NewService(reportRepo report.ReportRepository) *Service {
	return &Service{reportRepo: reportRepo}
}

// AttendanceMatrix assembles the per-employee day grid for one month.
func (s *Service) AttendanceMatrix(ctx context.Context, req report.MonthlyReportRequest) (report.AttendanceMatrix, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceMatrix{}, err
	}

	rows, err := s.reportRepo.GetAttendanceMatrix(ctx, req.Month, req.Year)
	if err != nil {
		return report.AttendanceMatrix{}, fmt.Errorf("attendance matrix: %w", err)
	}

	start := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	return report.AttendanceMatrix{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: start.Format("2006-01-02"),
		PeriodEnd:   end.Format("2006-01-02"),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Employees:   rows,
	}, nil
}

// AttendanceMatrixXLSX renders the matrix as a spreadsheet, one column per
// day plus the per-label totals.
func (s *Service) AttendanceMatrixXLSX(ctx context.Context, req report.MonthlyReportRequest) ([]byte, error) {
	matrix, err := s.AttendanceMatrix(ctx, req)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)

	start, _ := time.Parse("2006-01-02", matrix.PeriodStart)
	end, _ := time.Parse("2006-01-02", matrix.PeriodEnd)
	daysInMonth := end.Day()

	headers := []string{"Employee", "Department"}
	for d := 1; d <= daysInMonth; d++ {
		headers = append(headers, validator.Itoa(d))
	}
	headers = append(headers, "Present", "Late", "Absent", "On Leave")
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range matrix.Employees {
		rowNum := i + 2
		values := []interface{}{row.EmployeeName, row.Department}
		for d := 1; d <= daysInMonth; d++ {
			key := time.Date(start.Year(), start.Month(), d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
			values = append(values, strings.Join(row.Days[key], ", "))
		}
		values = append(values, row.TotalPresent, row.TotalLate, row.TotalAbsent, row.TotalOnLeave)
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}
	return buf.Bytes(), nil
}

// PayrollRegister lists every settled payment for a "YYYY-MM" period with
// gross, deduction and net totals.
func (s *Service) PayrollRegister(ctx context.Context, period string) (report.PayrollRegister, error) {
	if !validator.IsValidPeriod(period) {
		return report.PayrollRegister{}, validator.ValidationErrors{
			{Field: "period", Message: "must be YYYY-MM"},
		}
	}

	rows, err := s.reportRepo.GetPayrollRegister(ctx, period)
	if err != nil {
		return report.PayrollRegister{}, fmt.Errorf("payroll register: %w", err)
	}

	register := report.PayrollRegister{
		Period:      period,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Rows:        rows,
	}
	for _, row := range rows {
		register.TotalGross = register.TotalGross.Add(row.GrossSalary)
		register.TotalDeductions = register.TotalDeductions.Add(row.Deductions)
		register.TotalNet = register.TotalNet.Add(row.NetSalary)
	}
	return register, nil
}

func (s *Service) PayrollRegisterXLSX(ctx context.Context, period string) ([]byte, error) {
	register, err := s.PayrollRegister(ctx, period)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Payroll " + period
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Employee", "Department", "Gross", "Deductions", "Net", "Deduction Count", "Paid At"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range register.Rows {
		rowNum := i + 2
		values := []interface{}{
			row.EmployeeName,
			row.Department,
			row.GrossSalary.String(),
			row.Deductions.String(),
			row.NetSalary.String(),
			row.DeductionCount,
			row.PaidAt,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			f.SetCellValue(sheet, cell, v)
		}
	}

	totalsRow := len(register.Rows) + 3
	totals := []interface{}{
		"Totals", "",
		register.TotalGross.String(),
		register.TotalDeductions.String(),
		register.TotalNet.String(),
	}
	for col, v := range totals {
		cell, _ := excelize.CoordinatesToCellName(col+1, totalsRow)
		f.SetCellValue(sheet, cell, v)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}
	return buf.Bytes(), nil
}
