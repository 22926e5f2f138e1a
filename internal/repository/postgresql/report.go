package postgresql

import (
	"context"
	"time"

	"github.com/madison-jay/edike-backend/internal/domain/report"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

func (r *reportRepositoryImpl) GetAttendanceMatrix(ctx context.Context, month, year int) ([]report.AttendanceMatrixRow, error) {
	q := GetQuerier(ctx, r.db)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	query := `
		SELECT e.id, e.first_name || ' ' || e.last_name, COALESCE(d.name, ''),
		       at.date, at.statuses
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		LEFT JOIN attendance_transactions at
			ON at.employee_id = e.id AND at.date BETWEEN $1 AND $2
		WHERE e.deleted_at IS NULL
		ORDER BY e.last_name, e.first_name, at.date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byEmployee := make(map[string]*report.AttendanceMatrixRow)
	var order []string

	for rows.Next() {
		var (
			employeeID string
			name       string
			department string
			date       *time.Time
			statuses   []string
		)
		if err := rows.Scan(&employeeID, &name, &department, &date, &statuses); err != nil {
			return nil, err
		}

		row, ok := byEmployee[employeeID]
		if !ok {
			row = &report.AttendanceMatrixRow{
				EmployeeID:   employeeID,
				EmployeeName: name,
				Department:   department,
				Days:         make(map[string][]string),
			}
			byEmployee[employeeID] = row
			order = append(order, employeeID)
		}

		if date == nil {
			continue
		}
		row.Days[date.Format("2006-01-02")] = statuses
		for _, s := range statuses {
			switch s {
			case "present", "in-time":
				row.TotalPresent++
			case "late":
				row.TotalLate++
			case "absent":
				row.TotalAbsent++
			case "on-leave":
				row.TotalOnLeave++
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := make([]report.AttendanceMatrixRow, 0, len(order))
	for _, id := range order {
		result = append(result, *byEmployee[id])
	}
	return result, nil
}

func (r *reportRepositoryImpl) GetPayrollRegister(ctx context.Context, period string) ([]report.PayrollRegisterRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ph.employee_id, e.first_name || ' ' || e.last_name, COALESCE(d.name, ''),
		       ph.gross_salary, ph.total_deductions, ph.net_salary,
		       (SELECT COUNT(*) FROM deductions dd WHERE dd.payment_history_id = ph.id),
		       ph.payment_date
		FROM payment_history ph
		INNER JOIN employees e ON ph.employee_id = e.id
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE ph.month_year = $1
		ORDER BY e.last_name, e.first_name
	`

	rows, err := q.Query(ctx, query, period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var register []report.PayrollRegisterRow
	for rows.Next() {
		var row report.PayrollRegisterRow
		var paidAt time.Time
		if err := rows.Scan(
			&row.EmployeeID,
			&row.EmployeeName,
			&row.Department,
			&row.GrossSalary,
			&row.Deductions,
			&row.NetSalary,
			&row.DeductionCount,
			&paidAt,
		); err != nil {
			return nil, err
		}
		row.PaidAt = paidAt.Format("2006-01-02")
		register = append(register, row)
	}
	return register, rows.Err()
}
