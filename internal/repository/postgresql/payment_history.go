package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/madison-jay/edike-backend/internal/domain/payroll"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type paymentHistoryRepositoryImpl struct {
	db *database.DB
}

func NewPaymentHistoryRepository(db *database.DB) payroll.PaymentHistoryRepository {
	return &paymentHistoryRepositoryImpl{db: db}
}

const paymentHistoryColumns = `
	id, employee_id, payment_date, month_year, gross_salary,
	total_deductions, net_salary, status, created_by, created_at
`

func scanPaymentHistory(row pgx.Row) (payroll.PaymentHistory, error) {
	var p payroll.PaymentHistory
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.PaymentDate,
		&p.MonthYear,
		&p.GrossSalary,
		&p.TotalDeductions,
		&p.NetSalary,
		&p.Status,
		&p.CreatedBy,
		&p.CreatedAt,
	)
	return p, err
}

func (r *paymentHistoryRepositoryImpl) Create(ctx context.Context, payment payroll.PaymentHistory) (payroll.PaymentHistory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payment_history (
			id, employee_id, payment_date, month_year, gross_salary,
			total_deductions, net_salary, status, created_by, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7, $8, NOW()
		)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		payment.EmployeeID, payment.PaymentDate, payment.MonthYear, payment.GrossSalary,
		payment.TotalDeductions, payment.NetSalary, payment.Status, payment.CreatedBy,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return payroll.PaymentHistory{}, payroll.ErrDuplicatePeriod
		}
		return payroll.PaymentHistory{}, err
	}

	return payment, nil
}

func (r *paymentHistoryRepositoryImpl) GetByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (payroll.PaymentHistory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentHistoryColumns + `
		FROM payment_history
		WHERE employee_id = $1 AND month_year = $2
	`

	p, err := scanPaymentHistory(q.QueryRow(ctx, query, employeeID, period))
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.PaymentHistory{}, payroll.ErrPaymentNotFound
	}
	return p, err
}

func (r *paymentHistoryRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]payroll.PaymentHistory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentHistoryColumns + `
		FROM payment_history
		WHERE employee_id = $1
		ORDER BY month_year DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []payroll.PaymentHistory
	for rows.Next() {
		p, err := scanPaymentHistory(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
