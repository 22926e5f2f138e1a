package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/madison-jay/edike-backend/internal/domain/attendance"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.TransactionRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	id, employee_id, date, check_in, check_out, statuses, biotime_id,
	created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Transaction, error) {
	var t attendance.Transaction
	var statuses []string
	err := row.Scan(
		&t.ID,
		&t.EmployeeID,
		&t.Date,
		&t.CheckIn,
		&t.CheckOut,
		&statuses,
		&t.BiotimeID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return attendance.Transaction{}, err
	}
	t.Statuses = make([]attendance.Status, 0, len(statuses))
	for _, s := range statuses {
		t.Statuses = append(t.Statuses, attendance.Status(s))
	}
	return t, nil
}

func statusStrings(statuses []attendance.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

// Upsert writes the row for (employee, date), replacing punches and the
// derived label set when it already exists.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, transaction attendance.Transaction) (attendance.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_transactions (
			id, employee_id, date, check_in, check_out, statuses, biotime_id,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW()
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			statuses = EXCLUDED.statuses,
			biotime_id = EXCLUDED.biotime_id,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		transaction.EmployeeID, transaction.Date, transaction.CheckIn, transaction.CheckOut,
		statusStrings(transaction.Statuses), transaction.BiotimeID,
	).Scan(&transaction.ID, &transaction.CreatedAt, &transaction.UpdatedAt)
	if err != nil {
		return attendance.Transaction{}, err
	}

	return transaction, nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_transactions
		WHERE employee_id = $1 AND date = $2
	`

	t, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.Transaction{}, attendance.ErrTransactionNotFound
	}
	return t, err
}

func (r *attendanceRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Transaction, error) {
	return r.listWhere(ctx, `employee_id = $1 AND date BETWEEN $2 AND $3`, employeeID, from, to)
}

func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Transaction, error) {
	return r.listWhere(ctx, `date = $1`, date)
}

func (r *attendanceRepositoryImpl) listWhere(ctx context.Context, where string, args ...any) ([]attendance.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_transactions
		WHERE ` + where + `
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []attendance.Transaction
	for rows.Next() {
		t, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
