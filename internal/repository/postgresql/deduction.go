package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/madison-jay/edike-backend/internal/domain/payroll"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type deductionRepositoryImpl struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) payroll.DeductionRepository {
	return &deductionRepositoryImpl{db: db}
}

const deductionColumns = `
	dd.id, dd.employee_id, dd.default_charge_id, dd.pardoned_fee, dd.instances,
	dd.status, dd.reason, dd.payment_history_id, dd.created_by,
	dd.created_at, dd.updated_at, dc.charge_name, dc.penalty_fee
`

func scanDeduction(row pgx.Row) (payroll.Deduction, error) {
	var d payroll.Deduction
	err := row.Scan(
		&d.ID,
		&d.EmployeeID,
		&d.DefaultChargeID,
		&d.PardonedFee,
		&d.Instances,
		&d.Status,
		&d.Reason,
		&d.PaymentHistoryID,
		&d.CreatedBy,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.ChargeName,
		&d.PenaltyFee,
	)
	return d, err
}

func (r *deductionRepositoryImpl) Create(ctx context.Context, deduction payroll.Deduction) (payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deductions (
			id, employee_id, default_charge_id, pardoned_fee, instances,
			status, reason, created_by, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		deduction.EmployeeID, deduction.DefaultChargeID, deduction.PardonedFee, deduction.Instances,
		deduction.Status, deduction.Reason, deduction.CreatedBy,
	).Scan(&deduction.ID, &deduction.CreatedAt, &deduction.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return payroll.Deduction{}, payroll.ErrPendingDeductionExists
		}
		return payroll.Deduction{}, err
	}

	return deduction, nil
}

func (r *deductionRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + deductionColumns + `
		FROM deductions dd
		INNER JOIN default_charges dc ON dd.default_charge_id = dc.id
		WHERE dd.id = $1
	`

	d, err := scanDeduction(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.Deduction{}, payroll.ErrDeductionNotFound
	}
	return d, err
}

func (r *deductionRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]payroll.Deduction, error) {
	return r.listWhere(ctx, `dd.employee_id = $1`, employeeID)
}

func (r *deductionRepositoryImpl) ListPendingByEmployeeID(ctx context.Context, employeeID string) ([]payroll.Deduction, error) {
	return r.listWhere(ctx, `dd.employee_id = $1 AND dd.status = 'pending'`, employeeID)
}

func (r *deductionRepositoryImpl) ListByPaymentHistoryID(ctx context.Context, paymentHistoryID string) ([]payroll.Deduction, error) {
	return r.listWhere(ctx, `dd.payment_history_id = $1`, paymentHistoryID)
}

func (r *deductionRepositoryImpl) listWhere(ctx context.Context, where string, args ...any) ([]payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + deductionColumns + `
		FROM deductions dd
		INNER JOIN default_charges dc ON dd.default_charge_id = dc.id
		WHERE ` + where + `
		ORDER BY dd.created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deductions []payroll.Deduction
	for rows.Next() {
		d, err := scanDeduction(rows)
		if err != nil {
			return nil, err
		}
		deductions = append(deductions, d)
	}
	return deductions, rows.Err()
}

func (r *deductionRepositoryImpl) GetPendingByEmployeeAndCharge(ctx context.Context, employeeID, chargeID string) (payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + deductionColumns + `
		FROM deductions dd
		INNER JOIN default_charges dc ON dd.default_charge_id = dc.id
		WHERE dd.employee_id = $1 AND dd.default_charge_id = $2 AND dd.status = 'pending'
	`

	d, err := scanDeduction(q.QueryRow(ctx, query, employeeID, chargeID))
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.Deduction{}, payroll.ErrDeductionNotFound
	}
	return d, err
}

func (r *deductionRepositoryImpl) Update(ctx context.Context, req payroll.UpdateDeductionRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{req.ID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+itoa(len(args)))
	}

	if req.PardonedFee != nil {
		add("pardoned_fee", *req.PardonedFee)
	}
	if req.Instances != nil {
		add("instances", *req.Instances)
	}
	if req.Status != nil {
		add("status", *req.Status)
	}
	if req.Reason != nil {
		add("reason", *req.Reason)
	}

	query := `UPDATE deductions SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return payroll.ErrDeductionNotFound
	}
	return nil
}

// MarkPaid flips the given pending deductions to paid and links them to the
// payment that consumed them.
func (r *deductionRepositoryImpl) MarkPaid(ctx context.Context, ids []string, paymentHistoryID string) error {
	if len(ids) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE deductions
		SET status = 'paid', payment_history_id = $2, updated_at = NOW()
		WHERE id = ANY($1) AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, ids, paymentHistoryID)
	if err != nil {
		return err
	}
	if int(tag.RowsAffected()) != len(ids) {
		return payroll.ErrDeductionNotFound
	}
	return nil
}

func (r *deductionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM deductions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return payroll.ErrDeductionNotFound
	}
	return nil
}
