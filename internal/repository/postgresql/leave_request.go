package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/madison-jay/edike-backend/internal/domain/leave"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
	lr.reason, lr.status, lr.approved_by, lr.approved_at,
	lr.created_at, lr.updated_at, e.first_name || ' ' || e.last_name
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.LeaveType,
		&lr.StartDate,
		&lr.EndDate,
		&lr.Reason,
		&lr.Status,
		&lr.ApprovedBy,
		&lr.ApprovedAt,
		&lr.CreatedAt,
		&lr.UpdatedAt,
		&lr.EmployeeName,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date,
			reason, status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveType, request.StartDate, request.EndDate,
		request.Reason, request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE lr.id = $1
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return lr, err
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.listWhere(ctx, `TRUE`)
}

func (r *leaveRequestRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return r.listWhere(ctx, `lr.employee_id = $1`, employeeID)
}

func (r *leaveRequestRepositoryImpl) listWhere(ctx context.Context, where string, args ...any) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE ` + where + `
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// UpdateStatus moves a request out of pending. The status guard in the WHERE
// clause makes a second decision on the same request a no-op, which the
// service surfaces as ErrAlreadyProcessed.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus, approvedBy *string, approvedAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, approved_by = $3, approved_at = $4, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, status, approvedBy, approvedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		var exists bool
		if err := q.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM leave_requests WHERE id = $1)`, id,
		).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return leave.ErrLeaveRequestNotFound
		}
		return leave.ErrAlreadyProcessed
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) HasApprovedOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1 AND status = 'approved'
			  AND start_date <= $2 AND end_date >= $2
		)
	`

	var covered bool
	err := q.QueryRow(ctx, query, employeeID, date).Scan(&covered)
	return covered, err
}
