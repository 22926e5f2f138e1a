package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/madison-jay/edike-backend/internal/domain/employee"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.department_id, e.first_name, e.last_name, e.email,
	e.phone_number, e.address, e.avatar_url, e.role, e.employment_status,
	e.hire_date, e.leave_balance, e.next_due_date, e.biotime_id,
	e.emergency_contact_name, e.emergency_contact_phone,
	e.created_at, e.updated_at, e.deleted_at, d.name
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID,
		&emp.UserID,
		&emp.DepartmentID,
		&emp.FirstName,
		&emp.LastName,
		&emp.Email,
		&emp.PhoneNumber,
		&emp.Address,
		&emp.AvatarURL,
		&emp.Role,
		&emp.EmploymentStatus,
		&emp.HireDate,
		&emp.LeaveBalance,
		&emp.NextDueDate,
		&emp.BiotimeID,
		&emp.EmergencyContactName,
		&emp.EmergencyContactPhone,
		&emp.CreatedAt,
		&emp.UpdatedAt,
		&emp.DeletedAt,
		&emp.DepartmentName,
	)
	return emp, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, user_id, department_id, first_name, last_name, email,
			phone_number, address, avatar_url, role, employment_status,
			hire_date, leave_balance, biotime_id,
			emergency_contact_name, emergency_contact_phone,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, $13,
			$14, $15,
			NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.UserID, emp.DepartmentID, emp.FirstName, emp.LastName, emp.Email,
		emp.PhoneNumber, emp.Address, emp.AvatarURL, emp.Role, emp.EmploymentStatus,
		emp.HireDate, emp.LeaveBalance, emp.BiotimeID,
		emp.EmergencyContactName, emp.EmergencyContactPhone,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, err
}

func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE e.user_id = $1 AND e.deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, err
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, `e.deleted_at IS NULL`)
}

func (r *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, `e.deleted_at IS NULL AND e.employment_status = 'active'`)
}

func (r *employeeRepositoryImpl) list(ctx context.Context, where string, args ...any) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE ` + where + `
		ORDER BY e.last_name, e.first_name
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) ListDueForPayment(ctx context.Context, asOf time.Time) ([]employee.Employee, error) {
	return r.list(ctx,
		`e.deleted_at IS NULL AND e.employment_status = 'active' AND e.next_due_date IS NOT NULL AND e.next_due_date <= $1`,
		asOf,
	)
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			department_id = $2,
			first_name = $3,
			last_name = $4,
			email = $5,
			phone_number = $6,
			address = $7,
			avatar_url = $8,
			role = $9,
			employment_status = $10,
			hire_date = $11,
			biotime_id = $12,
			emergency_contact_name = $13,
			emergency_contact_phone = $14,
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.DepartmentID, emp.FirstName, emp.LastName, emp.Email,
		emp.PhoneNumber, emp.Address, emp.AvatarURL, emp.Role, emp.EmploymentStatus,
		emp.HireDate, emp.BiotimeID, emp.EmergencyContactName, emp.EmergencyContactPhone,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrEmailExists
		}
		return err
	}
	if tag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// DecrementLeaveBalance only lands when the stored balance covers the days;
// the guard in the WHERE clause is what keeps concurrent approvals from
// driving the balance negative.
func (r *employeeRepositoryImpl) DecrementLeaveBalance(ctx context.Context, id string, days int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET leave_balance = leave_balance - $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL AND leave_balance >= $2
	`

	tag, err := q.Exec(ctx, query, id, days)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		// Distinguish a missing row from a balance miss.
		var exists bool
		if err := q.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1 AND deleted_at IS NULL)`, id,
		).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return employee.ErrEmployeeNotFound
		}
		return employee.ErrInsufficientBalance
	}
	return nil
}

func (r *employeeRepositoryImpl) SetNextDueDate(ctx context.Context, id string, due time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET next_due_date = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id, due)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) employee.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Department, error) {
	q := GetQuerier(ctx, r.db)

	var dept employee.Department
	err := q.QueryRow(ctx, `SELECT id, name FROM departments WHERE id = $1`, id).
		Scan(&dept.ID, &dept.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Department{}, employee.ErrDepartmentNotFound
	}
	return dept, err
}

func (r *departmentRepositoryImpl) List(ctx context.Context) ([]employee.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []employee.Department
	for rows.Next() {
		var dept employee.Department
		if err := rows.Scan(&dept.ID, &dept.Name); err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}
	return departments, rows.Err()
}
