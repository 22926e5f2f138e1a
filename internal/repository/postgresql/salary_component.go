package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/madison-jay/edike-backend/internal/domain/payroll"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type salaryComponentRepositoryImpl struct {
	db *database.DB
}

func NewSalaryComponentRepository(db *database.DB) payroll.SalaryComponentRepository {
	return &salaryComponentRepositoryImpl{db: db}
}

const salaryComponentColumns = `
	id, employee_id, base_salary, bonus, incentives,
	start_date, end_date, created_by, created_at, updated_at
`

func scanSalaryComponent(row pgx.Row) (payroll.SalaryComponent, error) {
	var sc payroll.SalaryComponent
	err := row.Scan(
		&sc.ID,
		&sc.EmployeeID,
		&sc.BaseSalary,
		&sc.Bonus,
		&sc.Incentives,
		&sc.StartDate,
		&sc.EndDate,
		&sc.CreatedBy,
		&sc.CreatedAt,
		&sc.UpdatedAt,
	)
	return sc, err
}

func (r *salaryComponentRepositoryImpl) Create(ctx context.Context, component payroll.SalaryComponent) (payroll.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_components (
			id, employee_id, base_salary, bonus, incentives,
			start_date, end_date, created_by, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		component.EmployeeID, component.BaseSalary, component.Bonus, component.Incentives,
		component.StartDate, component.EndDate, component.CreatedBy,
	).Scan(&component.ID, &component.CreatedAt, &component.UpdatedAt)
	if err != nil {
		return payroll.SalaryComponent{}, err
	}

	return component, nil
}

func (r *salaryComponentRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryComponentColumns + ` FROM salary_components WHERE id = $1`

	sc, err := scanSalaryComponent(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.SalaryComponent{}, payroll.ErrSalaryComponentNotFound
	}
	return sc, err
}

func (r *salaryComponentRepositoryImpl) GetActiveByEmployeeID(ctx context.Context, employeeID string) ([]payroll.SalaryComponent, error) {
	return r.listWhere(ctx, `employee_id = $1 AND end_date IS NULL`, employeeID)
}

func (r *salaryComponentRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]payroll.SalaryComponent, error) {
	return r.listWhere(ctx, `employee_id = $1`, employeeID)
}

func (r *salaryComponentRepositoryImpl) listWhere(ctx context.Context, where string, args ...any) ([]payroll.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryComponentColumns + `
		FROM salary_components
		WHERE ` + where + `
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var components []payroll.SalaryComponent
	for rows.Next() {
		sc, err := scanSalaryComponent(rows)
		if err != nil {
			return nil, err
		}
		components = append(components, sc)
	}
	return components, rows.Err()
}

func (r *salaryComponentRepositoryImpl) Update(ctx context.Context, req payroll.UpdateSalaryComponentRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{req.ID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+itoa(len(args)))
	}

	if req.BaseSalary != nil {
		add("base_salary", *req.BaseSalary)
	}
	if req.Bonus != nil {
		add("bonus", *req.Bonus)
	}
	if req.Incentives != nil {
		add("incentives", *req.Incentives)
	}
	if req.EndDate != nil {
		add("end_date", *req.EndDate)
	}

	query := `UPDATE salary_components SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return payroll.ErrSalaryComponentNotFound
	}
	return nil
}

func (r *salaryComponentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salary_components WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return payroll.ErrSalaryComponentNotFound
	}
	return nil
}
