package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/madison-jay/edike-backend/internal/domain/kpi"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type kpiTemplateRepositoryImpl struct {
	db *database.DB
}

func NewKPITemplateRepository(db *database.DB) kpi.TemplateRepository {
	return &kpiTemplateRepositoryImpl{db: db}
}

func scanKPITemplate(row pgx.Row) (kpi.Template, error) {
	var t kpi.Template
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.Weight,
		&t.TargetType,
		&t.TargetValue,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}

func (r *kpiTemplateRepositoryImpl) Create(ctx context.Context, template kpi.Template) (kpi.Template, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO kpi_templates (
			id, name, description, weight, target_type, target_value, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		template.Name, template.Description, template.Weight, template.TargetType, template.TargetValue,
	).Scan(&template.ID, &template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		return kpi.Template{}, err
	}

	return template, nil
}

func (r *kpiTemplateRepositoryImpl) GetByID(ctx context.Context, id string) (kpi.Template, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, weight, target_type, target_value, created_at, updated_at
		FROM kpi_templates
		WHERE id = $1
	`

	t, err := scanKPITemplate(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return kpi.Template{}, kpi.ErrTemplateNotFound
	}
	return t, err
}

func (r *kpiTemplateRepositoryImpl) List(ctx context.Context) ([]kpi.Template, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, weight, target_type, target_value, created_at, updated_at
		FROM kpi_templates
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []kpi.Template
	for rows.Next() {
		t, err := scanKPITemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *kpiTemplateRepositoryImpl) Update(ctx context.Context, req kpi.UpdateTemplateRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{req.ID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+itoa(len(args)))
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Weight != nil {
		add("weight", *req.Weight)
	}
	if req.TargetType != nil {
		add("target_type", *req.TargetType)
	}
	if len(req.TargetValue) > 0 {
		add("target_value", req.TargetValue)
	}

	query := `UPDATE kpi_templates SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return kpi.ErrTemplateNotFound
	}
	return nil
}

func (r *kpiTemplateRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM kpi_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return kpi.ErrTemplateNotFound
	}
	return nil
}

type kpiAssignmentRepositoryImpl struct {
	db *database.DB
}

func NewKPIAssignmentRepository(db *database.DB) kpi.AssignmentRepository {
	return &kpiAssignmentRepositoryImpl{db: db}
}

const kpiAssignmentColumns = `
	a.id, a.template_id, a.employee_id, a.assigned_by, a.period_start, a.period_end,
	a.status, a.submitted_value, a.evidence_url, a.reviewed_by, a.reviewed_at, a.review_note,
	a.created_at, a.updated_at, t.name, t.weight, t.target_type, t.target_value
`

func scanKPIAssignment(row pgx.Row) (kpi.Assignment, error) {
	var a kpi.Assignment
	err := row.Scan(
		&a.ID,
		&a.TemplateID,
		&a.EmployeeID,
		&a.AssignedBy,
		&a.PeriodStart,
		&a.PeriodEnd,
		&a.Status,
		&a.SubmittedValue,
		&a.EvidenceURL,
		&a.ReviewedBy,
		&a.ReviewedAt,
		&a.ReviewNote,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.TemplateName,
		&a.TemplateWeight,
		&a.TargetType,
		&a.TargetValue,
	)
	return a, err
}

func (r *kpiAssignmentRepositoryImpl) Create(ctx context.Context, assignment kpi.Assignment) (kpi.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO kpi_assignments (
			id, template_id, employee_id, assigned_by, period_start, period_end,
			status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		assignment.TemplateID, assignment.EmployeeID, assignment.AssignedBy,
		assignment.PeriodStart, assignment.PeriodEnd, assignment.Status,
	).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return kpi.Assignment{}, err
	}

	return assignment, nil
}

func (r *kpiAssignmentRepositoryImpl) GetByID(ctx context.Context, id string) (kpi.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + kpiAssignmentColumns + `
		FROM kpi_assignments a
		INNER JOIN kpi_templates t ON a.template_id = t.id
		WHERE a.id = $1
	`

	a, err := scanKPIAssignment(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return kpi.Assignment{}, kpi.ErrAssignmentNotFound
	}
	return a, err
}

func (r *kpiAssignmentRepositoryImpl) List(ctx context.Context) ([]kpi.Assignment, error) {
	return r.listWhere(ctx, `TRUE`)
}

func (r *kpiAssignmentRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]kpi.Assignment, error) {
	return r.listWhere(ctx, `a.employee_id = $1`, employeeID)
}

func (r *kpiAssignmentRepositoryImpl) listWhere(ctx context.Context, where string, args ...any) ([]kpi.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + kpiAssignmentColumns + `
		FROM kpi_assignments a
		INNER JOIN kpi_templates t ON a.template_id = t.id
		WHERE ` + where + `
		ORDER BY a.period_start DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []kpi.Assignment
	for rows.Next() {
		a, err := scanKPIAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *kpiAssignmentRepositoryImpl) UpdateStatus(ctx context.Context, id string, status kpi.AssignmentStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE kpi_assignments SET status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return kpi.ErrAssignmentNotFound
	}
	return nil
}

func (r *kpiAssignmentRepositoryImpl) Submit(ctx context.Context, req kpi.SubmitAssignmentRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE kpi_assignments
		SET status = 'submitted', submitted_value = $2, evidence_url = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.SubmittedValue, req.EvidenceURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return kpi.ErrAssignmentNotFound
	}
	return nil
}

func (r *kpiAssignmentRepositoryImpl) Review(ctx context.Context, id string, status kpi.AssignmentStatus, reviewedBy string, note *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE kpi_assignments
		SET status = $2, reviewed_by = $3, reviewed_at = NOW(), review_note = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, reviewedBy, note)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return kpi.ErrAssignmentNotFound
	}
	return nil
}

func (r *kpiAssignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM kpi_assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return kpi.ErrAssignmentNotFound
	}
	return nil
}
