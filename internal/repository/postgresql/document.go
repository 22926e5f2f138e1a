package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/madison-jay/edike-backend/internal/domain/document"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type employeeDocumentRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeDocumentRepository(db *database.DB) document.EmployeeDocumentRepository {
	return &employeeDocumentRepositoryImpl{db: db}
}

const employeeDocumentColumns = `id, employee_id, name, type, url, category, created_by, created_at, updated_at`

func scanEmployeeDocument(row pgx.Row) (document.EmployeeDocument, error) {
	var d document.EmployeeDocument
	err := row.Scan(
		&d.ID,
		&d.EmployeeID,
		&d.Name,
		&d.Type,
		&d.URL,
		&d.Category,
		&d.CreatedBy,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}

func (r *employeeDocumentRepositoryImpl) Create(ctx context.Context, doc document.EmployeeDocument) (document.EmployeeDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_documents (id, employee_id, name, type, url, category, created_by, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, doc.EmployeeID, doc.Name, doc.Type, doc.URL, doc.Category, doc.CreatedBy).
		Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return document.EmployeeDocument{}, err
	}

	return doc, nil
}

func (r *employeeDocumentRepositoryImpl) GetByID(ctx context.Context, id string) (document.EmployeeDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeDocumentColumns + ` FROM employee_documents WHERE id = $1`

	d, err := scanEmployeeDocument(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return document.EmployeeDocument{}, document.ErrEmployeeDocumentNotFound
	}
	return d, err
}

func (r *employeeDocumentRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]document.EmployeeDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeDocumentColumns + `
		FROM employee_documents
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []document.EmployeeDocument
	for rows.Next() {
		d, err := scanEmployeeDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *employeeDocumentRepositoryImpl) ExistsByNameAndURL(ctx context.Context, employeeID, name, url string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM employee_documents WHERE employee_id = $1 AND name = $2 AND url = $3)`,
		employeeID, name, url,
	).Scan(&exists)
	return exists, err
}

func (r *employeeDocumentRepositoryImpl) Update(ctx context.Context, req document.UpdateEmployeeDocumentRequest) error {
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
	if req.Type != nil {
		add("type", *req.Type)
	}
	if req.URL != nil {
		add("url", *req.URL)
	}
	if req.Category != nil {
		add("category", *req.Category)
	}

	query := `UPDATE employee_documents SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return document.ErrEmployeeDocumentNotFound
	}
	return nil
}

func (r *employeeDocumentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employee_documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return document.ErrEmployeeDocumentNotFound
	}
	return nil
}

type taskDocumentRepositoryImpl struct {
	db *database.DB
}

func NewTaskDocumentRepository(db *database.DB) document.TaskDocumentRepository {
	return &taskDocumentRepositoryImpl{db: db}
}

const taskDocumentColumns = `id, task_id, name, type, url, category, created_by, created_at, updated_at`

func scanTaskDocument(row pgx.Row) (document.TaskDocument, error) {
	var d document.TaskDocument
	err := row.Scan(
		&d.ID,
		&d.TaskID,
		&d.Name,
		&d.Type,
		&d.URL,
		&d.Category,
		&d.CreatedBy,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}

func (r *taskDocumentRepositoryImpl) Create(ctx context.Context, doc document.TaskDocument) (document.TaskDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO task_documents (id, task_id, name, type, url, category, created_by, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, doc.TaskID, doc.Name, doc.Type, doc.URL, doc.Category, doc.CreatedBy).
		Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return document.TaskDocument{}, err
	}

	return doc, nil
}

func (r *taskDocumentRepositoryImpl) GetByID(ctx context.Context, id string) (document.TaskDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskDocumentColumns + ` FROM task_documents WHERE id = $1`

	d, err := scanTaskDocument(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return document.TaskDocument{}, document.ErrTaskDocumentNotFound
	}
	return d, err
}

func (r *taskDocumentRepositoryImpl) ListByTaskID(ctx context.Context, taskID string) ([]document.TaskDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskDocumentColumns + `
		FROM task_documents
		WHERE task_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []document.TaskDocument
	for rows.Next() {
		d, err := scanTaskDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *taskDocumentRepositoryImpl) Update(ctx context.Context, req document.UpdateTaskDocumentRequest) error {
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
	if req.Type != nil {
		add("type", *req.Type)
	}
	if req.URL != nil {
		add("url", *req.URL)
	}
	if req.Category != nil {
		add("category", *req.Category)
	}

	query := `UPDATE task_documents SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return document.ErrTaskDocumentNotFound
	}
	return nil
}

func (r *taskDocumentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM task_documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return document.ErrTaskDocumentNotFound
	}
	return nil
}
