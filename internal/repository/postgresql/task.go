package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/madison-jay/edike-backend/internal/domain/task"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

const taskColumns = `
	t.id, t.title, t.description, t.assignee_id, t.assigned_by, t.due_date,
	t.status, t.priority, t.created_at, t.updated_at,
	e.first_name || ' ' || e.last_name
`

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.AssigneeID,
		&t.AssignedBy,
		&t.DueDate,
		&t.Status,
		&t.Priority,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.AssigneeName,
	)
	return t, err
}

func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (
			id, title, description, assignee_id, assigned_by, due_date,
			status, priority, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.Title, t.Description, t.AssigneeID, t.AssignedBy, t.DueDate, t.Status, t.Priority,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return task.Task{}, err
	}

	return t, nil
}

func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		INNER JOIN employees e ON t.assignee_id = e.id
		WHERE t.id = $1
	`

	t, err := scanTask(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return task.Task{}, task.ErrTaskNotFound
	}
	return t, err
}

func (r *taskRepositoryImpl) List(ctx context.Context) ([]task.Task, error) {
	return r.listWhere(ctx, `TRUE`)
}

func (r *taskRepositoryImpl) ListByAssigneeID(ctx context.Context, assigneeID string) ([]task.Task, error) {
	return r.listWhere(ctx, `t.assignee_id = $1`, assigneeID)
}

func (r *taskRepositoryImpl) listWhere(ctx context.Context, where string, args ...any) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		INNER JOIN employees e ON t.assignee_id = e.id
		WHERE ` + where + `
		ORDER BY t.due_date NULLS LAST, t.created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *taskRepositoryImpl) Update(ctx context.Context, req task.UpdateTaskRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{req.ID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+itoa(len(args)))
	}

	if req.Title != nil {
		add("title", *req.Title)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.AssigneeID != nil {
		add("assignee_id", *req.AssigneeID)
	}
	if req.DueDate != nil {
		add("due_date", *req.DueDate)
	}
	if req.Status != nil {
		add("status", *req.Status)
	}
	if req.Priority != nil {
		add("priority", *req.Priority)
	}

	query := `UPDATE tasks SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return task.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return task.ErrTaskNotFound
	}
	return nil
}
