package task

import "context"

// TaskRepository - interface for the tasks table
type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	List(ctx context.Context) ([]Task, error)
	ListByAssigneeID(ctx context.Context, assigneeID string) ([]Task, error)
	Update(ctx context.Context, req UpdateTaskRequest) error
	Delete(ctx context.Context, id string) error
}
