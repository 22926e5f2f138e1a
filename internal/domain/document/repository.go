package document

import "context"

// EmployeeDocumentRepository - interface for the employee_documents table
type EmployeeDocumentRepository interface {
	Create(ctx context.Context, doc EmployeeDocument) (EmployeeDocument, error)
	GetByID(ctx context.Context, id string) (EmployeeDocument, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]EmployeeDocument, error)

	// ExistsByNameAndURL reports whether the employee already has a document
	// with this name and URL; re-submitting the same reference is a no-op.
	ExistsByNameAndURL(ctx context.Context, employeeID, name, url string) (bool, error)

	Update(ctx context.Context, req UpdateEmployeeDocumentRequest) error
	Delete(ctx context.Context, id string) error
}

// TaskDocumentRepository - interface for the task_documents table
type TaskDocumentRepository interface {
	Create(ctx context.Context, doc TaskDocument) (TaskDocument, error)
	GetByID(ctx context.Context, id string) (TaskDocument, error)
	ListByTaskID(ctx context.Context, taskID string) ([]TaskDocument, error)
	Update(ctx context.Context, req UpdateTaskDocumentRequest) error
	Delete(ctx context.Context, id string) error
}
