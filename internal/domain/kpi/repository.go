package kpi

import "context"

// TemplateRepository - interface for the kpi_templates table
type TemplateRepository interface {
	Create(ctx context.Context, template Template) (Template, error)
	GetByID(ctx context.Context, id string) (Template, error)
	List(ctx context.Context) ([]Template, error)
	Update(ctx context.Context, req UpdateTemplateRequest) error
	Delete(ctx context.Context, id string) error
}

// AssignmentRepository - interface for the kpi_assignments table
type AssignmentRepository interface {
	Create(ctx context.Context, assignment Assignment) (Assignment, error)
	GetByID(ctx context.Context, id string) (Assignment, error)
	List(ctx context.Context) ([]Assignment, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]Assignment, error)
	UpdateStatus(ctx context.Context, id string, status AssignmentStatus) error
	Submit(ctx context.Context, req SubmitAssignmentRequest) error
	Review(ctx context.Context, id string, status AssignmentStatus, reviewedBy string, note *string) error
	Delete(ctx context.Context, id string) error
}
