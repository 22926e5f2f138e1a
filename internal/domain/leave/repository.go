package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for the leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context) ([]LeaveRequest, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status LeaveStatus, approvedBy *string, approvedAt *time.Time) error

	// HasApprovedOnDate reports whether any approved request covers the date.
	HasApprovedOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
}
