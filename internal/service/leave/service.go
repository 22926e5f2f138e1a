package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/madison-jay/edike-backend/internal/domain/employee"
	"github.com/madison-jay/edike-backend/internal/domain/leave"
	"github.com/madison-jay/edike-backend/internal/domain/user"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
	"github.com/madison-jay/edike-backend/internal/repository/postgresql"
)

type Service struct {
	db           *database.DB
	requestRepo  leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository

	// runTx wraps postgresql.WithTransaction; tests swap in a passthrough.
	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewService(db *database.DB, requestRepo leave.LeaveRequestRepository, employeeRepo employee.EmployeeRepository) *Service {
	s := &Service{db: db, requestRepo: requestRepo, employeeRepo: employeeRepo}
	s.runTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, s.db, fn)
	}
	return s
}

// Submit validates the range and checks the balance advisorily. The balance
// is not reserved here; approval is where the atomic decrement happens.
func (s *Service) Submit(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	days := leave.DaysInclusive(startDate, endDate)
	if days <= 0 {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidRange
	}
	if days > emp.LeaveBalance {
		return leave.LeaveRequestResponse{}, leave.ErrInsufficientBalance
	}

	request := leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.LeaveStatusPending,
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("create leave request: %w", err)
	}
	return leave.ToResponse(created), nil
}

// Decide moves a pending request to approved, rejected or cancelled.
// Approval decrements the balance with a conditional update; if the guard
// misses the whole decision rolls back. The `user` role may only cancel
// their own requests; nobody approves their own.
func (s *Service) Decide(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	identity, err := user.FromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.requestRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Status != leave.LeaveStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	decision := leave.LeaveStatus(req.Decision)

	if identity.Role == user.RoleUser {
		if decision != leave.LeaveStatusCancelled {
			return leave.LeaveRequestResponse{}, user.ErrPermissionRequired
		}
		if request.EmployeeID != identity.EmployeeID {
			return leave.LeaveRequestResponse{}, leave.ErrNotRequestOwner
		}
	}
	if decision == leave.LeaveStatusApproved && request.EmployeeID == identity.EmployeeID {
		return leave.LeaveRequestResponse{}, leave.ErrCannotDecideOwn
	}

	now := time.Now().UTC()
	var approvedBy *string
	var approvedAt *time.Time
	if decision == leave.LeaveStatusApproved || decision == leave.LeaveStatusRejected {
		approvedBy = &identity.EmployeeID
		approvedAt = &now
	}

	if decision == leave.LeaveStatusApproved {
		err = s.runTx(ctx, func(txCtx context.Context) error {
			if err := s.employeeRepo.DecrementLeaveBalance(txCtx, request.EmployeeID, request.Days()); err != nil {
				return err
			}
			return s.requestRepo.UpdateStatus(txCtx, request.ID, decision, approvedBy, approvedAt)
		})
	} else {
		err = s.requestRepo.UpdateStatus(ctx, request.ID, decision, approvedBy, approvedAt)
	}
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	decided, err := s.requestRepo.GetByID(ctx, request.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.ToResponse(decided), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if identity.Role == user.RoleUser && request.EmployeeID != identity.EmployeeID {
		return leave.LeaveRequestResponse{}, leave.ErrNotRequestOwner
	}
	return leave.ToResponse(request), nil
}

func (s *Service) List(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	var requests []leave.LeaveRequest
	if identity.Role == user.RoleUser {
		requests, err = s.requestRepo.ListByEmployeeID(ctx, identity.EmployeeID)
	} else {
		requests, err = s.requestRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	return leave.ToResponses(requests), nil
}
