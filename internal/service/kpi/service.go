package kpi

import (
	"context"
	"fmt"
	"time"

	"github.com/madison-jay/edike-backend/internal/domain/employee"
	"github.com/madison-jay/edike-backend/internal/domain/kpi"
	"github.com/madison-jay/edike-backend/internal/domain/user"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type Service struct {
	db             *database.DB
	templateRepo   kpi.TemplateRepository
	assignmentRepo kpi.AssignmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewService(
	db *database.DB,
	templateRepo kpi.TemplateRepository,
	assignmentRepo kpi.AssignmentRepository,
	employeeRepo employee.EmployeeRepository,
) *Service {
	return &Service{db: db, templateRepo: templateRepo, assignmentRepo: assignmentRepo, employeeRepo: employeeRepo}
}

func (s *Service) CreateTemplate(ctx context.Context, req kpi.CreateTemplateRequest) (kpi.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.TemplateResponse{}, err
	}

	created, err := s.templateRepo.Create(ctx, kpi.Template{
		Name:        req.Name,
		Description: req.Description,
		Weight:      req.Weight,
		TargetType:  kpi.TargetType(req.TargetType),
		TargetValue: req.TargetValue,
	})
	if err != nil {
		return kpi.TemplateResponse{}, fmt.Errorf("create kpi template: %w", err)
	}
	return kpi.ToTemplateResponse(created), nil
}

func (s *Service) GetTemplate(ctx context.Context, id string) (kpi.TemplateResponse, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return kpi.TemplateResponse{}, err
	}
	return kpi.ToTemplateResponse(template), nil
}

func (s *Service) ListTemplates(ctx context.Context) ([]kpi.TemplateResponse, error) {
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list kpi templates: %w", err)
	}

	responses := make([]kpi.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		responses = append(responses, kpi.ToTemplateResponse(t))
	}
	return responses, nil
}

func (s *Service) UpdateTemplate(ctx context.Context, req kpi.UpdateTemplateRequest) (kpi.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.TemplateResponse{}, err
	}
	if err := s.templateRepo.Update(ctx, req); err != nil {
		return kpi.TemplateResponse{}, err
	}
	return s.GetTemplate(ctx, req.ID)
}

func (s *Service) DeleteTemplate(ctx context.Context, id string) error {
	return s.templateRepo.Delete(ctx, id)
}

func (s *Service) CreateAssignment(ctx context.Context, req kpi.CreateAssignmentRequest) (kpi.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.AssignmentResponse{}, err
	}

	identity, err := user.FromContext(ctx)
	if err != nil {
		return kpi.AssignmentResponse{}, err
	}

	if _, err := s.templateRepo.GetByID(ctx, req.TemplateID); err != nil {
		return kpi.AssignmentResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return kpi.AssignmentResponse{}, err
	}

	periodStart, _ := time.Parse("2006-01-02", req.PeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PeriodEnd)

	created, err := s.assignmentRepo.Create(ctx, kpi.Assignment{
		TemplateID:  req.TemplateID,
		EmployeeID:  req.EmployeeID,
		AssignedBy:  identity.EmployeeID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Status:      kpi.StatusAssigned,
	})
	if err != nil {
		return kpi.AssignmentResponse{}, fmt.Errorf("create kpi assignment: %w", err)
	}

	created, err = s.assignmentRepo.GetByID(ctx, created.ID)
	if err != nil {
		return kpi.AssignmentResponse{}, err
	}
	return kpi.ToAssignmentResponse(created), nil
}

func (s *Service) GetAssignment(ctx context.Context, id string) (kpi.AssignmentResponse, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return kpi.AssignmentResponse{}, err
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return kpi.AssignmentResponse{}, err
	}
	if identity.Role == user.RoleUser && assignment.EmployeeID != identity.EmployeeID {
		return kpi.AssignmentResponse{}, kpi.ErrNotAssignmentOwner
	}
	return kpi.ToAssignmentResponse(assignment), nil
}

func (s *Service) ListAssignments(ctx context.Context) ([]kpi.AssignmentResponse, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	var assignments []kpi.Assignment
	if identity.Role == user.RoleUser {
		assignments, err = s.assignmentRepo.ListByEmployeeID(ctx, identity.EmployeeID)
	} else {
		assignments, err = s.assignmentRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list kpi assignments: %w", err)
	}
	return kpi.ToAssignmentResponses(assignments), nil
}

// StartAssignment moves the owner's assignment into in_progress; a rejected
// assignment re-enters the same way.
func (s *Service) StartAssignment(ctx context.Context, id string) (kpi.AssignmentResponse, error) {
	assignment, err := s.ownedAssignment(ctx, id)
	if err != nil {
		return kpi.AssignmentResponse{}, err
	}

	if !assignment.Status.CanTransitionTo(kpi.StatusInProgress) {
		return kpi.AssignmentResponse{}, kpi.ErrInvalidTransition
	}
	if err := s.assignmentRepo.UpdateStatus(ctx, id, kpi.StatusInProgress); err != nil {
		return kpi.AssignmentResponse{}, err
	}

	assignment, err = s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return kpi.AssignmentResponse{}, err
	}
	return kpi.ToAssignmentResponse(assignment), nil
}

// SubmitAssignment records the owner's result and hands it to review. The
// submitted value must match the template's target shape.
func (s *Service) SubmitAssignment(ctx context.Context, req kpi.SubmitAssignmentRequest) (kpi.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.AssignmentResponse{}, err
	}

	assignment, err := s.ownedAssignment(ctx, req.ID)
	if err != nil {
		return kpi.AssignmentResponse{}, err
	}

	if !assignment.Status.CanTransitionTo(kpi.StatusSubmitted) {
		return kpi.AssignmentResponse{}, kpi.ErrInvalidTransition
	}
	if assignment.TargetType != nil {
		if err := kpi.ValidateTargetValue(*assignment.TargetType, req.SubmittedValue); err != nil {
			return kpi.AssignmentResponse{}, err
		}
	}

	if err := s.assignmentRepo.Submit(ctx, req); err != nil {
		return kpi.AssignmentResponse{}, err
	}

	assignment, err = s.assignmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return kpi.AssignmentResponse{}, err
	}
	return kpi.ToAssignmentResponse(assignment), nil
}

// ReviewAssignment approves or rejects a submitted assignment. Reviewers
// cannot review their own work.
func (s *Service) ReviewAssignment(ctx context.Context, req kpi.ReviewAssignmentRequest) (kpi.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.AssignmentResponse{}, err
	}

	identity, err := user.FromContext(ctx)
	if err != nil {
		return kpi.AssignmentResponse{}, err
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return kpi.AssignmentResponse{}, err
	}
	if assignment.EmployeeID == identity.EmployeeID {
		return kpi.AssignmentResponse{}, kpi.ErrCannotReviewOwn
	}

	decision := kpi.AssignmentStatus(req.Decision)
	if !assignment.Status.CanTransitionTo(decision) {
		return kpi.AssignmentResponse{}, kpi.ErrInvalidTransition
	}
	if len(assignment.SubmittedValue) == 0 {
		return kpi.AssignmentResponse{}, kpi.ErrMissingSubmission
	}

	if err := s.assignmentRepo.Review(ctx, req.ID, decision, identity.EmployeeID, req.Note); err != nil {
		return kpi.AssignmentResponse{}, err
	}

	assignment, err = s.assignmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return kpi.AssignmentResponse{}, err
	}
	return kpi.ToAssignmentResponse(assignment), nil
}

func (s *Service) DeleteAssignment(ctx context.Context, id string) error {
	if _, err := s.assignmentRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.assignmentRepo.Delete(ctx, id)
}

// ownedAssignment loads the assignment and enforces that the `user` role
// only touches their own.
func (s *Service) ownedAssignment(ctx context.Context, id string) (kpi.Assignment, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return kpi.Assignment{}, err
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return kpi.Assignment{}, err
	}
	if identity.Role == user.RoleUser && assignment.EmployeeID != identity.EmployeeID {
		return kpi.Assignment{}, kpi.ErrNotAssignmentOwner
	}
	return assignment, nil
}
