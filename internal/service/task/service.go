package task

import (
	"context"
	"fmt"
	"time"

	"github.com/madison-jay/edike-backend/internal/domain/employee"
	"github.com/madison-jay/edike-backend/internal/domain/task"
	"github.com/madison-jay/edike-backend/internal/domain/user"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type Service struct {
	db           *database.DB
	taskRepo     task.TaskRepository
	employeeRepo employee.EmployeeRepository
}

func NewService(db *database.DB, taskRepo task.TaskRepository, employeeRepo employee.EmployeeRepository) *Service {
	return &Service{db: db, taskRepo: taskRepo, employeeRepo: employeeRepo}
}

func (s *Service) Create(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	identity, err := user.FromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.AssigneeID); err != nil {
		return task.TaskResponse{}, err
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		d, _ := time.Parse("2006-01-02", *req.DueDate)
		dueDate = &d
	}

	created, err := s.taskRepo.Create(ctx, task.Task{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		AssignedBy:  identity.EmployeeID,
		DueDate:     dueDate,
		Status:      task.StatusTodo,
		Priority:    task.Priority(req.Priority),
	})
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("create task: %w", err)
	}
	return task.ToResponse(created), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (task.TaskResponse, error) {
	t, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return task.ToResponse(t), nil
}

// List scopes the `user` role to tasks assigned to them.
func (s *Service) List(ctx context.Context) ([]task.TaskResponse, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	var tasks []task.Task
	if identity.Role == user.RoleUser {
		tasks, err = s.taskRepo.ListByAssigneeID(ctx, identity.EmployeeID)
	} else {
		tasks, err = s.taskRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return task.ToResponses(tasks), nil
}

// Update lets assignees move their own task's status; anything beyond that
// needs a managing role.
func (s *Service) Update(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	identity, err := user.FromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	existing, err := s.taskRepo.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if identity.Role == user.RoleUser {
		if existing.AssigneeID != identity.EmployeeID {
			return task.TaskResponse{}, user.ErrPermissionRequired
		}
		onlyStatus := req.Title == nil && req.Description == nil && req.AssigneeID == nil &&
			req.DueDate == nil && req.Priority == nil
		if !onlyStatus {
			return task.TaskResponse{}, user.ErrPermissionRequired
		}
	}

	if req.AssigneeID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.AssigneeID); err != nil {
			return task.TaskResponse{}, err
		}
	}

	if err := s.taskRepo.Update(ctx, req); err != nil {
		return task.TaskResponse{}, err
	}
	return s.GetByID(ctx, req.ID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.taskRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, id)
}
