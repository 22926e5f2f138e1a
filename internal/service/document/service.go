package document

import (
	"context"
	"fmt"

	"github.com/madison-jay/edike-backend/internal/domain/document"
	"github.com/madison-jay/edike-backend/internal/domain/employee"
	"github.com/madison-jay/edike-backend/internal/domain/task"
	"github.com/madison-jay/edike-backend/internal/domain/user"
)

type Service struct {
	employeeDocRepo document.EmployeeDocumentRepository
	taskDocRepo     document.TaskDocumentRepository
	employeeRepo    employee.EmployeeRepository
	taskRepo        task.TaskRepository
}

func NewService(
	employeeDocRepo document.EmployeeDocumentRepository,
	taskDocRepo document.TaskDocumentRepository,
	employeeRepo employee.EmployeeRepository,
	taskRepo task.TaskRepository,
) *Service {
	return &Service{
		employeeDocRepo: employeeDocRepo,
		taskDocRepo:     taskDocRepo,
		employeeRepo:    employeeRepo,
		taskRepo:        taskRepo,
	}
}

// CreateEmployeeDocuments records metadata for one or more uploaded files. A
// document the employee already has, matched on name and URL, is skipped
// rather than duplicated.
func (s *Service) CreateEmployeeDocuments(ctx context.Context, req document.CreateEmployeeDocumentsRequest) ([]document.EmployeeDocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	responses := make([]document.EmployeeDocumentResponse, 0, len(req.Documents))
	for _, input := range req.Documents {
		exists, err := s.employeeDocRepo.ExistsByNameAndURL(ctx, req.EmployeeID, input.Name, input.URL)
		if err != nil {
			return nil, fmt.Errorf("check existing document: %w", err)
		}
		if exists {
			continue
		}

		category := document.EmployeeDocumentCategory(input.Category)
		if input.Category == "" {
			category = document.CategoryOfficialDocuments
		}

		created, err := s.employeeDocRepo.Create(ctx, document.EmployeeDocument{
			EmployeeID: req.EmployeeID,
			Name:       input.Name,
			Type:       input.Type,
			URL:        input.URL,
			Category:   category,
			CreatedBy:  &identity.EmployeeID,
		})
		if err != nil {
			return nil, fmt.Errorf("create employee document: %w", err)
		}
		responses = append(responses, document.ToEmployeeDocumentResponse(created))
	}
	return responses, nil
}

func (s *Service) ListEmployeeDocuments(ctx context.Context, employeeID string) ([]document.EmployeeDocumentResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	docs, err := s.employeeDocRepo.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list employee documents: %w", err)
	}

	responses := make([]document.EmployeeDocumentResponse, 0, len(docs))
	for _, d := range docs {
		responses = append(responses, document.ToEmployeeDocumentResponse(d))
	}
	return responses, nil
}

func (s *Service) UpdateEmployeeDocument(ctx context.Context, req document.UpdateEmployeeDocumentRequest) (document.EmployeeDocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return document.EmployeeDocumentResponse{}, err
	}
	if err := s.employeeDocRepo.Update(ctx, req); err != nil {
		return document.EmployeeDocumentResponse{}, err
	}

	updated, err := s.employeeDocRepo.GetByID(ctx, req.ID)
	if err != nil {
		return document.EmployeeDocumentResponse{}, err
	}
	return document.ToEmployeeDocumentResponse(updated), nil
}

func (s *Service) DeleteEmployeeDocument(ctx context.Context, id string) error {
	return s.employeeDocRepo.Delete(ctx, id)
}

// CreateTaskDocuments attaches metadata records to a task.
func (s *Service) CreateTaskDocuments(ctx context.Context, req document.CreateTaskDocumentsRequest) ([]document.TaskDocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.taskRepo.GetByID(ctx, req.TaskID); err != nil {
		return nil, err
	}

	responses := make([]document.TaskDocumentResponse, 0, len(req.Documents))
	for _, input := range req.Documents {
		created, err := s.taskDocRepo.Create(ctx, document.TaskDocument{
			TaskID:    req.TaskID,
			Name:      input.Name,
			Type:      input.Type,
			URL:       input.URL,
			Category:  document.TaskDocumentCategory(input.Category),
			CreatedBy: &identity.EmployeeID,
		})
		if err != nil {
			return nil, fmt.Errorf("create task document: %w", err)
		}
		responses = append(responses, document.ToTaskDocumentResponse(created))
	}
	return responses, nil
}

func (s *Service) ListTaskDocuments(ctx context.Context, taskID string) ([]document.TaskDocumentResponse, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		return nil, err
	}

	docs, err := s.taskDocRepo.ListByTaskID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("list task documents: %w", err)
	}

	responses := make([]document.TaskDocumentResponse, 0, len(docs))
	for _, d := range docs {
		responses = append(responses, document.ToTaskDocumentResponse(d))
	}
	return responses, nil
}

func (s *Service) UpdateTaskDocument(ctx context.Context, req document.UpdateTaskDocumentRequest) (document.TaskDocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return document.TaskDocumentResponse{}, err
	}
	if err := s.taskDocRepo.Update(ctx, req); err != nil {
		return document.TaskDocumentResponse{}, err
	}

	updated, err := s.taskDocRepo.GetByID(ctx, req.ID)
	if err != nil {
		return document.TaskDocumentResponse{}, err
	}
	return document.ToTaskDocumentResponse(updated), nil
}

func (s *Service) DeleteTaskDocument(ctx context.Context, id string) error {
	return s.taskDocRepo.Delete(ctx, id)
}
