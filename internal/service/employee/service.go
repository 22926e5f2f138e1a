package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/madison-jay/edike-backend/internal/domain/employee"
	"github.com/madison-jay/edike-backend/internal/domain/user"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type Service struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	departmentRepo employee.DepartmentRepository
}

func NewService(db *database.DB, employeeRepo employee.EmployeeRepository, departmentRepo employee.DepartmentRepository) *Service {
	return &Service{db: db, employeeRepo: employeeRepo, departmentRepo: departmentRepo}
}

const defaultLeaveBalance = 21

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)
	balance := defaultLeaveBalance
	if req.LeaveBalance != nil {
		balance = *req.LeaveBalance
	}

	emp := employee.Employee{
		UserID:           req.UserID,
		DepartmentID:     req.DepartmentID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		Address:          req.Address,
		AvatarURL:        req.AvatarURL,
		Role:             req.Role,
		EmploymentStatus: employee.EmploymentStatusActive,
		HireDate:         hireDate,
		LeaveBalance:     balance,
		BiotimeID:        req.BiotimeID,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *Service) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employee.ToResponses(employees), nil
}

// Update applies only the fields set in the request, after checking the
// caller's role against the per-field whitelist. A `user` may only touch
// their own record and only the self-service fields.
func (s *Service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.AllowedForRole(identity.Role); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if identity.Role == user.RoleUser && identity.EmployeeID != req.ID {
		return employee.EmployeeResponse{}, user.ErrPermissionRequired
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	req.ApplyTo(&emp)
	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("update employee: %w", err)
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(updated), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.SoftDelete(ctx, id)
}

func (s *Service) ListDepartments(ctx context.Context) ([]employee.Department, error) {
	return s.departmentRepo.List(ctx)
}
